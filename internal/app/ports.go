package app

// Renderer is the display boundary. The controller computes plain view
// models; the renderer applies them to whatever surface hosts the widget
// (DOM in the web build, the terminal in cmd/shop, fakes in tests).
type Renderer interface {
	// ApplyNav switches the visible page: active nav control, title bar,
	// back affordance, scroll reset.
	ApplyNav(nav NavState)

	RenderCatalog(v CatalogView)
	RenderDetail(v DetailView)
	RenderCart(v CartView)
	RenderOrderForm(v OrderFormView)

	// SetCartBadge updates every badge location with the cart size.
	SetCartBadge(count int)

	ResetOrderForm()
	ResetFeedbackForm()
}

// Host is the surrounding application (Telegram WebApp). Everything here is
// optional: NoopHost stands in outside the host.
type Host interface {
	Ready()
	Expand()
	SetBackVisible(show bool)
	// UserName returns the host-supplied display name for form pre-fill.
	UserName() (string, bool)
}

// Notifier shows transient toast messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the user a yes/no question before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// NoopHost is the Host used when the widget runs outside Telegram.
type NoopHost struct{}

func (NoopHost) Ready()                   {}
func (NoopHost) Expand()                  {}
func (NoopHost) SetBackVisible(bool)      {}
func (NoopHost) UserName() (string, bool) { return "", false }
