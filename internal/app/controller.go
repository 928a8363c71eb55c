package app

import (
	"context"
	"time"

	"kitten-shop/internal/domain/cart"
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/domain/orders"
	"kitten-shop/internal/platform/logger"
	"kitten-shop/internal/ports/gateway"
)

// Controller owns the application state and drives the render boundary.
// All entry points run on the single UI callback turn; there is no internal
// locking beyond what the catalog store and cart already carry.
type Controller struct {
	catalog *catalog.Store
	cart    *cart.Service
	gw      gateway.Gateway
	r       Renderer
	host    Host
	notify  Notifier
	confirm Confirmer
	log     logger.Logger
	now     func() time.Time

	state State
}

type Deps struct {
	Catalog  *catalog.Store
	Cart     *cart.Service
	Gateway  gateway.Gateway
	Renderer Renderer
	Host     Host // optional
	Notifier Notifier
	Confirm  Confirmer // optional; nil skips the clear-cart confirmation
	Logger   logger.Logger
}

func NewController(d Deps) *Controller {
	host := d.Host
	if host == nil {
		host = NoopHost{}
	}
	log := d.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Controller{
		catalog: d.Catalog,
		cart:    d.Cart,
		gw:      d.Gateway,
		r:       d.Renderer,
		host:    host,
		notify:  d.Notifier,
		confirm: d.Confirm,
		log:     log,
		now:     time.Now,
		state: State{
			Page:     PageCatalog,
			Category: catalog.CategoryAll,
		},
	}
}

// State returns a copy of the navigation state.
func (c *Controller) State() State {
	return c.state
}

// Init runs the startup sequence: host handshake, catalog load, first
// render. A failed load is not fatal; the catalog view offers a retry.
func (c *Controller) Init(ctx context.Context) {
	c.host.Ready()
	c.host.Expand()

	if err := c.catalog.Load(ctx); err != nil {
		c.log.Warn("catalog load failed", map[string]any{"error": err.Error()})
	}

	c.host.SetBackVisible(false)
	c.r.ApplyNav(c.navState())
	c.r.RenderCatalog(c.catalogView())
	c.r.SetCartBadge(c.cart.Count())
}

// RetryLoad re-runs the catalog fetch and re-renders the grid.
func (c *Controller) RetryLoad(ctx context.Context) error {
	err := c.catalog.Load(ctx)
	if err != nil {
		c.log.Warn("catalog reload failed", map[string]any{"error": err.Error()})
	}
	c.r.RenderCatalog(c.catalogView())
	return err
}

// Navigate switches to the target page. A self-transition is a no-op and
// does not touch the previous-page slot.
func (c *Controller) Navigate(page Page) {
	c.navigate(page, c.state.DetailID)
}

// ShowDetail opens the detail page for the given cat id.
func (c *Controller) ShowDetail(id int) {
	c.navigate(PageDetail, id)
}

// GoBack returns to the previously recorded page, defaulting to the catalog.
func (c *Controller) GoBack() {
	prev := c.state.PrevPage
	if prev == "" {
		prev = PageCatalog
	}
	c.navigate(prev, c.state.DetailID)
}

func (c *Controller) navigate(target Page, detailID int) {
	if target == c.state.Page {
		return
	}

	c.state.PrevPage = c.state.Page
	c.state.Page = target
	if target == PageDetail {
		c.state.DetailID = detailID
	}

	showBack := target == PageDetail || target == PageOrder
	c.host.SetBackVisible(showBack)
	c.r.ApplyNav(c.navState())
	c.renderPage(target)
}

func (c *Controller) navState() NavState {
	return NavState{
		Page:        c.state.Page,
		Title:       c.title(),
		ShowBack:    c.state.Page == PageDetail || c.state.Page == PageOrder,
		Badge:       c.cart.Count(),
		ResetScroll: true,
	}
}

func (c *Controller) title() string {
	if c.state.Page == PageDetail {
		if cat, ok := c.catalog.Find(c.state.DetailID); ok {
			return cat.Name
		}
		return detailTitleFallback
	}
	return pageTitles[c.state.Page]
}

func (c *Controller) renderPage(page Page) {
	switch page {
	case PageCatalog:
		c.r.RenderCatalog(c.catalogView())
	case PageDetail:
		// Unresolved ids render nothing; the page keeps whatever it showed.
		if cat, ok := c.catalog.Find(c.state.DetailID); ok {
			c.r.RenderDetail(c.detailView(cat))
		}
	case PageCart:
		c.r.RenderCart(c.cartView())
	case PageOrder:
		c.r.RenderOrderForm(c.orderFormView())
	}
	// feedback and about are static screens; ApplyNav already showed them.
}

// SetCategory applies a category filter chip.
func (c *Controller) SetCategory(category catalog.Category) {
	c.state.Category = category
	c.r.RenderCatalog(c.catalogView())
}

// SetSearch applies the search box text.
func (c *Controller) SetSearch(q string) {
	c.state.Search = q
	c.r.RenderCatalog(c.catalogView())
}

// AddToCart adds the cat once; repeated adds are ignored.
func (c *Controller) AddToCart(id int) {
	if !c.cart.Add(id) {
		return
	}
	c.r.SetCartBadge(c.cart.Count())
	c.notify.Success("Добавлено в корзину 🛒")

	if c.state.Page == PageDetail && c.state.DetailID == id {
		if cat, ok := c.catalog.Find(id); ok {
			c.r.RenderDetail(c.detailView(cat))
		}
	}
}

// RemoveFromCart drops the cat and refreshes the cart page if visible.
func (c *Controller) RemoveFromCart(id int) {
	c.cart.Remove(id)
	c.r.SetCartBadge(c.cart.Count())
	if c.state.Page == PageCart {
		c.r.RenderCart(c.cartView())
	}
}

// ClearCart empties the cart after an explicit confirmation.
func (c *Controller) ClearCart() {
	if c.confirm != nil && !c.confirm.Confirm("Очистить корзину?") {
		return
	}
	c.cart.Clear()
	c.r.SetCartBadge(0)
	if c.state.Page == PageCart {
		c.r.RenderCart(c.cartView())
	}
}

// SubmitOrder runs the order flow: guard on an empty cart, snapshot, send,
// then clear the cart, reset the form and return to the catalog. The
// post-send sequence runs regardless of the delivery outcome (the widget
// always behaved that way); the outcome itself is surfaced via the
// notifier and the returned error.
func (c *Controller) SubmitOrder(ctx context.Context, form orders.OrderForm) error {
	items := c.cart.Resolve(c.catalog)

	o, err := orders.BuildOrder(form, items, c.now())
	if err != nil {
		c.notify.Error("Корзина пуста")
		return err
	}

	sendErr := c.gw.Send(ctx, o)
	if sendErr != nil {
		c.log.Error("order delivery failed", map[string]any{"error": sendErr.Error()})
	}

	c.cart.Clear()
	c.r.SetCartBadge(0)
	c.r.ResetOrderForm()
	c.Navigate(PageCatalog)

	if sendErr != nil {
		c.notify.Error("Не удалось отправить заказ")
		return sendErr
	}
	c.notify.Success("Заказ отправлен! ✅")
	return nil
}

// SubmitFeedback sends the contact form and resets it.
func (c *Controller) SubmitFeedback(ctx context.Context, form orders.FeedbackForm) error {
	f := orders.BuildFeedback(form, c.now())

	err := c.gw.Send(ctx, f)
	c.r.ResetFeedbackForm()
	if err != nil {
		c.log.Error("feedback delivery failed", map[string]any{"error": err.Error()})
		c.notify.Error("Не удалось отправить сообщение")
		return err
	}
	c.notify.Success("Сообщение отправлено! ✅")
	return nil
}
