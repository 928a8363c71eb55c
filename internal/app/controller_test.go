package app_test

import (
	"context"
	"errors"
	"testing"

	"kitten-shop/internal/adapters/storage/memory"
	"kitten-shop/internal/app"
	"kitten-shop/internal/domain/cart"
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/domain/orders"
	"kitten-shop/internal/platform/logger"
	"kitten-shop/internal/ports/gateway"
)

// -------------------------
// Fakes
// -------------------------

type stubSource struct {
	cats []catalog.Cat
	err  error
}

func (s *stubSource) Fetch(ctx context.Context) ([]catalog.Cat, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cats, nil
}

type fakeRenderer struct {
	navs     []app.NavState
	catalogs []app.CatalogView
	details  []app.DetailView
	carts    []app.CartView
	orders   []app.OrderFormView
	badges   []int

	orderFormResets    int
	feedbackFormResets int
}

func (r *fakeRenderer) ApplyNav(nav app.NavState)           { r.navs = append(r.navs, nav) }
func (r *fakeRenderer) RenderCatalog(v app.CatalogView)     { r.catalogs = append(r.catalogs, v) }
func (r *fakeRenderer) RenderDetail(v app.DetailView)       { r.details = append(r.details, v) }
func (r *fakeRenderer) RenderCart(v app.CartView)           { r.carts = append(r.carts, v) }
func (r *fakeRenderer) RenderOrderForm(v app.OrderFormView) { r.orders = append(r.orders, v) }
func (r *fakeRenderer) SetCartBadge(count int)              { r.badges = append(r.badges, count) }
func (r *fakeRenderer) ResetOrderForm()                     { r.orderFormResets++ }
func (r *fakeRenderer) ResetFeedbackForm()                  { r.feedbackFormResets++ }

func (r *fakeRenderer) lastNav(t *testing.T) app.NavState {
	t.Helper()
	if len(r.navs) == 0 {
		t.Fatal("no nav applied")
	}
	return r.navs[len(r.navs)-1]
}

func (r *fakeRenderer) lastBadge(t *testing.T) int {
	t.Helper()
	if len(r.badges) == 0 {
		t.Fatal("no badge set")
	}
	return r.badges[len(r.badges)-1]
}

type fakeHost struct {
	ready    bool
	expanded bool
	backLog  []bool
	userName string
}

func (h *fakeHost) Ready()                { h.ready = true }
func (h *fakeHost) Expand()               { h.expanded = true }
func (h *fakeHost) SetBackVisible(v bool) { h.backLog = append(h.backLog, v) }
func (h *fakeHost) UserName() (string, bool) {
	if h.userName == "" {
		return "", false
	}
	return h.userName, true
}

func (h *fakeHost) lastBack(t *testing.T) bool {
	t.Helper()
	if len(h.backLog) == 0 {
		t.Fatal("back visibility never set")
	}
	return h.backLog[len(h.backLog)-1]
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

type fakeConfirmer struct{ answer bool }

func (c fakeConfirmer) Confirm(string) bool { return c.answer }

type fakeGateway struct {
	payloads []gateway.Payload
	err      error
}

func (g *fakeGateway) Send(ctx context.Context, p gateway.Payload) error {
	g.payloads = append(g.payloads, p)
	return g.err
}

// -------------------------
// Fixture
// -------------------------

type fixture struct {
	ctrl    *app.Controller
	r       *fakeRenderer
	host    *fakeHost
	notify  *fakeNotifier
	gw      *fakeGateway
	basket  *cart.Service
	catalog *catalog.Store
}

func testCats() []catalog.Cat {
	return []catalog.Cat{
		{ID: 1, Name: "Амур", Breed: "Донской сфинкс", Category: catalog.CategoryMale, Price: 42000, Available: true},
		{ID: 2, Name: "Василиса", Breed: "Донской сфинкс", Category: catalog.CategoryFemale, Price: 36000, Available: true},
	}
}

func newFixture(t *testing.T, src catalog.Source) *fixture {
	t.Helper()

	f := &fixture{
		r:      &fakeRenderer{},
		host:   &fakeHost{},
		notify: &fakeNotifier{},
		gw:     &fakeGateway{},
	}
	f.catalog = catalog.NewStore(src)
	f.basket = cart.New(memory.NewCartStore(), logger.Nop())

	f.ctrl = app.NewController(app.Deps{
		Catalog:  f.catalog,
		Cart:     f.basket,
		Gateway:  f.gw,
		Renderer: f.r,
		Host:     f.host,
		Notifier: f.notify,
		Confirm:  fakeConfirmer{answer: true},
		Logger:   logger.Nop(),
	})
	f.ctrl.Init(context.Background())
	return f
}

// -------------------------
// Navigation
// -------------------------

func TestInit_RendersCatalog(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	if !f.host.ready || !f.host.expanded {
		t.Fatal("host handshake missing")
	}
	if got := f.host.lastBack(t); got {
		t.Fatal("back should start hidden")
	}

	nav := f.r.lastNav(t)
	if nav.Page != app.PageCatalog || nav.Title != "🐱 Питомник котов" {
		t.Fatalf("nav = %+v", nav)
	}
	if len(f.r.catalogs) != 1 {
		t.Fatalf("catalog rendered %d times", len(f.r.catalogs))
	}
	if v := f.r.catalogs[0]; v.LoadFailed || len(v.Cats) != 2 {
		t.Fatalf("catalog view = %+v", v)
	}
}

func TestInit_LoadFailureOffersRetry(t *testing.T) {
	src := &stubSource{err: errors.New("network down")}
	f := newFixture(t, src)

	if v := f.r.catalogs[len(f.r.catalogs)-1]; !v.LoadFailed {
		t.Fatalf("catalog view = %+v, want LoadFailed", v)
	}

	src.err = nil
	src.cats = testCats()
	if err := f.ctrl.RetryLoad(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if v := f.r.catalogs[len(f.r.catalogs)-1]; v.LoadFailed || len(v.Cats) != 2 {
		t.Fatalf("catalog view after retry = %+v", v)
	}
}

func TestNavigate_SelfTransitionIsNoOp(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})
	f.ctrl.ShowDetail(1)
	navsBefore := len(f.r.navs)
	prevBefore := f.ctrl.State().PrevPage

	f.ctrl.Navigate(app.PageDetail)

	if len(f.r.navs) != navsBefore {
		t.Fatal("self-transition should not re-render")
	}
	if got := f.ctrl.State().PrevPage; got != prevBefore {
		t.Fatalf("prev page changed to %q", got)
	}
}

func TestNavigate_BackVisibility(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	cases := []struct {
		page app.Page
		want bool
	}{
		{app.PageCart, false},
		{app.PageOrder, true},
		{app.PageFeedback, false},
		{app.PageAbout, false},
		{app.PageCatalog, false},
	}
	for _, c := range cases {
		f.ctrl.Navigate(c.page)
		if got := f.host.lastBack(t); got != c.want {
			t.Errorf("page %s: back visible = %v, want %v", c.page, got, c.want)
		}
	}

	f.ctrl.ShowDetail(1)
	if !f.host.lastBack(t) {
		t.Error("detail page should show back")
	}
}

func TestGoBack(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	f.ctrl.Navigate(app.PageCart)
	f.ctrl.Navigate(app.PageOrder)
	f.ctrl.GoBack()
	if got := f.ctrl.State().Page; got != app.PageCart {
		t.Fatalf("page = %s, want cart", got)
	}

	// The history slot holds one page; going back again lands on the
	// page we just left, not further up a chain.
	f.ctrl.GoBack()
	if got := f.ctrl.State().Page; got != app.PageOrder {
		t.Fatalf("page = %s, want order", got)
	}
}

func TestShowDetail_Titles(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	f.ctrl.ShowDetail(2)
	if nav := f.r.lastNav(t); nav.Title != "Василиса" {
		t.Fatalf("title = %q", nav.Title)
	}
	if len(f.r.details) != 1 {
		t.Fatalf("detail rendered %d times", len(f.r.details))
	}

	f.ctrl.Navigate(app.PageCatalog)
	detailsBefore := len(f.r.details)

	f.ctrl.ShowDetail(99)
	if nav := f.r.lastNav(t); nav.Title != "Кот" {
		t.Fatalf("unknown id title = %q", nav.Title)
	}
	if len(f.r.details) != detailsBefore {
		t.Fatal("unresolved detail should not render")
	}
}

func TestSetCategoryAndSearch(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	f.ctrl.SetCategory(catalog.CategoryFemale)
	v := f.r.catalogs[len(f.r.catalogs)-1]
	if len(v.Cats) != 1 || v.Cats[0].Cat.ID != 2 {
		t.Fatalf("female filter view = %+v", v)
	}

	f.ctrl.SetSearch("амур")
	v = f.r.catalogs[len(f.r.catalogs)-1]
	if !v.Empty {
		t.Fatalf("female+амур should match nothing, got %+v", v)
	}

	f.ctrl.SetCategory(catalog.CategoryAll)
	v = f.r.catalogs[len(f.r.catalogs)-1]
	if len(v.Cats) != 1 || v.Cats[0].Cat.Name != "Амур" {
		t.Fatalf("search view = %+v", v)
	}
}

// -------------------------
// Cart
// -------------------------

func TestAddToCart_Idempotent(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	f.ctrl.AddToCart(1)
	f.ctrl.AddToCart(1)

	if got := f.basket.Count(); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}
	if len(f.notify.successes) != 1 {
		t.Fatalf("toasts = %v, want one", f.notify.successes)
	}
	if got := f.r.lastBadge(t); got != 1 {
		t.Fatalf("badge = %d, want 1", got)
	}
}

func TestAddToCart_RefreshesVisibleDetail(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})
	f.ctrl.ShowDetail(1)

	f.ctrl.AddToCart(1)

	last := f.r.details[len(f.r.details)-1]
	if !last.InCart {
		t.Fatal("detail should re-render with InCart set")
	}
}

func TestClearCart_Declined(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})
	f.ctrl.AddToCart(1)

	declined := app.NewController(app.Deps{
		Catalog:  f.catalog,
		Cart:     f.basket,
		Gateway:  f.gw,
		Renderer: f.r,
		Notifier: f.notify,
		Confirm:  fakeConfirmer{answer: false},
		Logger:   logger.Nop(),
	})
	declined.ClearCart()

	if got := f.basket.Count(); got != 1 {
		t.Fatalf("declined clear emptied the cart, count = %d", got)
	}
}

// -------------------------
// Submissions
// -------------------------

func TestSubmitOrder_EmptyCart(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	err := f.ctrl.SubmitOrder(context.Background(), orders.OrderForm{Name: "Анна", Phone: "123"})
	if !errors.Is(err, orders.ErrCartEmpty) {
		t.Fatalf("err = %v, want ErrCartEmpty", err)
	}
	if len(f.gw.payloads) != 0 {
		t.Fatal("gateway should not be called for an empty cart")
	}
	if len(f.notify.errors) != 1 || f.notify.errors[0] != "Корзина пуста" {
		t.Fatalf("error toasts = %v", f.notify.errors)
	}
}

func TestSubmitOrder_Success(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})
	f.ctrl.AddToCart(1)
	f.ctrl.AddToCart(2)
	f.ctrl.Navigate(app.PageOrder)

	err := f.ctrl.SubmitOrder(context.Background(), orders.OrderForm{Name: "Анна", Phone: "123"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(f.gw.payloads) != 1 {
		t.Fatalf("gateway calls = %d", len(f.gw.payloads))
	}
	o, ok := f.gw.payloads[0].(orders.Order)
	if !ok {
		t.Fatalf("payload type %T", f.gw.payloads[0])
	}
	if len(o.Items) != 2 || o.Total != 78000 {
		t.Fatalf("order = %+v", o)
	}

	if got := f.basket.Count(); got != 0 {
		t.Fatalf("cart not cleared, count = %d", got)
	}
	if got := f.r.lastBadge(t); got != 0 {
		t.Fatalf("badge = %d, want 0", got)
	}
	if f.r.orderFormResets != 1 {
		t.Fatalf("order form resets = %d", f.r.orderFormResets)
	}
	if got := f.ctrl.State().Page; got != app.PageCatalog {
		t.Fatalf("page = %s, want catalog", got)
	}
	if len(f.notify.successes) == 0 || f.notify.successes[len(f.notify.successes)-1] != "Заказ отправлен! ✅" {
		t.Fatalf("toasts = %v", f.notify.successes)
	}
}

func TestSubmitOrder_DeliveryFailureStillResets(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})
	f.ctrl.AddToCart(1)
	f.ctrl.Navigate(app.PageOrder)
	f.gw.err = errors.New("bot unreachable")

	err := f.ctrl.SubmitOrder(context.Background(), orders.OrderForm{Name: "Анна", Phone: "123"})
	if err == nil {
		t.Fatal("expected delivery error")
	}

	if got := f.basket.Count(); got != 0 {
		t.Fatalf("cart not cleared, count = %d", got)
	}
	if got := f.ctrl.State().Page; got != app.PageCatalog {
		t.Fatalf("page = %s, want catalog", got)
	}
	if len(f.notify.errors) == 0 || f.notify.errors[len(f.notify.errors)-1] != "Не удалось отправить заказ" {
		t.Fatalf("error toasts = %v", f.notify.errors)
	}
}

func TestSubmitFeedback(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})

	err := f.ctrl.SubmitFeedback(context.Background(), orders.FeedbackForm{
		Name:    "Анна",
		Subject: orders.SubjectBooking,
		Message: "Хочу посмотреть Амура",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	fb, ok := f.gw.payloads[0].(orders.Feedback)
	if !ok {
		t.Fatalf("payload type %T", f.gw.payloads[0])
	}
	if fb.Subject != "Запись на просмотр" {
		t.Fatalf("subject = %q", fb.Subject)
	}
	if f.r.feedbackFormResets != 1 {
		t.Fatalf("feedback form resets = %d", f.r.feedbackFormResets)
	}
	if len(f.notify.successes) != 1 || f.notify.successes[0] != "Сообщение отправлено! ✅" {
		t.Fatalf("toasts = %v", f.notify.successes)
	}
}

func TestSubmitFeedback_DeliveryFailure(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})
	f.gw.err = errors.New("bot unreachable")

	err := f.ctrl.SubmitFeedback(context.Background(), orders.FeedbackForm{
		Name:    "Анна",
		Subject: orders.SubjectQuestion,
		Message: "Вопрос",
	})
	if err == nil {
		t.Fatal("expected delivery error")
	}
	if f.r.feedbackFormResets != 1 {
		t.Fatalf("feedback form resets = %d", f.r.feedbackFormResets)
	}
	if len(f.notify.errors) != 1 || f.notify.errors[0] != "Не удалось отправить сообщение" {
		t.Fatalf("error toasts = %v", f.notify.errors)
	}
}

func TestOrderFormView_PrefillsHostName(t *testing.T) {
	f := newFixture(t, &stubSource{cats: testCats()})
	f.host.userName = "Анна"
	f.ctrl.AddToCart(1)

	f.ctrl.Navigate(app.PageOrder)

	if len(f.r.orders) == 0 {
		t.Fatal("order form not rendered")
	}
	v := f.r.orders[len(f.r.orders)-1]
	if v.PrefillName != "Анна" {
		t.Fatalf("prefill = %q", v.PrefillName)
	}
	if v.Count != 1 || v.TotalLabel != "42 000 ₽" {
		t.Fatalf("order form view = %+v", v)
	}
}
