package app

import (
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/format"
)

// NavState describes a page transition for the renderer.
type NavState struct {
	Page        Page
	Title       string
	ShowBack    bool
	Badge       int
	ResetScroll bool
}

// CatCard is one tile of the catalog grid.
type CatCard struct {
	Cat        catalog.Cat
	PriceLabel string
}

// CatalogView is the catalog page: either a load-failure panel with a retry
// action, an explicit no-results placeholder, or the filtered grid.
type CatalogView struct {
	LoadFailed bool
	LoadError  string

	Cats  []CatCard
	Empty bool // filters matched nothing

	Category catalog.Category
	Search   string
}

// DetailView is the single-cat page.
type DetailView struct {
	Cat        catalog.Cat
	PriceLabel string
	AgeLabel   string
	InCart     bool
}

// CartLine is one row of the cart page.
type CartLine struct {
	Cat        catalog.Cat
	PriceLabel string
}

// CartView is the cart page: resolved items only, totals over them.
type CartView struct {
	Empty      bool
	Items      []CartLine
	CountLabel string // "Итого: 2 котёнка"
	Total      int
	TotalLabel string
}

// OrderFormView is the order page: cart preview plus host pre-fill.
type OrderFormView struct {
	Items       []CartLine
	Count       int
	TotalLabel  string
	PrefillName string
}

func (c *Controller) catalogView() CatalogView {
	if err := c.catalog.LoadErr(); err != nil {
		return CatalogView{
			LoadFailed: true,
			LoadError:  err.Error(),
			Category:   c.state.Category,
			Search:     c.state.Search,
		}
	}

	cats := c.catalog.Filter(c.state.Category, c.state.Search)
	cards := make([]CatCard, 0, len(cats))
	for _, cat := range cats {
		cards = append(cards, CatCard{Cat: cat, PriceLabel: format.Price(cat.Price)})
	}

	return CatalogView{
		Cats:     cards,
		Empty:    len(cards) == 0,
		Category: c.state.Category,
		Search:   c.state.Search,
	}
}

func (c *Controller) detailView(cat catalog.Cat) DetailView {
	return DetailView{
		Cat:        cat,
		PriceLabel: format.Price(cat.Price),
		AgeLabel:   format.Age(cat.AgeMonths),
		InCart:     c.cart.Contains(cat.ID),
	}
}

func (c *Controller) cartView() CartView {
	items := c.cart.Resolve(c.catalog)
	if len(items) == 0 {
		return CartView{Empty: true, CountLabel: format.KittenCount(0), TotalLabel: format.Price(0)}
	}

	lines := make([]CartLine, 0, len(items))
	total := 0
	for _, cat := range items {
		lines = append(lines, CartLine{Cat: cat, PriceLabel: format.Price(cat.Price)})
		total += cat.Price
	}

	return CartView{
		Items:      lines,
		CountLabel: "Итого: " + format.KittenCount(len(items)),
		Total:      total,
		TotalLabel: format.Price(total),
	}
}

func (c *Controller) orderFormView() OrderFormView {
	items := c.cart.Resolve(c.catalog)
	lines := make([]CartLine, 0, len(items))
	total := 0
	for _, cat := range items {
		lines = append(lines, CartLine{Cat: cat, PriceLabel: format.Price(cat.Price)})
		total += cat.Price
	}

	prefill, _ := c.host.UserName()

	return OrderFormView{
		Items:       lines,
		Count:       len(lines),
		TotalLabel:  format.Price(total),
		PrefillName: prefill,
	}
}
