package app

import "kitten-shop/internal/domain/catalog"

// Page identifies one of the storefront screens.
type Page string

const (
	PageCatalog  Page = "catalog"
	PageDetail   Page = "detail"
	PageCart     Page = "cart"
	PageOrder    Page = "order"
	PageFeedback Page = "feedback"
	PageAbout    Page = "about"
)

var pageTitles = map[Page]string{
	PageCatalog:  "🐱 Питомник котов",
	PageDetail:   "Карточка кота",
	PageCart:     "🛒 Корзина",
	PageOrder:    "📦 Оформление заказа",
	PageFeedback: "💬 Обратная связь",
	PageAbout:    "ℹ️ О нас",
}

// detailTitleFallback shows when a detail id does not resolve.
const detailTitleFallback = "Кот"

// State is the navigation state of the single storefront session.
// The cart lives in its own service; only its ids are referenced here.
type State struct {
	Page     Page
	PrevPage Page // single-slot history; going back twice does not chain

	Category catalog.Category // "all" or a category tag
	Search   string

	DetailID int // selected cat on the detail page
}
