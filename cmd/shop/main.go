package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"kitten-shop/internal/adapters/catalogsource/httpapi"
	"kitten-shop/internal/adapters/catalogsource/static"
	"kitten-shop/internal/adapters/gateway/botapi"
	"kitten-shop/internal/adapters/gateway/devlog"
	"kitten-shop/internal/adapters/storage/file"
	"kitten-shop/internal/app"
	"kitten-shop/internal/config"
	"kitten-shop/internal/domain/cart"
	"kitten-shop/internal/domain/catalog"
	"kitten-shop/internal/domain/orders"
	"kitten-shop/internal/platform/logger"
	"kitten-shop/internal/ports/gateway"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "kitten-shop",
	})

	var source catalog.Source
	if cfg.Shop.BaseURL != "" {
		src, err := httpapi.New(cfg.Shop.BaseURL, 10*time.Second)
		if err != nil {
			log.Error("catalog source", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		source = src
	} else {
		source = static.New()
	}

	var gw gateway.Gateway
	if cfg.Shop.BaseURL != "" {
		g, err := botapi.New(botapi.Config{
			BaseURL: cfg.Shop.BaseURL,
			Secret:  cfg.Shop.Secret,
			Timeout: 10 * time.Second,
		})
		if err != nil {
			log.Error("order gateway", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		gw = g
	} else {
		gw = devlog.New(log)
	}

	store := catalog.NewStore(source)
	basket := cart.New(file.NewCartStore(cfg.Shop.CartPath), log)

	ui := newTerminalUI(os.Stdin, os.Stdout)

	ctrl := app.NewController(app.Deps{
		Catalog:  store,
		Cart:     basket,
		Gateway:  gw,
		Renderer: ui,
		Notifier: ui,
		Confirm:  ui,
		Logger:   log,
	})

	ctx := context.Background()
	ctrl.Init(ctx)

	runLoop(ctx, ctrl, ui)
}

func runLoop(ctx context.Context, ctrl *app.Controller, ui *terminalUI) {
	for {
		input := ui.ask("shop>")
		cmd, arg, _ := strings.Cut(input, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "list":
			ctrl.Navigate(app.PageCatalog)
		case "cat":
			id, err := strconv.Atoi(arg)
			if err != nil {
				ui.Error("нужен номер котика: cat 3")
				continue
			}
			ctrl.ShowDetail(id)
		case "back":
			ctrl.GoBack()
		case "filter":
			switch catalog.Category(arg) {
			case catalog.CategoryAll, catalog.CategoryMale, catalog.CategoryFemale:
				ctrl.SetCategory(catalog.Category(arg))
			default:
				ui.Error("фильтр: all, male или female")
			}
		case "search":
			ctrl.SetSearch(arg)
		case "add":
			id, err := strconv.Atoi(arg)
			if err != nil {
				ui.Error("нужен номер котика: add 3")
				continue
			}
			ctrl.AddToCart(id)
		case "rm":
			id, err := strconv.Atoi(arg)
			if err != nil {
				ui.Error("нужен номер котика: rm 3")
				continue
			}
			ctrl.RemoveFromCart(id)
		case "clear":
			ctrl.ClearCart()
		case "cart":
			ctrl.Navigate(app.PageCart)
		case "order":
			ctrl.Navigate(app.PageOrder)
			form := orders.OrderForm{
				Name:    ui.ask("Имя"),
				Phone:   ui.ask("Телефон"),
				Address: ui.ask("Адрес (необязательно)"),
				Comment: ui.ask("Комментарий (необязательно)"),
			}
			_ = ctrl.SubmitOrder(ctx, form)
		case "feedback":
			ctrl.Navigate(app.PageFeedback)
			form := orders.FeedbackForm{
				Name:    ui.ask("Имя"),
				Contact: ui.ask("Контакт (необязательно)"),
				Subject: ui.ask("Тема (question/booking/review/delivery/other)"),
				Message: ui.ask("Сообщение"),
			}
			_ = ctrl.SubmitFeedback(ctx, form)
		case "about":
			ctrl.Navigate(app.PageAbout)
		case "retry":
			_ = ctrl.RetryLoad(ctx)
		case "help":
			printHelp(ui)
		case "quit", "exit":
			return
		default:
			ui.Error("неизвестная команда, help покажет список")
		}
	}
}

func printHelp(ui *terminalUI) {
	ui.print(strings.Join([]string{
		"команды:",
		"  list            каталог",
		"  cat <id>        карточка котика",
		"  filter <f>      фильтр: all, male, female",
		"  search <текст>  поиск по имени, породе и окрасу",
		"  add <id>        в корзину",
		"  rm <id>         убрать из корзины",
		"  cart            корзина",
		"  clear           очистить корзину",
		"  order           оформить заказ",
		"  feedback        написать нам",
		"  about           о приюте",
		"  back            назад",
		"  quit            выход",
	}, "\n"))
}
