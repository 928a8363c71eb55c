package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"kitten-shop/internal/app"
	"kitten-shop/internal/format"
)

// terminalUI renders the storefront pages as plain text and doubles as the
// toast and confirmation surface. It implements app.Renderer, app.Notifier
// and app.Confirmer.
type terminalUI struct {
	out *bufio.Writer
	in  *bufio.Reader
}

func newTerminalUI(in io.Reader, out io.Writer) *terminalUI {
	return &terminalUI{
		out: bufio.NewWriter(out),
		in:  bufio.NewReader(in),
	}
}

func (t *terminalUI) ApplyNav(nav app.NavState) {
	back := ""
	if nav.ShowBack {
		back = "  [back]"
	}
	fmt.Fprintf(t.out, "\n=== %s%s  (корзина: %d) ===\n", nav.Title, back, nav.Badge)
	t.out.Flush()
}

func (t *terminalUI) RenderCatalog(v app.CatalogView) {
	switch {
	case v.LoadFailed:
		fmt.Fprintf(t.out, "Не удалось загрузить каталог: %s\n", v.LoadError)
		fmt.Fprintln(t.out, "Команда retry повторит загрузку.")
	case v.Empty:
		fmt.Fprintln(t.out, "Котики не найдены 😿")
	default:
		for _, card := range v.Cats {
			mark := ""
			if !card.Cat.Available {
				mark = "  [продан]"
			}
			fmt.Fprintf(t.out, "%3d. %s (%s) — %s%s\n",
				card.Cat.ID, card.Cat.Name, card.Cat.Breed, card.PriceLabel, mark)
		}
	}
	fmt.Fprintf(t.out, "фильтр: %s", v.Category)
	if v.Search != "" {
		fmt.Fprintf(t.out, ", поиск: %q", v.Search)
	}
	fmt.Fprintln(t.out)
	t.out.Flush()
}

func (t *terminalUI) RenderDetail(v app.DetailView) {
	c := v.Cat
	fmt.Fprintf(t.out, "%s — %s\n", c.Name, c.Breed)
	fmt.Fprintf(t.out, "Возраст: %s, окрас: %s\n", v.AgeLabel, c.Color)
	fmt.Fprintf(t.out, "Прививки: %s, родословная: %s\n", yesNo(c.Vaccinated), yesNo(c.Pedigree))
	if c.Description != "" {
		fmt.Fprintln(t.out, c.Description)
	}
	fmt.Fprintf(t.out, "Цена: %s\n", v.PriceLabel)
	switch {
	case !c.Available:
		fmt.Fprintln(t.out, "Уже продан")
	case v.InCart:
		fmt.Fprintln(t.out, "Уже в корзине ✓")
	default:
		fmt.Fprintf(t.out, "add %d — добавить в корзину\n", c.ID)
	}
	t.out.Flush()
}

func (t *terminalUI) RenderCart(v app.CartView) {
	if v.Empty {
		fmt.Fprintln(t.out, "Корзина пуста 🛒")
		t.out.Flush()
		return
	}
	for _, line := range v.Items {
		fmt.Fprintf(t.out, "%3d. %s — %s\n", line.Cat.ID, line.Cat.Name, line.PriceLabel)
	}
	fmt.Fprintf(t.out, "%s на %s\n", v.CountLabel, v.TotalLabel)
	t.out.Flush()
}

func (t *terminalUI) RenderOrderForm(v app.OrderFormView) {
	fmt.Fprintf(t.out, "Оформление заказа: %s на %s\n", format.KittenCount(v.Count), v.TotalLabel)
	if v.PrefillName != "" {
		fmt.Fprintf(t.out, "Имя (по умолчанию %s)\n", v.PrefillName)
	}
	t.out.Flush()
}

func (t *terminalUI) SetCartBadge(count int) {}

func (t *terminalUI) ResetOrderForm()    {}
func (t *terminalUI) ResetFeedbackForm() {}

func (t *terminalUI) Success(msg string) {
	fmt.Fprintf(t.out, "✔ %s\n", msg)
	t.out.Flush()
}

func (t *terminalUI) Error(msg string) {
	fmt.Fprintf(t.out, "✖ %s\n", msg)
	t.out.Flush()
}

func (t *terminalUI) Confirm(prompt string) bool {
	answer := t.ask(prompt + " [y/N]")
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes" || answer == "д" || answer == "да"
}

func (t *terminalUI) print(msg string) {
	fmt.Fprintln(t.out, msg)
	t.out.Flush()
}

// ask prints a prompt and reads one trimmed line.
func (t *terminalUI) ask(prompt string) string {
	fmt.Fprintf(t.out, "%s: ", prompt)
	t.out.Flush()

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func yesNo(b bool) string {
	if b {
		return "да"
	}
	return "нет"
}
