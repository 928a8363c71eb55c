package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	"kitten-shop/internal/domain/orders"
	"kitten-shop/internal/format"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━"

// NotifyOrder formats and broadcasts the new-order message.
func (c *Client) NotifyOrder(ctx context.Context, o orders.Order) error {
	return c.broadcast(ctx, formatOrderMessage(o))
}

// NotifyFeedback formats and broadcasts the feedback message.
func (c *Client) NotifyFeedback(ctx context.Context, f orders.Feedback) error {
	return c.broadcast(ctx, formatFeedbackMessage(f))
}

func formatOrderMessage(o orders.Order) string {
	lines := []string{
		"🛍️ <b>НОВЫЙ ЗАКАЗ!</b>",
		divider,
		fmt.Sprintf("👤 <b>Имя:</b> %s", esc(o.Name)),
		fmt.Sprintf("📞 <b>Телефон:</b> %s", esc(o.Phone)),
	}
	if o.Address != "" {
		lines = append(lines, fmt.Sprintf("📍 <b>Адрес:</b> %s", esc(o.Address)))
	}
	if o.Comment != "" {
		lines = append(lines, fmt.Sprintf("💬 <b>Комментарий:</b> %s", esc(o.Comment)))
	}

	lines = append(lines, "", fmt.Sprintf("🐱 <b>Котята (%d):</b>", len(o.Items)))
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf("  • %s (%s) — %s", esc(it.Name), esc(it.Breed), format.Price(it.Price)))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("💰 <b>Итого: %s</b>", format.Price(o.Total)),
		divider,
		fmt.Sprintf("🕐 %s", o.TS.Format("02.01.2006 15:04")),
	)
	return strings.Join(lines, "\n")
}

func formatFeedbackMessage(f orders.Feedback) string {
	lines := []string{
		"💬 <b>ОБРАТНАЯ СВЯЗЬ</b>",
		divider,
		fmt.Sprintf("👤 <b>Имя:</b> %s", esc(f.Name)),
	}
	if f.Contact != "" {
		lines = append(lines, fmt.Sprintf("📞 <b>Контакт:</b> %s", esc(f.Contact)))
	}

	lines = append(lines,
		fmt.Sprintf("📋 <b>Тема:</b> %s", esc(f.Subject)),
		"",
		"✉️ <b>Сообщение:</b>",
		esc(f.Message),
		divider,
		fmt.Sprintf("🕐 %s", f.TS.Format("02.01.2006 15:04")),
	)
	return strings.Join(lines, "\n")
}

func esc(s string) string {
	return html.EscapeString(s)
}
