// Package format holds the display helpers the storefront and the admin
// notifications share: ruble prices, kitten ages and Russian plural forms.
package format

import (
	"fmt"
	"strconv"
)

// Thousands renders n with space-separated thousand groups ("42 000").
func Thousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.Itoa(n)
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Price renders a ruble amount the way the shop shows it: "42 000 ₽".
func Price(n int) string {
	return Thousands(n) + " ₽"
}

// Age spells out an age in months ("3 месяца", "1 год 2 мес.").
func Age(months int) string {
	if months < 0 {
		months = 0
	}
	if months < 12 {
		return fmt.Sprintf("%d %s", months, monthWord(months))
	}

	years := months / 12
	rest := months % 12
	if rest == 0 {
		return fmt.Sprintf("%d %s", years, yearWord(years))
	}
	return fmt.Sprintf("%d %s %d мес.", years, yearWord(years), rest)
}

func monthWord(n int) string {
	switch {
	case n == 1:
		return "месяц"
	case n < 5:
		return "месяца"
	default:
		return "месяцев"
	}
}

func yearWord(n int) string {
	switch {
	case n == 1:
		return "год"
	case n < 5:
		return "года"
	default:
		return "лет"
	}
}

// KittenCount renders "1 котёнок", "2 котёнка", "5 котят".
func KittenCount(n int) string {
	return fmt.Sprintf("%d %s", n, KittenWord(n))
}

// KittenWord picks the plural form of «котёнок» for n.
func KittenWord(n int) string {
	if n < 0 {
		n = -n
	}
	if n%10 == 1 && n%100 != 11 {
		return "котёнок"
	}
	if m := n % 10; m >= 2 && m <= 4 {
		if h := n % 100; h != 12 && h != 13 && h != 14 {
			return "котёнка"
		}
	}
	return "котят"
}
