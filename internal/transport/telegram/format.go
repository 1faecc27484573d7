package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

// FormatProduct renders a snapshot as the message body shown to users.
func FormatProduct(p domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Code: %s\n", p.Code)
	fmt.Fprintf(&b, "Price: %s RUB\n", formatPrice(p.Price))
	fmt.Fprintf(&b, "Rating: %s\n", strconv.FormatFloat(p.Rating, 'f', -1, 64))
	fmt.Fprintf(&b, "In stock: %d", p.StockQty)
	return b.String()
}

// FormatHistory renders several snapshots separated by blank lines.
func FormatHistory(products []domain.Product) string {
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = FormatProduct(p)
	}
	return strings.Join(parts, "\n\n")
}

// formatPrice renders minor units as major units with two decimals.
func formatPrice(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// formatInterval renders a notification period in words.
func formatInterval(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int64(d/time.Minute), "minute")
	default:
		return d.String()
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.FormatInt(n, 10) + " " + unit + "s"
}
