package utils

import "fmt"

// FormatPrice renders an amount with the configured currency symbol,
// e.g. "150.00 ₺".
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "₺"
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}
