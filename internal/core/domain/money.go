package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// All monetary values in the marketplace render in Saudi riyal with the
// ar-SA locale, regardless of which vertical the record came from.
var priceSAR = message.NewPrinter(language.MustParse("ar-SA"))

// FormatPrice renders an amount as an ar-SA currency string, e.g.
// "١٢٣٫٥٠ ر.س.".
func FormatPrice(amount float64) string {
	return priceSAR.Sprintf("%.2f ر.س.", amount)
}
