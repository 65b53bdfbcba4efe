// Package pricing derives display values from a product's price slabs:
// the min/max range, the currency label shown on cards and the
// human-readable size of each slab.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Slab is the pricing view of one purchasable size.
type Slab struct {
	Quantity decimal.Decimal
	Unit     string
	Price    decimal.Decimal
}

// Range returns the lowest and highest slab price. An empty list yields 0, 0.
func Range(slabs []Slab) (min, max decimal.Decimal) {
	if len(slabs) == 0 {
		return decimal.Zero, decimal.Zero
	}
	min, max = slabs[0].Price, slabs[0].Price
	for _, s := range slabs[1:] {
		if s.Price.LessThan(min) {
			min = s.Price
		}
		if s.Price.GreaterThan(max) {
			max = s.Price
		}
	}
	return min, max
}

// Formatter renders whole-unit currency amounts with locale digit grouping.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a Formatter for the given currency symbol and BCP 47
// locale. An unparseable locale falls back to en-IN.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("en-IN")
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format rounds p to a whole amount (half away from zero) and prefixes the
// currency symbol, e.g. ₹1,500.
func (f *Formatter) Format(p decimal.Decimal) string {
	r := p.Round(0)
	digits := f.printer.Sprint(number.Decimal(r.Abs().IntPart()))
	if r.IsNegative() {
		return "-" + f.symbol + digits
	}
	return f.symbol + digits
}

// Label renders a single price when every slab shares one price point and
// "min – max" otherwise. An empty list renders as "".
func (f *Formatter) Label(slabs []Slab) string {
	if len(slabs) == 0 {
		return ""
	}
	min, max := Range(slabs)
	if min.Equal(max) {
		return f.Format(min)
	}
	return f.Format(min) + " – " + f.Format(max)
}

type unitWords struct{ singular, plural string }

var units = map[string]unitWords{
	"g":     {"gram", "grams"},
	"kg":    {"kg", "kg"},
	"piece": {"piece", "pieces"},
	"dozen": {"dozen", "dozens"},
	"pack":  {"pack", "packs"},
}

// UnitLabel renders a slab size. Weight units are written compactly
// ("250g", "1kg"); counted units use words ("1 piece", "2 packs"). Without a
// unit only the quantity is shown.
func UnitLabel(unit string, quantity decimal.Decimal) string {
	if unit == "" {
		return quantity.String()
	}
	key := strings.ToLower(unit)
	if key == "g" || key == "kg" {
		return quantity.String() + unit
	}
	w, ok := units[key]
	if !ok {
		w = unitWords{unit, unit}
	}
	if quantity.Equal(decimal.NewFromInt(1)) {
		return quantity.String() + " " + w.singular
	}
	return quantity.String() + " " + w.plural
}
