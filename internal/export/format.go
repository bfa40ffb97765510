package export

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"runway.app/api/internal/model"
)

// AmountFormatter renders whole-unit amounts with a currency symbol and
// locale grouping, e.g. "-$52,000" for en-US. Codes that x/text does not
// recognize are rendered with the fallback currency.
type AmountFormatter struct {
	printer  *message.Printer
	fallback currency.Unit
}

func NewAmountFormatter(locale, fallbackCode string) (*AmountFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing export locale %q: %w", locale, err)
	}

	fallback, ok := parseUnit(fallbackCode)
	if !ok {
		return nil, fmt.Errorf("unknown fallback currency %q", fallbackCode)
	}

	return &AmountFormatter{
		printer:  message.NewPrinter(tag),
		fallback: fallback,
	}, nil
}

// Unit resolves code to a currency unit, or the fallback when it cannot.
func (f *AmountFormatter) Unit(code string) currency.Unit {
	if unit, ok := parseUnit(code); ok {
		return unit
	}
	return f.fallback
}

// Format renders value in code with zero fractional digits. Negative values
// get a leading minus before the symbol.
func (f *AmountFormatter) Format(value int64, code string) string {
	symbol := f.printer.Sprint(currency.Symbol(f.Unit(code)))

	if value < 0 {
		return "-" + symbol + f.printer.Sprintf("%d", uint64(-(value+1))+1)
	}
	return symbol + f.printer.Sprintf("%d", value)
}

// Signed renders the transaction amount negative for expenses and unsigned for income.
func (f *AmountFormatter) Signed(txn model.Transaction) string {
	return f.Format(txn.SignedAmount(), txn.Currency)
}

func parseUnit(code string) (currency.Unit, bool) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil || unit == (currency.Unit{}) {
		return currency.Unit{}, false
	}
	return unit, true
}
