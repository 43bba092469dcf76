package summary

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"go-expense-tracker/model"
)

// Formatter renders amounts as locale-grouped currency strings. The numeric
// value is formatted as an unsigned magnitude; any sign is applied separately
// so a stored sign can never double up with the type-derived prefix.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

func NewFormatter(tag language.Tag, symbol string) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// DefaultFormatter formats Colombian pesos, the currency the tracker has
// always displayed: no decimals, locale-grouped thousands.
func DefaultFormatter() *Formatter {
	return NewFormatter(language.MustParse("es-CO"), "$")
}

// Format renders the magnitude of amount with no fraction digits.
func (f *Formatter) Format(amount float64) string {
	return f.printer.Sprintf("%s %v", f.symbol,
		number.Decimal(math.Abs(amount), number.MaxFractionDigits(0)))
}

// FormatSigned renders amount with a leading minus when it is negative, for
// figures like the balance that carry their own sign.
func (f *Formatter) FormatSigned(amount float64) string {
	if amount < 0 {
		return "-" + f.Format(amount)
	}
	return f.Format(amount)
}

// Signed renders a transaction amount prefixed by + for income and - for
// expense, regardless of the stored sign.
func (f *Formatter) Signed(t model.Transaction) string {
	if t.Type == model.TypeIncome {
		return "+" + f.Format(float64(t.Amount))
	}
	return "-" + f.Format(float64(t.Amount))
}
