package compute

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is rendered wherever an amount is not meaningful.
const Placeholder = "—"

var printer = message.NewPrinter(language.English)

// Primary formats an amount in the primary currency: the symbol followed by
// the amount with thousands separators and exactly two decimal places.
// Amounts that are not positive render as the placeholder.
//
// This formatter is used for inline computed cells and for subtotal and
// grand total displays alike, so that both cannot drift apart.
func Primary(amount decimal.Decimal, ctx Context) string {
	if !amount.IsPositive() {
		return Placeholder
	}

	return ctx.PrimarySymbol + group(amount)
}

// Secondary converts a primary-currency amount with the FX rate and formats
// it in the secondary currency. A missing rate or a non-positive amount
// renders as the placeholder.
func Secondary(amount decimal.Decimal, ctx Context) string {
	if !ctx.FXRate.IsPositive() || !amount.IsPositive() {
		return Placeholder
	}

	return ctx.SecondarySymbol + group(amount.Div(ctx.FXRate))
}

// group renders the amount with thousands separators and two decimals.
func group(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return printer.Sprintf("%v", number.Decimal(f, number.Scale(2)))
}
