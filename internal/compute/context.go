// Package compute derives the display values of computed columns and the
// subtotal/grand total aggregates of a budget document.
//
// Every function is a pure computation over the current document state.
// Operator-entered text that does not parse as a number coerces to 0, and
// non-positive amounts render as a placeholder, never as an error.
package compute

import (
	"fmt"

	"github.com/reliefsheet/backend/internal/document"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Context carries the document-level computation inputs. It is passed
// explicitly so that resolution is deterministic and testable without an
// editing surface.
type Context struct {
	// Multiplier scales per-unit quantities, e.g. the number of homes
	Multiplier decimal.Decimal

	// FXRate is primary currency units per 1 secondary currency unit
	FXRate decimal.Decimal

	PrimarySymbol   string
	SecondarySymbol string
}

// NewContext builds the computation context from the document meta.
// Symbols that are not set fall back to the symbol of the currency code.
func NewContext(meta document.Meta) Context {
	ctx := Context{
		Multiplier:      document.NewValue(meta.MultiplierValue).Number(),
		FXRate:          document.NewValue(meta.FXRate).Number(),
		PrimarySymbol:   meta.PrimarySymbol,
		SecondarySymbol: meta.SecondarySymbol,
	}

	if ctx.PrimarySymbol == "" {
		ctx.PrimarySymbol = symbol(meta.PrimaryCurrency)
	}

	if ctx.SecondarySymbol == "" {
		ctx.SecondarySymbol = symbol(meta.SecondaryCurrency)
	}

	return ctx
}

// symbol returns the symbol for an ISO currency code, or the code itself
// when it is not a known currency.
func symbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}

	return fmt.Sprintf("%s", currency.Symbol(unit))
}
