package compute

import (
	"github.com/reliefsheet/backend/internal/document"
	"github.com/shopspring/decimal"
)

// Resolve returns the display value of one cell.
//
// For non-computed columns this is the stored text. For computed columns
// the value is derived from sibling columns and the context: a missing
// sibling yields an empty string, a non-positive amount or rate yields the
// formatter's placeholder for currency kinds and an empty string for plain
// number kinds.
func Resolve(bucket *document.Bucket, row document.Row, column document.Column, ctx Context) string {
	if column.Type != document.ColumnComputed {
		return row.Value(column.Key).Raw()
	}

	switch column.Compute {
	case document.ComputeQtyTotal:
		return qtyTotal(bucket, row, ctx)
	case document.ComputeRowTotal:
		amount, ok := rowTotal(bucket, row, ctx)
		if !ok {
			return ""
		}
		return Primary(amount, ctx)
	case document.ComputeUSDEquiv:
		amount, ok := rowTotal(bucket, row, ctx)
		if !ok {
			return ""
		}
		return Secondary(amount, ctx)
	case document.ComputeUSDApproved:
		source, ok := bucket.ColumnByRole(document.RoleApprovedAmount)
		if !ok {
			return ""
		}
		return Secondary(row.Value(source.Key).Number(), ctx)
	}

	// A computed column with no compute kind selected renders empty
	return ""
}

// qtyTotal is quantity * multiplier as a plain number.
func qtyTotal(bucket *document.Bucket, row document.Row, ctx Context) string {
	quantity, ok := bucket.ColumnByRole(document.RoleQuantity)
	if !ok {
		return ""
	}

	q := row.Value(quantity.Key).Number()
	if !q.IsPositive() || !ctx.Multiplier.IsPositive() {
		return ""
	}

	return q.Mul(ctx.Multiplier).String()
}

// rowTotal is the quantity/price pipeline shared by row_total and
// usd_equiv: quantity scaled by the multiplier when one is set, times the
// price. It reports false when the bucket has no quantity or price column.
func rowTotal(bucket *document.Bucket, row document.Row, ctx Context) (decimal.Decimal, bool) {
	quantity, ok := bucket.ColumnByRole(document.RoleQuantity)
	if !ok {
		return decimal.Zero, false
	}

	price, ok := bucket.ColumnByRole(document.RolePrice)
	if !ok {
		return decimal.Zero, false
	}

	q := row.Value(quantity.Key).Number()
	if ctx.Multiplier.IsPositive() {
		q = q.Mul(ctx.Multiplier)
	}

	return q.Mul(row.Value(price.Key).Number()), true
}
