package compute

import (
	"github.com/reliefsheet/backend/internal/document"
	"github.com/shopspring/decimal"
)

// Subtotal sums a bucket's rows into the bucket subtotal in primary
// currency.
//
// When the bucket pins a column via approvedKey or totalKey, that column is
// summed. Otherwise the last currency column without a compute kind is
// used. A bucket without any currency column subtotals to 0. Unparsable
// values contribute 0, this never fails.
func Subtotal(bucket *document.Bucket) decimal.Decimal {
	key := string(bucket.ApprovedKey)
	if key == "" {
		key = string(bucket.TotalKey)
	}

	if key == "" {
		for i := len(bucket.Columns) - 1; i >= 0; i-- {
			column := bucket.Columns[i]
			if column.Type == document.ColumnCurrency && column.Compute == document.ComputeNone {
				key = column.Key
				break
			}
		}
	}

	if key == "" {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, row := range bucket.Rows {
		sum = sum.Add(row.Value(key).Number())
	}

	return sum
}

// GrandTotal sums all bucket subtotals in primary currency.
func GrandTotal(doc *document.Document) decimal.Decimal {
	sum := decimal.Zero
	for i := range doc.Buckets {
		sum = sum.Add(Subtotal(&doc.Buckets[i]))
	}

	return sum
}
