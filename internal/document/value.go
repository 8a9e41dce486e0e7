package document

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates the variants of a cell value.
type ValueKind uint8

const (
	ValueUnset ValueKind = iota
	ValueText
	ValueNumber
)

// Value is one cell value of a row.
//
// The raw operator text is always preserved so that serialization is
// lossless. When the text parses as a number, the parsed amount is kept
// alongside it; everything else coerces to 0 when read numerically.
type Value struct {
	kind   ValueKind
	raw    string
	number decimal.Decimal
}

// NewValue parses the raw text into a Value.
func NewValue(raw string) Value {
	if raw == "" {
		return Value{}
	}

	number, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Value{kind: ValueText, raw: raw}
	}

	return Value{kind: ValueNumber, raw: raw, number: number}
}

// Kind returns the variant of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Raw returns the text exactly as the operator entered it.
func (v Value) Raw() string {
	return v.raw
}

// Number returns the parsed amount. Unset and unparsable values return 0,
// never an error.
func (v Value) Number() decimal.Decimal {
	return v.number
}

// Row is one row of a bucket: an id plus one value per non-computed column
// key. Values for computed columns are never stored, they are always
// derived.
type Row struct {
	ID     string
	Values map[string]Value
}

// Value returns the value stored for the column key. Missing keys return
// the unset value.
func (r Row) Value(key string) Value {
	return r.Values[key]
}

// MarshalJSON flattens the row into the wire shape, the values keyed
// directly next to the id.
func (r Row) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(r.Values)+1)
	for key, value := range r.Values {
		flat[key] = value.Raw()
	}
	flat["id"] = r.ID

	return json.Marshal(flat)
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	r.ID = flat["id"]
	delete(flat, "id")

	r.Values = make(map[string]Value, len(flat))
	for key, raw := range flat {
		r.Values[key] = NewValue(raw)
	}

	return nil
}
