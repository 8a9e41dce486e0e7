package document

import (
	"strings"

	"github.com/google/uuid"
)

// AddBucket appends a new empty bucket and returns it.
func (d *Document) AddBucket(name string) *Bucket {
	d.Buckets = append(d.Buckets, Bucket{
		ID:   uuid.NewString(),
		Name: name,
	})

	return &d.Buckets[len(d.Buckets)-1]
}

// RemoveBucket removes the bucket with the given id. It returns false when
// no such bucket exists.
func (d *Document) RemoveBucket(id string) bool {
	for i := range d.Buckets {
		if d.Buckets[i].ID == id {
			d.Buckets = append(d.Buckets[:i], d.Buckets[i+1:]...)
			return true
		}
	}

	return false
}

// MoveBucket moves the bucket with the given id to the target position.
// Out of range positions are clamped.
func (d *Document) MoveBucket(id string, to int) bool {
	from := -1
	for i := range d.Buckets {
		if d.Buckets[i].ID == id {
			from = i
			break
		}
	}

	if from == -1 {
		return false
	}

	if to < 0 {
		to = 0
	}
	if to > len(d.Buckets)-1 {
		to = len(d.Buckets) - 1
	}

	bucket := d.Buckets[from]
	d.Buckets = append(d.Buckets[:from], d.Buckets[from+1:]...)
	d.Buckets = append(d.Buckets[:to], append([]Bucket{bucket}, d.Buckets[to:]...)...)
	return true
}

// newKey generates a column key that is unique within the bucket.
func (b *Bucket) newKey() string {
	for {
		key := "col-" + uuid.NewString()[:8]
		if b.Column(key) == nil {
			return key
		}
	}
}

// AddColumn appends a column with a fresh unique key and returns it.
func (b *Bucket) AddColumn(label string, columnType ColumnType) *Column {
	b.Columns = append(b.Columns, Column{
		Key:   b.newKey(),
		Label: label,
		Type:  columnType,
	})

	b.ResolveRoles()
	return &b.Columns[len(b.Columns)-1]
}

// RemoveColumn removes the column with the given key and its stored row
// values.
//
// Removing a column that was the implicit quantity or price source changes
// what computed siblings resolve to. This is accepted behaviour, dependent
// cells degrade to empty output instead of raising an error.
func (b *Bucket) RemoveColumn(key string) bool {
	for i := range b.Columns {
		if b.Columns[i].Key == key {
			b.Columns = append(b.Columns[:i], b.Columns[i+1:]...)

			for r := range b.Rows {
				delete(b.Rows[r].Values, key)
			}

			b.ResolveRoles()
			return true
		}
	}

	return false
}

// MoveColumn moves the column with the given key to the target position.
// Column order is significant: it drives role resolution.
func (b *Bucket) MoveColumn(key string, to int) bool {
	from := -1
	for i := range b.Columns {
		if b.Columns[i].Key == key {
			from = i
			break
		}
	}

	if from == -1 {
		return false
	}

	if to < 0 {
		to = 0
	}
	if to > len(b.Columns)-1 {
		to = len(b.Columns) - 1
	}

	column := b.Columns[from]
	b.Columns = append(b.Columns[:from], b.Columns[from+1:]...)
	b.Columns = append(b.Columns[:to], append([]Column{column}, b.Columns[to:]...)...)

	b.ResolveRoles()
	return true
}

// SetColumnType changes the type of a column. An inconsistent result, for
// example a compute kind left on a column that is no longer computed, is
// tolerated and resolves to an empty value.
func (b *Bucket) SetColumnType(key string, columnType ColumnType) bool {
	column := b.Column(key)
	if column == nil {
		return false
	}

	column.Type = columnType
	b.ResolveRoles()
	return true
}

// SetColumnCompute changes the compute kind of a column.
func (b *Bucket) SetColumnCompute(key string, kind ComputeKind) bool {
	column := b.Column(key)
	if column == nil {
		return false
	}

	column.Compute = kind
	b.ResolveRoles()
	return true
}

// AddRow appends an empty row and returns it.
func (b *Bucket) AddRow() *Row {
	b.Rows = append(b.Rows, Row{
		ID:     uuid.NewString(),
		Values: make(map[string]Value),
	})

	return &b.Rows[len(b.Rows)-1]
}

// RemoveRow removes the row with the given id.
func (b *Bucket) RemoveRow(id string) bool {
	for i := range b.Rows {
		if b.Rows[i].ID == id {
			b.Rows = append(b.Rows[:i], b.Rows[i+1:]...)
			return true
		}
	}

	return false
}

// SetValue stores a cell value on the row with the given id. Values for
// computed columns are never stored since their content is always derived.
func (b *Bucket) SetValue(rowID, key, raw string) bool {
	column := b.Column(key)
	if column == nil || column.Type == ColumnComputed {
		return false
	}

	for i := range b.Rows {
		if b.Rows[i].ID == rowID {
			if b.Rows[i].Values == nil {
				b.Rows[i].Values = make(map[string]Value)
			}

			b.Rows[i].Values[key] = NewValue(raw)
			return true
		}
	}

	return false
}

// ResolveRoles rebuilds the role table for the bucket.
//
// The heuristics are column-order dependent and the first match wins:
// the quantity column is the first number column without a compute kind,
// the price column is the first such currency column, and the approved
// amount source is the first currency column whose key contains "approv",
// falling back to the last currency column. The substring match is kept
// exactly as-is since changing it would change financial output for saved
// documents.
func (b *Bucket) ResolveRoles() {
	b.roles = make(map[Role]string)

	approvedByKey := false
	for _, column := range b.Columns {
		if column.Compute != ComputeNone {
			continue
		}

		switch column.Type {
		case ColumnNumber:
			if _, ok := b.roles[RoleQuantity]; !ok {
				b.roles[RoleQuantity] = column.Key
			}
		case ColumnCurrency:
			if _, ok := b.roles[RolePrice]; !ok {
				b.roles[RolePrice] = column.Key
			}

			if approvedByKey {
				continue
			}

			// The last currency column is the fallback source for
			// approved amounts until a key matches the substring.
			b.roles[RoleApprovedAmount] = column.Key

			if strings.Contains(strings.ToLower(column.Key), "approv") {
				approvedByKey = true
			}
		}
	}
}
