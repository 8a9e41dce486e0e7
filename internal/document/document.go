// Package document contains the data model for budget documents.
//
// A budget document is an ad-hoc, multi-section table: buckets with
// user-defined columns and free-text rows. Columns of type "computed" never
// store a value, their content is derived by the compute package at read
// time.
package document

import (
	"encoding/json"
)

// ColumnType is the type of a bucket column.
type ColumnType string

const (
	ColumnText     ColumnType = "text"
	ColumnNumber   ColumnType = "number"
	ColumnCurrency ColumnType = "currency"
	ColumnComputed ColumnType = "computed"
)

// ComputeKind is the derivation rule assigned to a computed column.
// The zero value means that no rule is selected, which resolves to an
// empty cell, not an error.
type ComputeKind string

const (
	ComputeNone        ComputeKind = ""
	ComputeQtyTotal    ComputeKind = "qty_total"
	ComputeRowTotal    ComputeKind = "row_total"
	ComputeUSDEquiv    ComputeKind = "usd_equiv"
	ComputeUSDApproved ComputeKind = "usd_approved"
)

// MarshalJSON marshals the zero value as null to match the wire format.
func (k ComputeKind) MarshalJSON() ([]byte, error) {
	if k == ComputeNone {
		return []byte("null"), nil
	}

	return json.Marshal(string(k))
}

func (k *ComputeKind) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*k = ComputeNone
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*k = ComputeKind(s)
	return nil
}

// Alignment is the rendering alignment of a column.
type Alignment string

const (
	AlignNone   Alignment = ""
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

// MarshalJSON marshals the zero value as null to match the wire format.
func (a Alignment) MarshalJSON() ([]byte, error) {
	if a == AlignNone {
		return []byte("null"), nil
	}

	return json.Marshal(string(a))
}

func (a *Alignment) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = AlignNone
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*a = Alignment(s)
	return nil
}

// Key references a column by its key. It is used for the optional
// totalKey/approvedKey pins on a bucket, which are null on the wire when
// unset.
type Key string

// MarshalJSON marshals the zero value as null to match the wire format.
func (k Key) MarshalJSON() ([]byte, error) {
	if k == "" {
		return []byte("null"), nil
	}

	return json.Marshal(string(k))
}

func (k *Key) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*k = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*k = Key(s)
	return nil
}

// Role is the semantic role a column plays for computed siblings.
//
// Roles are not part of the wire format. They are resolved from the column
// list whenever the schema changes, so that computed cells can look up
// their quantity/price/approved source without re-scanning the columns.
type Role string

const (
	RoleNone           Role = ""
	RoleQuantity       Role = "quantity"
	RolePrice          Role = "price"
	RoleApprovedAmount Role = "approvedAmount"
)

// Column is one user-defined column of a bucket.
type Column struct {
	Key     string      `json:"key"`     // Unique within the bucket
	Label   string      `json:"label"`   // Heading shown to the operator
	Type    ColumnType  `json:"type"`    // Data type of the column
	Width   string      `json:"width"`   // Rendering width, free text (e.g. "12%")
	Align   Alignment   `json:"align"`   // Rendering alignment
	Compute ComputeKind `json:"compute"` // Derivation rule, only meaningful for computed columns
}

// MetaField is one free-text header field of the document.
type MetaField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Guardrail is a descriptive spending guardrail row. Guardrails are not
// computed, they only document per-bucket caps.
type Guardrail struct {
	Bucket  string `json:"bucket"`
	Purpose string `json:"purpose"`
	Cap     string `json:"cap"`
	Notes   string `json:"notes"`
}

// Meta is the document-level header and computation context.
//
// All numeric-looking fields are stored as operator-entered text and parsed
// on demand; unparsable or empty text parses to 0.
type Meta struct {
	OrgName          string      `json:"orgName"`
	TemplateTitle    string      `json:"templateTitle"`
	TemplateSubtitle string      `json:"templateSubtitle"`
	Tagline          string      `json:"tagline"`
	MetaFields       []MetaField `json:"metaFields"`

	PrimaryCurrency   string `json:"primaryCurrency"`
	PrimarySymbol     string `json:"primarySymbol"`
	SecondaryCurrency string `json:"secondaryCurrency"`
	SecondarySymbol   string `json:"secondarySymbol"`

	// Primary currency units per 1 secondary currency unit
	FXRate string `json:"fxRate"`

	MultiplierLabel string `json:"multiplierLabel"`
	MultiplierValue string `json:"multiplierValue"`

	ShowGuardrails bool        `json:"showGuardrails"`
	Guardrails     []Guardrail `json:"guardrails"`

	PreparedBy   string `json:"preparedBy"`
	PreparedDate string `json:"preparedDate"`
	ApprovedBy   string `json:"approvedBy"`
	ApprovedDate string `json:"approvedDate"`
	FooterNote   string `json:"footerNote"`
}

// Bucket is one named section of the budget document with its own column
// schema and rows.
type Bucket struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`

	// TotalKey and ApprovedKey optionally pin the column that subtotals
	// sum over. When both are unset, aggregation falls back to the last
	// currency column.
	TotalKey    Key `json:"totalKey"`
	ApprovedKey Key `json:"approvedKey"`

	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`

	// roles maps a semantic role to a column key. It is rebuilt by
	// ResolveRoles after every schema change and after unmarshalling.
	roles map[Role]string
}

// Document is the unit of persistence and export.
type Document struct {
	Meta    Meta     `json:"meta"`
	Buckets []Bucket `json:"buckets"`
}

// Bucket returns the bucket with the given id, or nil.
func (d *Document) Bucket(id string) *Bucket {
	for i := range d.Buckets {
		if d.Buckets[i].ID == id {
			return &d.Buckets[i]
		}
	}

	return nil
}

// UnmarshalJSON re-resolves the column roles after loading since they are
// not part of the wire format.
func (b *Bucket) UnmarshalJSON(data []byte) error {
	type alias Bucket

	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Bucket(raw)
	b.ResolveRoles()
	return nil
}

// Column returns the column with the given key, or nil.
func (b *Bucket) Column(key string) *Column {
	for i := range b.Columns {
		if b.Columns[i].Key == key {
			return &b.Columns[i]
		}
	}

	return nil
}

// ColumnByRole returns the column currently holding the given semantic
// role. The second return value is false when no column qualifies.
func (b *Bucket) ColumnByRole(role Role) (Column, bool) {
	if b.roles == nil {
		b.ResolveRoles()
	}

	key, ok := b.roles[role]
	if !ok {
		return Column{}, false
	}

	column := b.Column(key)
	if column == nil {
		return Column{}, false
	}

	return *column, true
}
