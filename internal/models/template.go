package models

import (
	"encoding/json"
	"strings"

	"github.com/reliefsheet/backend/internal/document"
	"gorm.io/gorm"
)

// Template is a saved budget document plus a name and description.
//
// The document is persisted as one JSON column in the engine's wire format.
// The values inside it stay operator-entered text; nothing is re-formatted
// on the way in or out.
type Template struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"`
	Note     string
	Document document.Document `gorm:"serializer:json"`
}

func (t *Template) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// Export returns all templates on this instance.
func (Template) Export() (json.RawMessage, error) {
	var templates []Template
	err := DB.Unscoped().Where(&Template{}).Find(&templates).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&templates)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
