package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Customization is the structured set of attributes that distinguishes an
// otherwise identical product line: size, color, printed text and uploaded
// artwork references. A nil *Customization means the line is the stock
// product.
type Customization struct {
	Size       string   `json:"size,omitempty"`
	Color      string   `json:"color,omitempty"`
	CustomText string   `json:"customText,omitempty"`
	Images     []string `json:"images,omitempty"`
}

// IsZero reports whether the customization carries no attributes at all.
func (c *Customization) IsZero() bool {
	if c == nil {
		return true
	}
	return c.Size == "" && c.Color == "" && c.CustomText == "" && len(c.Images) == 0
}

// CanonicalKey returns a stable serialization of the customization. Struct
// field order fixes the JSON key order, so equal customizations always
// produce equal keys.
func (c *Customization) CanonicalKey() string {
	if c.IsZero() {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}

// Value serializes the customization into a single JSON column.
func (c *Customization) Value() (driver.Value, error) {
	if c.IsZero() {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan validates and decodes the JSON column back into the typed record.
func (c *Customization) Scan(value any) error {
	if value == nil {
		*c = Customization{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported customization column type %T", value)
	}
	if len(data) == 0 {
		*c = Customization{}
		return nil
	}
	return json.Unmarshal(data, c)
}

// IdentityKey computes the cart line identity for a product and its
// customization. Two lines merge only when both parts match.
func IdentityKey(productID uint, c *Customization) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", productID)
	if key := c.CanonicalKey(); key != "" {
		sb.WriteString("|")
		sb.WriteString(key)
	}
	return sb.String()
}
