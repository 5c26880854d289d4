package entity

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PackingItem is a single item inside a packing list category.
// Quantity is kept as a float64 on purpose: freshly generated lists accept
// whatever number the generative backend produced, while the inbound edit
// schema enforces integers >= 1 before anything is stored.
type PackingItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Packed   bool    `json:"packed"`
}

// PackingListCategory is one named category with its items.
type PackingListCategory struct {
	Name  string
	Items []PackingItem
}

// PackingListContent is an ordered set of categories. Category order is
// display order, so the type is a slice rather than a map; the JSON form is
// still a single object keyed by category name.
type PackingListContent []PackingListCategory

// Category returns the items of the named category and whether it exists.
func (c PackingListContent) Category(name string) ([]PackingItem, bool) {
	for _, cat := range c {
		if cat.Name == name {
			return cat.Items, true
		}
	}
	return nil, false
}

// ItemCount returns the total number of items across all categories.
func (c PackingListContent) ItemCount() int {
	count := 0
	for _, cat := range c {
		count += len(cat.Items)
	}
	return count
}

// MarshalJSON renders the content as a JSON object preserving category order.
func (c PackingListContent) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		items := cat.Items
		if items == nil {
			items = []PackingItem{}
		}
		value, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object into ordered categories. encoding/json
// maps would lose key order, so this walks the token stream instead.
func (c *PackingListContent) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("packing list content must be a JSON object")
	}

	content := make(PackingListContent, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in packing list content", keyTok)
		}

		var items []PackingItem
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		content = append(content, PackingListCategory{Name: name, Items: items})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = content
	return nil
}

// Value implements driver.Valuer so the content can be stored in a jsonb column.
func (c PackingListContent) Value() (driver.Value, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for reading the content back from a jsonb column.
func (c *PackingListContent) Scan(value any) error {
	if value == nil {
		*c = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type %T for packing list content", value)
	}
}

// PackingList is the stored packing list attached to a trip.
type PackingList struct {
	ID        string             `json:"id" gorm:"primaryKey"`
	TripID    string             `json:"tripId"`
	UserID    string             `json:"userId"`
	Content   PackingListContent `json:"content" gorm:"type:jsonb"`
	CreatedAt string             `json:"createdDate"`
	UpdatedAt string             `json:"updatedDate"`
}
