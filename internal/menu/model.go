package menu

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MenuItem is the normalized per-item record extracted from the vendor
// payload. Every field is defaultable; a missing field never aborts
// processing of the item.
type MenuItem struct {
	ItemName        string         `json:"item_name"`
	ItemCategory    string         `json:"item_category"`
	ItemID          string         `json:"item_id"`
	MenuName        string         `json:"menu_name"`
	MenuDescription string         `json:"menu_description"`
	Pictograms      map[string]any `json:"pictograms"`
	Labels          map[string]any `json:"labels"`
	Allergens       map[string]any `json:"allergens"`
}

// DateMenu holds all menu items for a single date.
type DateMenu struct {
	Date      string     `json:"date"`
	Timestamp string     `json:"timestamp"`
	DayOfWeek string     `json:"day_of_week"`
	Items     []MenuItem `json:"items"`
}

// Menus is an order-preserving mapping from ISO date (YYYY-MM-DD) to
// DateMenu. Iteration and JSON marshaling follow the order dates were
// first encountered, which keeps exports byte-stable. Every entry's
// Date field equals its key.
type Menus struct {
	order  []string
	byDate map[string]DateMenu
}

func NewMenus() *Menus {
	return &Menus{byDate: make(map[string]DateMenu)}
}

// Set stores dm under dm.Date, overwriting any earlier entry for the
// same date (last write wins).
func (m *Menus) Set(dm DateMenu) {
	if _, ok := m.byDate[dm.Date]; !ok {
		m.order = append(m.order, dm.Date)
	}
	m.byDate[dm.Date] = dm
}

// AppendItem adds one item to the entry for date, creating the entry
// when it does not exist yet.
func (m *Menus) AppendItem(date, timestamp, dayOfWeek string, item MenuItem) {
	dm, ok := m.byDate[date]
	if !ok {
		dm = DateMenu{Date: date, Timestamp: timestamp, DayOfWeek: dayOfWeek, Items: []MenuItem{}}
		m.order = append(m.order, date)
	}
	dm.Items = append(dm.Items, item)
	m.byDate[date] = dm
}

// Get returns the entry for date.
func (m *Menus) Get(date string) (DateMenu, bool) {
	dm, ok := m.byDate[date]
	return dm, ok
}

// Len returns the number of dates.
func (m *Menus) Len() int {
	return len(m.order)
}

// Dates returns the date keys in encounter order.
func (m *Menus) Dates() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// MarshalJSON emits a JSON object whose keys appear in encounter order.
func (m *Menus) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, date := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(date)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.byDate[date])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the mapping preserving the document's key order.
func (m *Menus) UnmarshalJSON(data []byte) error {
	m.order = nil
	m.byDate = make(map[string]DateMenu)
	return eachMember(data, func(key string, value json.RawMessage) error {
		var dm DateMenu
		if err := json.Unmarshal(value, &dm); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		m.Set(dm)
		return nil
	})
}

// eachMember walks the members of a JSON object in document order.
// Plain map decoding would lose the key order.
func eachMember(data []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}

	_, err = dec.Token()
	return err
}
