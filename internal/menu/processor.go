package menu

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Processor normalizes raw vendor JSON into date-keyed menus.
//
// Two document shapes are accepted. The plain form is an object keyed
// by ISO date:
//
//	{"2024-01-15": {"dayOfWeek": "Monday", "timestamp": "1705276800", "items": [...]}}
//
// The offer-envelope form nests everything under a top-level "offers"
// object, with per-item availability keyed by unix timestamp; it is
// flattened into the same result.
//
// Processing is best-effort: an entry with a missing or unparsable date
// is skipped, everything else goes through.
type Processor struct {
	offerID string
	logger  *slog.Logger
}

func NewProcessor(targetOfferID string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{offerID: targetOfferID, logger: logger}
}

// Process parses raw and returns the normalized date-keyed menus.
// Only a structurally invalid document is an error; bad entries are
// dropped with a warning.
func (p *Processor) Process(raw []byte) (*Menus, error) {
	var probe struct {
		Offers json.RawMessage `json:"offers"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse menu document: %w", err)
	}

	if probe.Offers != nil {
		return p.processOffers(probe.Offers)
	}
	return p.processDates(raw)
}

// rawEntry is one date-grouped entry as the vendor sends it.
type rawEntry struct {
	DayOfWeek string         `json:"dayOfWeek"`
	Timestamp flexibleString `json:"timestamp"`
	Items     []rawItem      `json:"items"`
}

type rawItem struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	ID       flexibleString `json:"id"`
	Menu     *rawMenu       `json:"menu"`
}

type rawMenu struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Pictograms  map[string]any `json:"pictograms"`
	Labels      map[string]any `json:"labels"`
	Allergens   map[string]any `json:"allergens"`
}

func (p *Processor) processDates(raw []byte) (*Menus, error) {
	menus := NewMenus()

	err := eachMember(raw, func(key string, value json.RawMessage) error {
		date := strings.TrimSpace(key)
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			p.logger.Warn("skipping entry with unparsable date", "date", key)
			return nil
		}

		var entry rawEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			p.logger.Warn("skipping malformed date entry", "date", date, "error", err)
			return nil
		}

		dayOfWeek := strings.TrimSpace(entry.DayOfWeek)
		if dayOfWeek == "" {
			dayOfWeek = parsed.Weekday().String()
		}

		items := make([]MenuItem, 0, len(entry.Items))
		for _, it := range entry.Items {
			items = append(items, buildItem(it))
		}

		menus.Set(DateMenu{
			Date:      date,
			Timestamp: strings.TrimSpace(string(entry.Timestamp)),
			DayOfWeek: dayOfWeek,
			Items:     items,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse menu document: %w", err)
	}

	p.logger.Debug("processed date-grouped document", "dates", menus.Len())
	return menus, nil
}

// offerItem is one item in the offer envelope, carrying per-date
// availability keyed by unix timestamp.
type offerItem struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	ID       flexibleString  `json:"id"`
	Dates    json.RawMessage `json:"dates"`
}

type offerDateInfo struct {
	Available bool     `json:"available"`
	Menu      *rawMenu `json:"menu"`
}

func (p *Processor) processOffers(offers json.RawMessage) (*Menus, error) {
	menus := NewMenus()

	var byID map[string]json.RawMessage
	if err := json.Unmarshal(offers, &byID); err != nil {
		return nil, fmt.Errorf("parse offers: %w", err)
	}

	target, ok := byID[p.offerID]
	if !ok {
		p.logger.Warn("target offer not found", "target_offer_id", p.offerID)
		return menus, nil
	}

	var offer struct {
		Items []offerItem `json:"items"`
	}
	if err := json.Unmarshal(target, &offer); err != nil {
		return nil, fmt.Errorf("parse offer %s: %w", p.offerID, err)
	}

	for _, item := range offer.Items {
		if item.Dates == nil {
			continue
		}
		err := eachMember(item.Dates, func(ts string, value json.RawMessage) error {
			unix, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64)
			if err != nil {
				p.logger.Warn("skipping entry with unparsable timestamp", "timestamp", ts)
				return nil
			}

			var info offerDateInfo
			if err := json.Unmarshal(value, &info); err != nil {
				p.logger.Warn("skipping malformed date info", "timestamp", ts, "error", err)
				return nil
			}
			if !info.Available || info.Menu == nil {
				return nil
			}

			day := time.Unix(unix, 0)
			menus.AppendItem(
				day.Format(dateLayout),
				strings.TrimSpace(ts),
				day.Weekday().String(),
				buildItem(rawItem{
					Name:     item.Name,
					Category: item.Category,
					ID:       item.ID,
					Menu:     info.Menu,
				}),
			)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("parse dates for item %q: %w", item.Name, err)
		}
	}

	p.logger.Debug("processed offer envelope", "offer", p.offerID, "dates", menus.Len())
	return menus, nil
}

// buildItem applies the defensive defaults: empty strings for missing
// text fields, empty mappings for missing pictograms/labels/allergens,
// and trailing-whitespace trimming on everything extracted.
func buildItem(it rawItem) MenuItem {
	item := MenuItem{
		ItemName:     strings.TrimRight(it.Name, " \t\r\n"),
		ItemCategory: strings.TrimRight(it.Category, " \t\r\n"),
		ItemID:       strings.TrimRight(string(it.ID), " \t\r\n"),
		Pictograms:   map[string]any{},
		Labels:       map[string]any{},
		Allergens:    map[string]any{},
	}
	if it.Menu != nil {
		item.MenuName = strings.TrimRight(it.Menu.Name, " \t\r\n")
		item.MenuDescription = strings.TrimRight(it.Menu.Description, " \t\r\n")
		if it.Menu.Pictograms != nil {
			item.Pictograms = trimMapValues(it.Menu.Pictograms)
		}
		if it.Menu.Labels != nil {
			item.Labels = trimMapValues(it.Menu.Labels)
		}
		if it.Menu.Allergens != nil {
			item.Allergens = trimMapValues(it.Menu.Allergens)
		}
	}
	return item
}

// trimMapValues trims trailing whitespace from string values,
// recursing into nested mappings and lists.
func trimMapValues(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = trimValue(v)
	}
	return out
}

func trimValue(v any) any {
	switch t := v.(type) {
	case string:
		return strings.TrimRight(t, " \t\r\n")
	case map[string]any:
		return trimMapValues(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = trimValue(e)
		}
		return out
	default:
		return v
	}
}

// flexibleString decodes a JSON string or number as a string, since the
// vendor is not consistent about quoting ids and timestamps.
type flexibleString string

func (f *flexibleString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = flexibleString(str)
		return nil
	}
	*f = flexibleString(s)
	return nil
}
