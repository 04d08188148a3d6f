package mcpserver

import (
	"github.com/iam-fast/meyers-scraper/internal/menu"
)

// MenusQueryInput selects which school/offer to fetch. Empty fields
// fall back to the configured defaults.
type MenusQueryInput struct {
	SchoolID      string `json:"school_id,omitempty" jsonschema:"school identifier for the vendor API"`
	Language      string `json:"language,omitempty" jsonschema:"language code (e.g. 'en', 'da')"`
	TargetOfferID string `json:"target_offer_id,omitempty" jsonschema:"offer identifier to extract menus from"`
}

// MenuByDateInput selects a single date.
type MenuByDateInput struct {
	Date          string `json:"date" jsonschema:"date in YYYY-MM-DD format (e.g. '2024-01-15')"`
	SchoolID      string `json:"school_id,omitempty" jsonschema:"school identifier for the vendor API"`
	Language      string `json:"language,omitempty" jsonschema:"language code (e.g. 'en', 'da')"`
	TargetOfferID string `json:"target_offer_id,omitempty" jsonschema:"offer identifier to extract menus from"`
}

// EmptyInput is used by tools that take no arguments.
type EmptyInput struct{}

// AllMenusResult is the get_all_menus envelope.
type AllMenusResult struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message"`
	Data     map[string]menu.DateMenu `json:"data"`
	Metadata *menu.Metadata           `json:"metadata"`
}

// DateMenuResult is the get_menu_by_date / get_todays_menu envelope.
type DateMenuResult struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Data     *menu.DateMenu `json:"data"`
	Metadata *menu.Metadata `json:"metadata"`
}

// HealthResult is the health_check payload.
type HealthResult struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// TodayResult is the get_today_date payload, offering the current date
// in the formats other date-based tools expect.
type TodayResult struct {
	Success bool      `json:"success"`
	Date    DateParts `json:"date"`
}

type DateParts struct {
	ISODate        string `json:"iso_date"`
	DayOfWeek      string `json:"day_of_week"`
	DayOfWeekShort string `json:"day_of_week_short"`
	Month          string `json:"month"`
	MonthShort     string `json:"month_short"`
	Year           int    `json:"year"`
	Day            int    `json:"day"`
	MonthNum       int    `json:"month_num"`
	Timestamp      string `json:"timestamp"`
	UnixTimestamp  int64  `json:"unix_timestamp"`
}
