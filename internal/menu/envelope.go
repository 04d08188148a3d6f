package menu

import (
	"time"

	"github.com/iam-fast/meyers-scraper/internal/kanpla"
)

// Envelope is the response wrapper shared by the HTTP API and the MCP
// tools: {success, message, data, metadata}.
type Envelope struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Data     any       `json:"data"`
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata describes which request produced a response and when.
type Metadata struct {
	TotalDates    *int   `json:"total_dates,omitempty"`
	Date          string `json:"date,omitempty"`
	SchoolID      string `json:"school_id"`
	Language      string `json:"language"`
	TargetOfferID string `json:"target_offer_id"`
	FetchedAt     string `json:"fetched_at"`
	RequestID     string `json:"request_id,omitempty"`
}

// NewMetadata builds metadata for the given resolved params, stamped
// with the current time.
func NewMetadata(p kanpla.Params) *Metadata {
	return &Metadata{
		SchoolID:      p.SchoolID,
		Language:      p.Language,
		TargetOfferID: p.TargetOfferID,
		FetchedAt:     time.Now().Format(time.RFC3339),
	}
}

// WithTotal sets the total_dates field.
func (m *Metadata) WithTotal(n int) *Metadata {
	m.TotalDates = &n
	return m
}

// WithDate sets the date field.
func (m *Metadata) WithDate(date string) *Metadata {
	m.Date = date
	return m
}
