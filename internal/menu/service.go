package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iam-fast/meyers-scraper/internal/kanpla"
)

var (
	// ErrNotFound means the vendor answered but had no menu data for
	// the request.
	ErrNotFound = errors.New("no menu data found")

	// ErrInvalidDate means the caller passed a date that is not
	// YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
)

// Service runs the fetch-then-process pipeline. It is stateless: every
// call fetches fresh from the vendor, so concurrent requests never
// share mutable data.
type Service struct {
	client   kanpla.Client
	defaults kanpla.Params
	logger   *slog.Logger
}

func NewService(client kanpla.Client, defaults kanpla.Params, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, defaults: defaults, logger: logger}
}

// Fill resolves empty params against the configured defaults.
func (s *Service) Fill(p kanpla.Params) kanpla.Params {
	if p.SchoolID == "" {
		p.SchoolID = s.defaults.SchoolID
	}
	if p.Language == "" {
		p.Language = s.defaults.Language
	}
	if p.TargetOfferID == "" {
		p.TargetOfferID = s.defaults.TargetOfferID
	}
	return p
}

// FetchAll fetches and normalizes every available date. The returned
// params are the resolved ones, for response metadata.
func (s *Service) FetchAll(ctx context.Context, p kanpla.Params) (*Menus, kanpla.Params, error) {
	p = s.Fill(p)

	s.logger.Info("fetching menus",
		"school_id", p.SchoolID,
		"language", p.Language,
		"target_offer_id", p.TargetOfferID,
	)

	raw, err := s.client.FetchMenus(ctx, p)
	if err != nil {
		return nil, p, fmt.Errorf("fetch menus: %w", err)
	}

	menus, err := NewProcessor(p.TargetOfferID, s.logger).Process(raw)
	if err != nil {
		return nil, p, err
	}
	return menus, p, nil
}

// FetchByDate fetches everything and picks one date. Returns
// ErrInvalidDate before touching the network, ErrNotFound when the
// date has no menu.
func (s *Service) FetchByDate(ctx context.Context, date string, p kanpla.Params) (DateMenu, kanpla.Params, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return DateMenu{}, s.Fill(p), ErrInvalidDate
	}

	menus, p, err := s.FetchAll(ctx, p)
	if err != nil {
		return DateMenu{}, p, err
	}

	dm, ok := menus.Get(date)
	if !ok {
		return DateMenu{}, p, fmt.Errorf("%w for date: %s", ErrNotFound, date)
	}
	return dm, p, nil
}
