package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/iam-fast/meyers-scraper/internal/menu"
)

// ObjectStore uploads an export document to object storage.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body []byte) (string, error)
}

// Exporter writes processed menus to a local JSON file and, when an
// object store is configured, uploads the same document there.
type Exporter struct {
	path   string
	store  ObjectStore
	logger *slog.Logger
}

// NewExporter builds an Exporter. store may be nil to export to the
// local file only.
func NewExporter(path string, store ObjectStore, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{path: path, store: store, logger: logger}
}

// Export implements menu.Exporter.
func (e *Exporter) Export(ctx context.Context, menus *menu.Menus) (menu.ExportResult, error) {
	data, err := Marshal(menus)
	if err != nil {
		return menu.ExportResult{}, err
	}

	if err := os.WriteFile(e.path, data, 0o644); err != nil {
		return menu.ExportResult{}, fmt.Errorf("write %s: %w", e.path, err)
	}
	e.logger.Info("menus exported", "file", e.path, "dates", menus.Len())

	result := menu.ExportResult{File: e.path}
	if e.store != nil {
		key := fmt.Sprintf("menus/%s.json", uuid.New().String())
		if _, err := e.store.Upload(ctx, key, data); err != nil {
			return menu.ExportResult{}, fmt.Errorf("upload export: %w", err)
		}
		e.logger.Info("menus uploaded", "key", key)
		result.ObjectKey = key
	}
	return result, nil
}

// WriteFile writes menus to path as indented UTF-8 JSON. Re-running
// with the same input produces identical bytes since menus marshal in
// a stable key order.
func WriteFile(menus *menu.Menus, path string) error {
	data, err := Marshal(menus)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Marshal renders the canonical export document: two-space indent and
// a trailing newline.
func Marshal(menus *menu.Menus) ([]byte, error) {
	data, err := json.MarshalIndent(menus, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal menus: %w", err)
	}
	return append(data, '\n'), nil
}
