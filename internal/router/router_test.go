package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/iam-fast/meyers-scraper/internal/kanpla"
	"github.com/iam-fast/meyers-scraper/internal/menu"
)

type fakeClient struct {
	raw []byte
	err error
}

func (f *fakeClient) FetchMenus(_ context.Context, _ kanpla.Params) ([]byte, error) {
	return f.raw, f.err
}

type fakeExporter struct {
	result menu.ExportResult
	err    error
}

func (f *fakeExporter) Export(_ context.Context, _ *menu.Menus) (menu.ExportResult, error) {
	return f.result, f.err
}

func setupRouter(client kanpla.Client, exporter menu.Exporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	defaults := kanpla.Params{SchoolID: "school-1", Language: "en", TargetOfferID: "offer-1"}
	service := menu.NewService(client, defaults, nil)
	handler := menu.NewHandler(service, exporter, nil)
	return NewRouter(handler)
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, menu.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env menu.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\n%s", err, w.Body.String())
	}
	return w, env
}

func TestHealthCheck(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{}`)}, &fakeExporter{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("expected healthy status, got %q", body["status"])
	}
}

func TestGetAllMenusSuccessEnvelope(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{"2024-01-15": {"dayOfWeek": "Monday", "items": [{"name": "Soup"}]}}`)}, &fakeExporter{})

	w, env := doRequest(t, r, http.MethodGet, "/api/menus")

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}
	if env.Metadata == nil || env.Metadata.TotalDates == nil || *env.Metadata.TotalDates != 1 {
		t.Fatalf("expected total_dates 1, got %+v", env.Metadata)
	}
	if env.Metadata.SchoolID != "school-1" {
		t.Fatalf("expected resolved school id in metadata, got %+v", env.Metadata)
	}
	if env.Metadata.RequestID == "" {
		t.Fatal("expected request id in metadata")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestGetAllMenusEmptyIs404(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{}`)}, &fakeExporter{})

	w, env := doRequest(t, r, http.MethodGet, "/api/menus")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if env.Success {
		t.Fatal("expected failure envelope")
	}
}

func TestGetAllMenusVendorErrorIs502(t *testing.T) {
	client := &fakeClient{err: &kanpla.APIError{StatusCode: 500, Body: "boom"}}
	r := setupRouter(client, &fakeExporter{})

	w, env := doRequest(t, r, http.MethodGet, "/api/menus")

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
	if env.Success {
		t.Fatal("expected failure envelope")
	}
}

func TestGetMenuByDate(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{"2024-01-15": {"dayOfWeek": "Monday", "items": []}}`)}, &fakeExporter{})

	w, env := doRequest(t, r, http.MethodGet, "/api/menus/2024-01-15")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !env.Success || env.Metadata.Date != "2024-01-15" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestGetMenuByDateInvalidFormatIs400(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{}`)}, &fakeExporter{})

	w, env := doRequest(t, r, http.MethodGet, "/api/menus/15-01-2024")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if env.Success {
		t.Fatal("expected failure envelope")
	}
}

func TestGetMenuByDateMissingIs404(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{"2024-01-15": {"items": []}}`)}, &fakeExporter{})

	w, _ := doRequest(t, r, http.MethodGet, "/api/menus/2024-01-16")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestExportMenus(t *testing.T) {
	exporter := &fakeExporter{result: menu.ExportResult{File: "date_menus.json", ObjectKey: "menus/abc.json"}}
	r := setupRouter(&fakeClient{raw: []byte(`{"2024-01-15": {"items": []}}`)}, exporter)

	w, env := doRequest(t, r, http.MethodPost, "/api/menus/export")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected export result data, got %T", env.Data)
	}
	if data["file"] != "date_menus.json" {
		t.Fatalf("unexpected export data: %v", data)
	}
}

func TestUnknownRouteEnvelope(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{}`)}, &fakeExporter{})

	w, env := doRequest(t, r, http.MethodGet, "/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if env.Success || env.Message != "Endpoint not found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestRequestIDIsPreserved(t *testing.T) {
	r := setupRouter(&fakeClient{raw: []byte(`{"2024-01-15": {"items": []}}`)}, &fakeExporter{})

	req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Fatalf("incoming request id not preserved, got %q", got)
	}
}
