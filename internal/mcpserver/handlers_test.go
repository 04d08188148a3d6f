package mcpserver

import (
	"context"
	"errors"
	"testing"
	"time"

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

func testService(client kanpla.Client) *menu.Service {
	defaults := kanpla.Params{SchoolID: "school-1", Language: "en", TargetOfferID: "offer-1"}
	return menu.NewService(client, defaults, nil)
}

func TestGetAllMenusTool(t *testing.T) {
	service := testService(&fakeClient{raw: []byte(`{"2024-01-15": {"dayOfWeek": "Monday", "items": [{"name": "Soup"}]}}`)})
	handler := getAllMenusHandler(service)

	_, result, err := handler(context.Background(), nil, MenusQueryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	dm, ok := result.Data["2024-01-15"]
	if !ok || len(dm.Items) != 1 {
		t.Fatalf("unexpected data: %+v", result.Data)
	}
	if result.Metadata == nil || result.Metadata.SchoolID != "school-1" {
		t.Fatalf("expected resolved metadata, got %+v", result.Metadata)
	}
}

func TestGetAllMenusToolEmpty(t *testing.T) {
	handler := getAllMenusHandler(testService(&fakeClient{raw: []byte(`{}`)}))

	_, result, err := handler(context.Background(), nil, MenusQueryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected success=false for empty data")
	}
	if result.Message != "No menu data found" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestGetAllMenusToolVendorFailure(t *testing.T) {
	handler := getAllMenusHandler(testService(&fakeClient{err: errors.New("connection refused")}))

	_, result, err := handler(context.Background(), nil, MenusQueryInput{})
	if err != nil {
		t.Fatalf("domain failures should stay in the envelope, got error %v", err)
	}
	if result.Success {
		t.Fatal("expected success=false")
	}
}

func TestGetMenuByDateToolRejectsBadDate(t *testing.T) {
	client := &fakeClient{raw: []byte(`{}`)}
	handler := getMenuByDateHandler(testService(client))

	_, result, err := handler(context.Background(), nil, MenuByDateInput{Date: "January 15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected success=false for malformed date")
	}
	if result.Metadata == nil || result.Metadata.Date != "January 15" {
		t.Fatalf("expected echoed date in metadata, got %+v", result.Metadata)
	}
}

func TestGetMenuByDateTool(t *testing.T) {
	handler := getMenuByDateHandler(testService(&fakeClient{raw: []byte(`{"2024-01-15": {"dayOfWeek": "Monday", "items": []}}`)}))

	_, result, err := handler(context.Background(), nil, MenuByDateInput{Date: "2024-01-15"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.Data == nil || result.Data.Date != "2024-01-15" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestGetTodaysMenuToolUsesCurrentDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	handler := getTodaysMenuHandler(testService(&fakeClient{raw: []byte(`{"` + today + `": {"items": []}}`)}))

	_, result, err := handler(context.Background(), nil, MenusQueryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected today's menu, got %+v", result)
	}
	if result.Metadata.Date != today {
		t.Fatalf("expected date %s, got %q", today, result.Metadata.Date)
	}
}

func TestHealthCheckTool(t *testing.T) {
	_, result, err := healthCheckHandler()(context.Background(), nil, EmptyInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != "healthy" || result.Service != "meyers-scraper-mcp" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestGetTodayDateTool(t *testing.T) {
	_, result, err := getTodayDateHandler()(context.Background(), nil, EmptyInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("unexpected result: %+v", result)
	}

	now := time.Now()
	if result.Date.ISODate != now.Format("2006-01-02") {
		t.Fatalf("unexpected iso date: %q", result.Date.ISODate)
	}
	if result.Date.Year != now.Year() {
		t.Fatalf("unexpected year: %d", result.Date.Year)
	}
	if result.Date.UnixTimestamp == 0 {
		t.Fatal("expected unix timestamp")
	}
}

func TestNewRegistersTools(t *testing.T) {
	server := New(testService(&fakeClient{raw: []byte(`{}`)}))
	if server == nil {
		t.Fatal("expected server")
	}
}
