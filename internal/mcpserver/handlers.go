package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/iam-fast/meyers-scraper/internal/kanpla"
	"github.com/iam-fast/meyers-scraper/internal/menu"
)

// Domain failures (no data, bad date, vendor down) are reported inside
// the result envelope with success=false rather than as protocol
// errors, so MCP clients always get a structured answer.

func getAllMenusHandler(service *menu.Service) mcp.ToolHandlerFor[MenusQueryInput, AllMenusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MenusQueryInput) (*mcp.CallToolResult, AllMenusResult, error) {
		params := kanpla.Params{
			SchoolID:      input.SchoolID,
			Language:      input.Language,
			TargetOfferID: input.TargetOfferID,
		}

		menus, params, err := service.FetchAll(ctx, params)
		if err != nil {
			return nil, AllMenusResult{
				Message:  "Error fetching menus: " + err.Error(),
				Data:     map[string]menu.DateMenu{},
				Metadata: menu.NewMetadata(params),
			}, nil
		}

		if menus.Len() == 0 {
			return nil, AllMenusResult{
				Message:  "No menu data found",
				Data:     map[string]menu.DateMenu{},
				Metadata: menu.NewMetadata(params).WithTotal(0),
			}, nil
		}

		data := make(map[string]menu.DateMenu, menus.Len())
		for _, date := range menus.Dates() {
			dm, _ := menus.Get(date)
			data[date] = dm
		}

		return nil, AllMenusResult{
			Success:  true,
			Message:  successMessage(menus.Len()),
			Data:     data,
			Metadata: menu.NewMetadata(params).WithTotal(menus.Len()),
		}, nil
	}
}

func getMenuByDateHandler(service *menu.Service) mcp.ToolHandlerFor[MenuByDateInput, DateMenuResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MenuByDateInput) (*mcp.CallToolResult, DateMenuResult, error) {
		return nil, fetchDate(ctx, service, input), nil
	}
}

func getTodaysMenuHandler(service *menu.Service) mcp.ToolHandlerFor[MenusQueryInput, DateMenuResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MenusQueryInput) (*mcp.CallToolResult, DateMenuResult, error) {
		result := fetchDate(ctx, service, MenuByDateInput{
			Date:          time.Now().Format("2006-01-02"),
			SchoolID:      input.SchoolID,
			Language:      input.Language,
			TargetOfferID: input.TargetOfferID,
		})
		return nil, result, nil
	}
}

func fetchDate(ctx context.Context, service *menu.Service, input MenuByDateInput) DateMenuResult {
	params := kanpla.Params{
		SchoolID:      input.SchoolID,
		Language:      input.Language,
		TargetOfferID: input.TargetOfferID,
	}

	dm, params, err := service.FetchByDate(ctx, input.Date, params)
	if err != nil {
		return DateMenuResult{
			Message:  err.Error(),
			Metadata: menu.NewMetadata(params).WithDate(input.Date),
		}
	}

	return DateMenuResult{
		Success:  true,
		Message:  "Successfully retrieved menu for " + input.Date,
		Data:     &dm,
		Metadata: menu.NewMetadata(params).WithDate(input.Date),
	}
}

func healthCheckHandler() mcp.ToolHandlerFor[EmptyInput, HealthResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, HealthResult, error) {
		return nil, HealthResult{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
			Service:   "meyers-scraper-mcp",
		}, nil
	}
}

func getTodayDateHandler() mcp.ToolHandlerFor[EmptyInput, TodayResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, TodayResult, error) {
		now := time.Now()
		return nil, TodayResult{
			Success: true,
			Date: DateParts{
				ISODate:        now.Format("2006-01-02"),
				DayOfWeek:      now.Weekday().String(),
				DayOfWeekShort: now.Format("Mon"),
				Month:          now.Month().String(),
				MonthShort:     now.Format("Jan"),
				Year:           now.Year(),
				Day:            now.Day(),
				MonthNum:       int(now.Month()),
				Timestamp:      now.Format(time.RFC3339),
				UnixTimestamp:  now.Unix(),
			},
		}, nil
	}
}

func successMessage(n int) string {
	return fmt.Sprintf("Successfully retrieved %d date menus", n)
}
