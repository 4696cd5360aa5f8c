// ABOUTME: MCP resource implementations for the habit tracker.
// ABOUTME: Provides habits://today, habits://statistics, and habits://categories resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/habits/internal/engine"
	"github.com/harperreed/habits/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// habits://today - Trackers scheduled for today with completion state
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://today",
		Name:        "Today's Trackers",
		Description: "Trackers scheduled for today, grouped by category, with completion state",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// habits://statistics - Aggregate statistics over the full history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://statistics",
		Name:        "Completion Statistics",
		Description: "Total completions, perfect days, best streak, and daily average",
		MIMEType:    "application/json",
	}, s.handleStatisticsResource)

	// habits://categories - Full category and tracker listing
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "habits://categories",
		Name:        "All Categories",
		Description: "Every category with its trackers, regardless of schedule",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.StartOfDay(time.Now())

	view, err := s.buildDayView(today, engine.FilterAll, "")
	if err != nil {
		return nil, err
	}

	total := 0
	completed := 0
	for _, c := range view {
		for _, t := range c.Trackers {
			total++
			if t.Completed {
				completed++
			}
		}
	}

	result := map[string]interface{}{
		"date":       today.Format("2006-01-02"),
		"weekday":    models.WeekDayFromTime(today).String(),
		"categories": view,
		"counts": map[string]int{
			"scheduled": total,
			"completed": completed,
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "habits://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleStatisticsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, hasData := s.stats.Current()

	result := map[string]interface{}{
		"has_data":   hasData,
		"statistics": stats,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "habits://statistics",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCategoriesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	categories, err := s.repo.AllCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	out := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		cv := categoryView{Title: c.Title, Trackers: make([]trackerView, 0, len(c.Trackers))}
		for _, t := range c.Trackers {
			cv.Trackers = append(cv.Trackers, trackerView{
				ID:       t.ID.String()[:8],
				Name:     t.Name,
				Emoji:    string(t.Emoji),
				Color:    string(t.Color),
				Schedule: models.EncodeSchedule(t.Schedule),
				Pinned:   t.IsPinned,
			})
		}
		out = append(out, cv)
	}

	result := map[string]interface{}{
		"categories": out,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "habits://categories",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
