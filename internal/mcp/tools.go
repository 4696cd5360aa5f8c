// ABOUTME: MCP tool implementations for the habit tracker.
// ABOUTME: Provides tracker CRUD, completion toggling, search, and statistics.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/habits/internal/engine"
	"github.com/harperreed/habits/internal/models"
	"github.com/harperreed/habits/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_habit
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_habit",
		Description: "Create a new habit or event tracker",
	}, s.handleAddHabit)

	// list_trackers
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_trackers",
		Description: "List trackers scheduled for a date, grouped by category",
	}, s.handleListTrackers)

	// toggle_completion
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_completion",
		Description: "Toggle a tracker's completion for a date",
	}, s.handleToggleCompletion)

	// search_trackers
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_trackers",
		Description: "Search trackers by name, ignoring schedules",
	}, s.handleSearchTrackers)

	// pin_tracker
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "pin_tracker",
		Description: "Pin or unpin a tracker by ID or ID prefix",
	}, s.handlePinTracker)

	// delete_tracker
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_tracker",
		Description: "Delete a tracker and its completion history",
	}, s.handleDeleteTracker)

	// get_statistics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_statistics",
		Description: "Get aggregate statistics over all completion history",
	}, s.handleGetStatistics)
}

// Tool input/output types

type addHabitInput struct {
	Name     string `json:"name" jsonschema:"Tracker name"`
	Category string `json:"category,omitempty" jsonschema:"Category title (defaults to General)"`
	Emoji    string `json:"emoji,omitempty" jsonschema:"Emoji name (smile, cat, heart, guitar, ...)"`
	Color    string `json:"color,omitempty" jsonschema:"Color name (light_pink, dark_blue, green, ...)"`
	Days     string `json:"days,omitempty" jsonschema:"Comma-separated weekdays (mon,wed,fri), defaults to every day"`
	Event    bool   `json:"event,omitempty" jsonschema:"Create a one-off event instead of a habit"`
}

type trackerOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type listTrackersInput struct {
	Date   string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Filter string `json:"filter,omitempty" jsonschema:"Filter mode: all, today, completed, uncompleted"`
}

type toggleCompletionInput struct {
	ID   string `json:"id" jsonschema:"Tracker ID or prefix"`
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type searchTrackersInput struct {
	Query string `json:"query" jsonschema:"Name substring to search for"`
}

type trackerRefInput struct {
	ID string `json:"id" jsonschema:"Tracker ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getStatisticsInput struct{}

// Serializable view types shared with resources.

type trackerView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	Schedule  string `json:"schedule,omitempty"`
	Pinned    bool   `json:"pinned"`
	Completed bool   `json:"completed"`
}

type categoryView struct {
	Title    string        `json:"title"`
	Trackers []trackerView `json:"trackers"`
}

// Tool handlers

func (s *Server) handleAddHabit(ctx context.Context, req *mcp.CallToolRequest, input addHabitInput) (*mcp.CallToolResult, trackerOutput, error) {
	if input.Name == "" {
		return nil, trackerOutput{}, fmt.Errorf("name is required")
	}

	emoji := models.EmojiSmile
	if input.Emoji != "" {
		e, err := models.ParseEmoji(input.Emoji)
		if err != nil {
			return nil, trackerOutput{}, fmt.Errorf("unknown emoji: %s", input.Emoji)
		}
		emoji = e
	}

	color := models.ColorGreen
	if input.Color != "" {
		c, err := models.ParseColor(input.Color)
		if err != nil {
			return nil, trackerOutput{}, fmt.Errorf("unknown color: %s", input.Color)
		}
		color = c
	}

	var tracker models.Tracker
	if input.Event {
		tracker = models.NewEvent(input.Name, color, emoji, time.Now())
	} else {
		schedule := models.AllWeekDays
		if input.Days != "" {
			days, err := models.DecodeSchedule(input.Days)
			if err != nil {
				return nil, trackerOutput{}, fmt.Errorf("invalid days: %s", input.Days)
			}
			schedule = days
		}
		tracker = models.NewHabit(input.Name, color, emoji, schedule)
	}

	category := input.Category
	if category == "" {
		category = "General"
	}

	if err := s.repo.CreateTracker(tracker, category); err != nil {
		return nil, trackerOutput{}, fmt.Errorf("failed to create tracker: %w", err)
	}

	return nil, trackerOutput{
		ID:      tracker.ID.String()[:8],
		Name:    tracker.Name,
		Message: fmt.Sprintf("Added %q to %s (ID: %s)", tracker.Name, category, tracker.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListTrackers(ctx context.Context, req *mcp.CallToolRequest, input listTrackersInput) (*mcp.CallToolResult, any, error) {
	date := models.StartOfDay(time.Now())
	if input.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date: %s", input.Date)
		}
		date = parsed
	}

	mode := engine.FilterAll
	if input.Filter != "" {
		parsed, err := engine.ParseFilterMode(input.Filter)
		if err != nil {
			return nil, nil, err
		}
		mode = parsed
	}
	// "today" pins the view to the current day regardless of the date input.
	if mode == engine.FilterToday {
		date = models.StartOfDay(time.Now())
	}

	view, err := s.buildDayView(date, mode, "")
	if err != nil {
		return nil, nil, err
	}

	if len(view) == 0 {
		return nil, map[string]interface{}{"message": "No trackers scheduled."}, nil
	}

	return nil, map[string]interface{}{
		"date":       date.Format("2006-01-02"),
		"categories": view,
	}, nil
}

func (s *Server) handleToggleCompletion(ctx context.Context, req *mcp.CallToolRequest, input toggleCompletionInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := storage.ResolveTrackerID(s.repo, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	date := models.StartOfDay(time.Now())
	if input.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid date: %s", input.Date)
		}
		date = parsed
	}

	if date.After(models.StartOfDay(time.Now())) {
		return nil, simpleOutput{
			Message: fmt.Sprintf("Cannot complete a tracker on a future date (%s)", date.Format("2006-01-02")),
		}, nil
	}

	ledger, err := engine.NewLedger(s.repo)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load completions: %w", err)
	}

	completed, err := ledger.Toggle(id, date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to toggle completion: %w", err)
	}

	state := "uncompleted"
	if completed {
		state = "completed"
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Marked %s as %s on %s", id.String()[:8], state, date.Format("2006-01-02")),
	}, nil
}

func (s *Server) handleSearchTrackers(ctx context.Context, req *mcp.CallToolRequest, input searchTrackersInput) (*mcp.CallToolResult, any, error) {
	if input.Query == "" {
		return nil, nil, fmt.Errorf("query is required")
	}

	view, err := s.buildDayView(models.StartOfDay(time.Now()), engine.FilterAll, input.Query)
	if err != nil {
		return nil, nil, err
	}

	if len(view) == 0 {
		return nil, map[string]interface{}{"message": "No trackers match."}, nil
	}

	return nil, map[string]interface{}{"categories": view}, nil
}

func (s *Server) handlePinTracker(ctx context.Context, req *mcp.CallToolRequest, input trackerRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := storage.ResolveTrackerID(s.repo, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.TogglePin(id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to toggle pin: %w", err)
	}

	state := "unpinned"
	trackers, err := s.repo.AllTrackers()
	if err == nil {
		for _, t := range trackers {
			if t.ID == id && t.IsPinned {
				state = "pinned"
			}
		}
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Tracker %s is now %s", id.String()[:8], state),
	}, nil
}

func (s *Server) handleDeleteTracker(ctx context.Context, req *mcp.CallToolRequest, input trackerRefInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := storage.ResolveTrackerID(s.repo, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.DeleteTracker(id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete tracker: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted tracker: %s", id.String()[:8]),
	}, nil
}

func (s *Server) handleGetStatistics(ctx context.Context, req *mcp.CallToolRequest, input getStatisticsInput) (*mcp.CallToolResult, any, error) {
	stats, ok := s.stats.Current()
	if !ok {
		return nil, map[string]interface{}{"message": "No completions recorded yet."}, nil
	}

	return nil, stats, nil
}

// buildDayView loads categories and completions, then renders the
// filtered view for the given date.
func (s *Server) buildDayView(date time.Time, mode engine.FilterMode, query string) ([]categoryView, error) {
	categories, err := s.repo.AllCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	ledger, err := engine.NewLedger(s.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	view := engine.BuildView(categories, models.WeekDayFromTime(date), date, mode, query, ledger)

	out := make([]categoryView, 0, len(view))
	for _, c := range view {
		cv := categoryView{Title: c.Title, Trackers: make([]trackerView, 0, len(c.Trackers))}
		for _, t := range c.Trackers {
			cv.Trackers = append(cv.Trackers, trackerView{
				ID:        t.ID.String()[:8],
				Name:      t.Name,
				Emoji:     string(t.Emoji),
				Color:     string(t.Color),
				Schedule:  models.EncodeSchedule(t.Schedule),
				Pinned:    t.IsPinned,
				Completed: ledger.IsCompleted(t.ID, date),
			})
		}
		out = append(out, cv)
	}
	return out, nil
}
