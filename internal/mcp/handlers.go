// ABOUTME: MCP tool handler implementations for the assessment server
// ABOUTME: Wraps the session service with argument parsing and JSON results
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarZACK/Dermazeen/internal/models"
	"github.com/omarZACK/Dermazeen/internal/session"
	"github.com/omarZACK/Dermazeen/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	sessions *session.Service
}

// StartAssessment handles the start_assessment tool
func (h *Handlers) StartAssessment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var profile *session.Profile
	gender := request.GetString("gender", "")
	age := request.GetInt("age", 0)
	sun := request.GetString("sun_exposure", "")
	stress := request.GetString("stress_level", "")
	sleep := request.GetInt("sleep_hours", 0)

	if gender != "" || age > 0 || sun != "" || stress != "" || sleep > 0 {
		profile = &session.Profile{
			Gender:      gender,
			Age:         age,
			SunExposure: sun,
			StressLevel: stress,
			SleepHours:  sleep,
		}
	}

	id, state, err := h.sessions.Start(session.StartOptions{Profile: profile})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to start assessment: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"assessment_id": id,
		"state":         state,
	})
}

// SubmitAnswer handles the submit_answer tool
func (h *Handlers) SubmitAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("assessment_id")
	if err != nil {
		return mcp.NewToolResultError("assessment_id argument is required and must be a string"), nil
	}
	questionID, err := request.RequireString("question_id")
	if err != nil {
		return mcp.NewToolResultError("question_id argument is required and must be a string"), nil
	}
	values, err := request.RequireIntSlice("values")
	if err != nil || len(values) == 0 {
		return mcp.NewToolResultError("values argument is required and must be a non-empty array of numbers"), nil
	}

	state, err := h.sessions.SubmitAnswer(id, questionID, values)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidAnswer):
			return mcp.NewToolResultError(fmt.Sprintf("invalid answer: %v", err)), nil
		case errors.Is(err, models.ErrQuestionNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("unknown question: %v", err)), nil
		case errors.Is(err, storage.ErrNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("unknown assessment: %s", id)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("failed to process answer: %v", err)), nil
		}
	}
	return jsonResult(state)
}

// GetCurrentQuestion handles the get_current_question tool
func (h *Handlers) GetCurrentQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("assessment_id")
	if err != nil {
		return mcp.NewToolResultError("assessment_id argument is required and must be a string"), nil
	}

	q, err := h.sessions.CurrentQuestion(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown assessment: %s", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load question: %v", err)), nil
	}
	if q == nil {
		return jsonResult(map[string]interface{}{"pending_question": nil})
	}
	return jsonResult(map[string]interface{}{"pending_question": q})
}

// GetReport handles the get_report tool
func (h *Handlers) GetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("assessment_id")
	if err != nil {
		return mcp.NewToolResultError("assessment_id argument is required and must be a string"), nil
	}

	report, err := h.sessions.Report(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown assessment: %s", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to load report: %v", err)), nil
	}
	return jsonResult(report)
}

// ListAssessments handles the list_assessments tool
func (h *Handlers) ListAssessments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)

	records, err := h.sessions.List(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list assessments: %v", err)), nil
	}

	items := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		item := map[string]interface{}{
			"assessment_id": rec.ID,
			"status":        rec.Status,
			"phase":         rec.Phase,
			"created_at":    rec.CreatedAt,
		}
		if rec.PendingQuestionID != "" {
			item["pending_question_id"] = rec.PendingQuestionID
		}
		if rec.CompletedAt != nil {
			item["completed_at"] = rec.CompletedAt
		}
		items = append(items, item)
	}
	return jsonResult(map[string]interface{}{"assessments": items})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
