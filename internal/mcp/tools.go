// ABOUTME: MCP tool definitions and registration for the assessment server
// ABOUTME: Defines JSON schemas for the 5 assessment tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/omarZACK/Dermazeen/internal/session"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, svc *session.Service) *Handlers {
	handlers := &Handlers{sessions: svc}

	// 1. start_assessment - Begin a new skin assessment
	server.AddTool(mcp.Tool{
		Name:        "start_assessment",
		Description: "Start a new skin assessment session. Returns the session id and the first question. Known profile data (gender, age, lifestyle) can be supplied up front so those questions are skipped.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"gender": map[string]interface{}{
					"type":        "string",
					"description": "User gender, M or F (optional)",
				},
				"age": map[string]interface{}{
					"type":        "number",
					"description": "User age in years (optional)",
				},
				"sun_exposure": map[string]interface{}{
					"type":        "string",
					"description": "Daily sun exposure: minimal, light, moderate, high, very_high (optional)",
				},
				"stress_level": map[string]interface{}{
					"type":        "string",
					"description": "Typical stress level: very_low, low, moderate, high, very_high (optional)",
				},
				"sleep_hours": map[string]interface{}{
					"type":        "number",
					"description": "Average sleep hours per night (optional)",
				},
			},
		},
	}, handlers.StartAssessment)

	// 2. submit_answer - Answer the pending question
	server.AddTool(mcp.Tool{
		Name:        "submit_answer",
		Description: "Submit the answer to the session's pending question. Values are 1-based option indices; multi-select questions accept several.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"assessment_id": map[string]interface{}{
					"type":        "string",
					"description": "Assessment session id",
				},
				"question_id": map[string]interface{}{
					"type":        "string",
					"description": "Id of the question being answered",
				},
				"values": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "Selected option indices (1-based)",
				},
			},
			Required: []string{"assessment_id", "question_id", "values"},
		},
	}, handlers.SubmitAnswer)

	// 3. get_current_question - Fetch the pending question
	server.AddTool(mcp.Tool{
		Name:        "get_current_question",
		Description: "Get the question the session is currently waiting on, if any.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"assessment_id": map[string]interface{}{
					"type":        "string",
					"description": "Assessment session id",
				},
			},
			Required: []string{"assessment_id"},
		},
	}, handlers.GetCurrentQuestion)

	// 4. get_report - Fetch the final report
	server.AddTool(mcp.Tool{
		Name:        "get_report",
		Description: "Get the final analysis report for a completed assessment: condition findings, skin profile, recommendations, and referral advice.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"assessment_id": map[string]interface{}{
					"type":        "string",
					"description": "Assessment session id",
				},
			},
			Required: []string{"assessment_id"},
		},
	}, handlers.GetReport)

	// 5. list_assessments - List recent sessions
	server.AddTool(mcp.Tool{
		Name:        "list_assessments",
		Description: "List recent assessment sessions with their status and phase.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of sessions to return (default: 20)",
					"default":     20,
				},
			},
		},
	}, handlers.ListAssessments)

	return handlers
}
