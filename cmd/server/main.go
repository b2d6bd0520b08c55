// ABOUTME: Main entry point for the Dermazeen MCP server with stdio transport
// ABOUTME: Initializes storage, session service, and MCP server with all tools
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/omarZACK/Dermazeen/internal/catalog"
	"github.com/omarZACK/Dermazeen/internal/config"
	"github.com/omarZACK/Dermazeen/internal/engine"
	"github.com/omarZACK/Dermazeen/internal/mcp"
	"github.com/omarZACK/Dermazeen/internal/session"
	"github.com/omarZACK/Dermazeen/internal/storage/sqlite"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - image screening will not work")
	}

	// Initialize storage with XDG-compliant paths
	store, err := sqlite.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	svc := session.New(store, catalog.Builtin(),
		engine.WithThresholds(cfg.Thresholds()),
		engine.WithMaxIterations(cfg.MaxIterations),
	)

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Dermazeen Skin Assessment",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, svc)

	// Start server with stdio transport
	log.Println("Dermazeen MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
