package mcp

import (
	"log/slog"

	"github.com/claude/ftracker/internal/training"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("ftracker", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("ftracker workout calculator. Compute distance, mean speed and calories from raw sensor readings for running (RUN), sports walking (WLK) and swimming (SWM)."),
	)

	h := &handlers{log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolCalculateWorkout, Handler: h.calculateWorkout},
		server.ServerTool{Tool: toolListWorkoutTypes, Handler: h.listWorkoutTypes},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWorkoutTypes, Handler: h.workoutTypes},
	)

	return s
}

// NewHTTPHandler wraps s in the streamable HTTP transport.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s)
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	log *slog.Logger
}

var resWorkoutTypes = mcp.NewResource(
	"ftracker://workout_types",
	"Workout Types",
	mcp.WithResourceDescription("Recognised workout codes with the readings each one expects, in order"),
	mcp.WithMIMEType("application/json"),
)

// codeEnum lists the codes accepted by calculate_workout.
var codeEnum = training.Codes()
