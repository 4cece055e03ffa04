package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/ftracker/internal/training"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) workoutTypes(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(training.Kinds())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
