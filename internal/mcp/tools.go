package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/claude/ftracker/internal/models"
	"github.com/claude/ftracker/internal/report"
	"github.com/claude/ftracker/internal/training"
	"github.com/mark3labs/mcp-go/mcp"
)

var toolCalculateWorkout = mcp.NewTool("calculate_workout",
	mcp.WithDescription("Compute distance (km), mean speed (km/h) and spent calories (kcal) for one workout and return the summary line. "+
		"Readings are positional: RUN = action, duration, weight; WLK = action, duration, weight, height; "+
		"SWM = action, duration, weight, length_pool, count_pool. Duration is in hours, weight in kg, height in cm, pool length in m."),
	mcp.WithString("code", mcp.Required(), mcp.Description("Workout code"), mcp.Enum(codeEnum...)),
	mcp.WithArray("readings", mcp.Required(), mcp.Description("Positional numeric readings for the workout"),
		mcp.Items(map[string]any{"type": "number"})),
)

var toolListWorkoutTypes = mcp.NewTool("list_workout_types",
	mcp.WithDescription("List the recognised workout codes and the readings each one expects."),
)

func (h *handlers) calculateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("code parameter is required"), nil
	}

	readings, err := readingsArg(req.GetArguments()["readings"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep, err := report.Compute(models.Package{Code: code, Readings: readings})
	if err != nil {
		if !errors.Is(err, training.ErrUnknownWorkoutKind) &&
			!errors.Is(err, training.ErrMalformedReadings) &&
			!errors.Is(err, training.ErrInvalidDomainValue) {
			h.log.Error("mcp calculate_workout", "code", code, "error", err)
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(rep)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listWorkoutTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(training.Kinds())
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// readingsArg converts the decoded "readings" argument to numbers. Clients
// may send numbers or numeric strings.
func readingsArg(v any) ([]float64, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: readings must be an array of numbers", training.ErrMalformedReadings)
	}
	out := make([]float64, 0, len(raw))
	for i, item := range raw {
		switch n := item.(type) {
		case float64:
			out = append(out, n)
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("%w: reading %d (%s) is not a number", training.ErrMalformedReadings, i+1, n)
			}
			out = append(out, f)
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: reading %d (%q) is not a number", training.ErrMalformedReadings, i+1, n)
			}
			out = append(out, f)
		default:
			return nil, fmt.Errorf("%w: reading %d (%v) is not a number", training.ErrMalformedReadings, i+1, item)
		}
	}
	return out, nil
}
