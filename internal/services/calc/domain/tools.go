package domain

import (
	"context"
	errstd "errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/possibility.space/internal/calc"
	platformerrors "github.com/louisbranch/possibility.space/internal/platform/errors"
	"github.com/louisbranch/possibility.space/internal/platform/errors/i18n"
)

// CalcCreateInput represents the MCP tool input for creating a calculator.
type CalcCreateInput struct {
	Universe      []float64 `json:"universe" jsonschema:"distinct elementary outcome values"`
	Probabilities []float64 `json:"probabilities" jsonschema:"probability of each outcome, index-aligned with the universe"`
	Normalize     bool      `json:"normalize,omitempty" jsonschema:"divide the probabilities by their sum when they do not sum to 1"`
}

// CalcCreateResult represents the MCP tool output for creating a calculator.
type CalcCreateResult struct {
	CalcID       string    `json:"calc_id" jsonschema:"identifier of the created calculator"`
	Size         int       `json:"size" jsonschema:"number of elementary outcomes"`
	Distribution []float64 `json:"distribution" jsonschema:"stored probability distribution after optional normalization"`
}

// CalcRegisterEventInput represents the MCP tool input for registering an event.
type CalcRegisterEventInput struct {
	CalcID     string    `json:"calc_id" jsonschema:"calculator identifier"`
	Membership []float64 `json:"membership" jsonschema:"membership degree per outcome; shorter vectors are zero-padded, longer ones truncated"`
}

// CalcRegisterEventResult represents the MCP tool output for registering an event.
type CalcRegisterEventResult struct {
	Index int       `json:"index" jsonschema:"index of the registered event"`
	Event []float64 `json:"event" jsonschema:"stored membership fitted to the universe length"`
}

// CalcCombineEventsInput represents the MCP tool input for combining events.
type CalcCombineEventsInput struct {
	CalcID   string `json:"calc_id" jsonschema:"calculator identifier"`
	Operator string `json:"operator" jsonschema:"combination operator: sum (fuzzy union) or intersection"`
	Indices  []int  `json:"indices" jsonschema:"indices of the registered events to combine"`
}

// CalcCombineEventsResult represents the MCP tool output for combining events.
type CalcCombineEventsResult struct {
	Membership []float64 `json:"membership" jsonschema:"combined membership vector"`
}

// CalcProbabilityInput represents the MCP tool input for a probability query.
type CalcProbabilityInput struct {
	CalcID string    `json:"calc_id" jsonschema:"calculator identifier"`
	Event  []float64 `json:"event" jsonschema:"membership degree per outcome"`
}

// CalcProbabilityResult represents the MCP tool output for a probability query.
type CalcProbabilityResult struct {
	Probability float64 `json:"probability" jsonschema:"probability of the fuzzy event"`
}

// CalcFuzzyProbabilityInput represents the MCP tool input for an alpha-cut query.
type CalcFuzzyProbabilityInput struct {
	CalcID string    `json:"calc_id" jsonschema:"calculator identifier"`
	Event  []float64 `json:"event" jsonschema:"membership degree per outcome"`
}

// CalcFuzzyProbabilityResult represents the MCP tool output for an alpha-cut query.
type CalcFuzzyProbabilityResult struct {
	Probabilities []float64 `json:"probabilities" jsonschema:"probability mass of each alpha-cut, index-aligned with alpha_levels"`
	AlphaLevels   []float64 `json:"alpha_levels" jsonschema:"distinct nonzero membership degrees, ascending"`
}

// CalcBernoulliInput represents the MCP tool input for a Bernoulli trial query.
type CalcBernoulliInput struct {
	CalcID    string    `json:"calc_id" jsonschema:"calculator identifier"`
	Event     []float64 `json:"event" jsonschema:"membership degree per outcome"`
	Successes int       `json:"successes" jsonschema:"number of trials where the event occurs"`
	Failures  int       `json:"failures" jsonschema:"number of trials where the event does not occur"`
}

// CalcBernoulliResult represents the MCP tool output for a Bernoulli trial query.
type CalcBernoulliResult struct {
	Probability float64 `json:"probability" jsonschema:"probability of exactly successes occurrences across all trials"`
}

// CalcCreateTool defines the MCP tool schema for creating a calculator.
func CalcCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calc_create",
		Description: "Creates a fuzzy probability calculator over a discrete universe",
	}
}

// CalcRegisterEventTool defines the MCP tool schema for registering an event.
func CalcRegisterEventTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calc_register_event",
		Description: "Registers a fuzzy event with a calculator",
	}
}

// CalcCombineEventsTool defines the MCP tool schema for combining events.
func CalcCombineEventsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calc_combine_events",
		Description: "Combines registered events with a fuzzy union or intersection",
	}
}

// CalcProbabilityTool defines the MCP tool schema for probability queries.
func CalcProbabilityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calc_probability",
		Description: "Computes the probability of a fuzzy event",
	}
}

// CalcFuzzyProbabilityTool defines the MCP tool schema for alpha-cut queries.
func CalcFuzzyProbabilityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calc_fuzzy_probability",
		Description: "Computes the alpha-cut probability decomposition of a fuzzy event",
	}
}

// CalcBernoulliTool defines the MCP tool schema for Bernoulli trial queries.
func CalcBernoulliTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "calc_bernoulli",
		Description: "Computes the probability of repeated independent observations of a fuzzy event",
	}
}

// CalcCreateHandler executes a calculator creation request.
func CalcCreateHandler(registry *Registry) mcp.ToolHandlerFor[CalcCreateInput, CalcCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CalcCreateInput) (*mcp.CallToolResult, CalcCreateResult, error) {
		calcID, engine, err := registry.Create(input.Universe, input.Probabilities, input.Normalize)
		if err != nil {
			return nil, CalcCreateResult{}, userFacingError(err)
		}
		return nil, CalcCreateResult{
			CalcID:       calcID,
			Size:         engine.Size(),
			Distribution: engine.Distribution(),
		}, nil
	}
}

// CalcRegisterEventHandler executes an event registration request.
func CalcRegisterEventHandler(registry *Registry) mcp.ToolHandlerFor[CalcRegisterEventInput, CalcRegisterEventResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CalcRegisterEventInput) (*mcp.CallToolResult, CalcRegisterEventResult, error) {
		index, stored, err := registry.RegisterEvent(input.CalcID, input.Membership)
		if err != nil {
			return nil, CalcRegisterEventResult{}, userFacingError(err)
		}
		return nil, CalcRegisterEventResult{Index: index, Event: stored}, nil
	}
}

// CalcCombineEventsHandler executes an event combination request.
func CalcCombineEventsHandler(registry *Registry) mcp.ToolHandlerFor[CalcCombineEventsInput, CalcCombineEventsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CalcCombineEventsInput) (*mcp.CallToolResult, CalcCombineEventsResult, error) {
		op, err := ParseOperator(input.Operator)
		if err != nil {
			return nil, CalcCombineEventsResult{}, userFacingError(err)
		}
		membership, err := registry.CombineEvents(input.CalcID, op, input.Indices...)
		if err != nil {
			return nil, CalcCombineEventsResult{}, userFacingError(err)
		}
		return nil, CalcCombineEventsResult{Membership: membership}, nil
	}
}

// CalcProbabilityHandler executes a probability query.
func CalcProbabilityHandler(registry *Registry) mcp.ToolHandlerFor[CalcProbabilityInput, CalcProbabilityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CalcProbabilityInput) (*mcp.CallToolResult, CalcProbabilityResult, error) {
		value, err := registry.Probability(input.CalcID, input.Event)
		if err != nil {
			return nil, CalcProbabilityResult{}, userFacingError(err)
		}
		return nil, CalcProbabilityResult{Probability: value}, nil
	}
}

// CalcFuzzyProbabilityHandler executes an alpha-cut probability query.
func CalcFuzzyProbabilityHandler(registry *Registry) mcp.ToolHandlerFor[CalcFuzzyProbabilityInput, CalcFuzzyProbabilityResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CalcFuzzyProbabilityInput) (*mcp.CallToolResult, CalcFuzzyProbabilityResult, error) {
		probabilities, alphas, err := registry.FuzzyProbability(input.CalcID, input.Event)
		if err != nil {
			return nil, CalcFuzzyProbabilityResult{}, userFacingError(err)
		}
		return nil, CalcFuzzyProbabilityResult{
			Probabilities: probabilities,
			AlphaLevels:   alphas,
		}, nil
	}
}

// CalcBernoulliHandler executes a Bernoulli trial query.
func CalcBernoulliHandler(registry *Registry) mcp.ToolHandlerFor[CalcBernoulliInput, CalcBernoulliResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CalcBernoulliInput) (*mcp.CallToolResult, CalcBernoulliResult, error) {
		value, err := registry.Bernoulli(input.CalcID, input.Event, input.Successes, input.Failures)
		if err != nil {
			return nil, CalcBernoulliResult{}, userFacingError(err)
		}
		return nil, CalcBernoulliResult{Probability: value}, nil
	}
}

// ParseOperator maps a combination operator label to the engine operator.
func ParseOperator(value string) (calc.Operator, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "sum", "union":
		return calc.OperatorSum, nil
	case "intersection", "intersect":
		return calc.OperatorIntersection, nil
	default:
		return calc.OperatorUnspecified, platformerrors.WithMetadata(
			platformerrors.CodeEventOperatorInvalid,
			fmt.Sprintf("unknown combination operator %q", value),
			map[string]string{"Operator": value},
		)
	}
}

// userFacingError renders structured domain errors through the message
// catalog so MCP clients see readable failures instead of internal text.
func userFacingError(err error) error {
	var domainErr *platformerrors.Error
	if errstd.As(err, &domainErr) {
		return errstd.New(i18n.GetCatalog("").Format(string(domainErr.Code), domainErr.Metadata))
	}
	return err
}
