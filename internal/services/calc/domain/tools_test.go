package domain

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/louisbranch/possibility.space/internal/calc"
)

func TestCalcToolRoundTrip(t *testing.T) {
	registry := NewRegistry()
	ctx := context.Background()

	_, created, err := CalcCreateHandler(registry)(ctx, nil, CalcCreateInput{
		Universe:      []float64{0, 1, 2, 3, 4},
		Probabilities: []float64{0.1, 0.2, 0.3, 0.2, 0.2},
	})
	if err != nil {
		t.Fatalf("calc_create: %v", err)
	}
	if created.CalcID == "" {
		t.Fatal("expected calculator id")
	}
	if created.Size != 5 {
		t.Fatalf("expected size 5, got %d", created.Size)
	}

	_, registered, err := CalcRegisterEventHandler(registry)(ctx, nil, CalcRegisterEventInput{
		CalcID:     created.CalcID,
		Membership: []float64{0.2, 0.4, 0.4},
	})
	if err != nil {
		t.Fatalf("calc_register_event: %v", err)
	}
	if registered.Index != 0 {
		t.Fatalf("expected event index 0, got %d", registered.Index)
	}
	if len(registered.Event) != 5 {
		t.Fatalf("expected fitted event length 5, got %d", len(registered.Event))
	}

	_, combined, err := CalcCombineEventsHandler(registry)(ctx, nil, CalcCombineEventsInput{
		CalcID:   created.CalcID,
		Operator: "sum",
		Indices:  []int{0},
	})
	if err != nil {
		t.Fatalf("calc_combine_events: %v", err)
	}
	if len(combined.Membership) != 5 {
		t.Fatalf("expected combined length 5, got %d", len(combined.Membership))
	}

	_, probability, err := CalcProbabilityHandler(registry)(ctx, nil, CalcProbabilityInput{
		CalcID: created.CalcID,
		Event:  combined.Membership,
	})
	if err != nil {
		t.Fatalf("calc_probability: %v", err)
	}
	if math.Abs(probability.Probability-0.22) > tolerance {
		t.Fatalf("expected probability 0.22, got %v", probability.Probability)
	}

	_, decomposition, err := CalcFuzzyProbabilityHandler(registry)(ctx, nil, CalcFuzzyProbabilityInput{
		CalcID: created.CalcID,
		Event:  []float64{0.2, 0.4},
	})
	if err != nil {
		t.Fatalf("calc_fuzzy_probability: %v", err)
	}
	if len(decomposition.AlphaLevels) != len(decomposition.Probabilities) {
		t.Fatal("expected aligned alpha levels and probabilities")
	}
	wantAlphas := []float64{0.2, 0.4}
	wantProbs := []float64{0.3, 0.2}
	for i := range wantAlphas {
		if math.Abs(decomposition.AlphaLevels[i]-wantAlphas[i]) > tolerance {
			t.Fatalf("expected alpha %v, got %v", wantAlphas[i], decomposition.AlphaLevels[i])
		}
		if math.Abs(decomposition.Probabilities[i]-wantProbs[i]) > tolerance {
			t.Fatalf("expected alpha-cut probability %v, got %v", wantProbs[i], decomposition.Probabilities[i])
		}
	}

	_, bernoulli, err := CalcBernoulliHandler(registry)(ctx, nil, CalcBernoulliInput{
		CalcID:    created.CalcID,
		Event:     []float64{1, 1, 1, 1, 0},
		Successes: 1,
		Failures:  0,
	})
	if err != nil {
		t.Fatalf("calc_bernoulli: %v", err)
	}
	if math.Abs(bernoulli.Probability-0.8) > tolerance {
		t.Fatalf("expected probability 0.8, got %v", bernoulli.Probability)
	}
}

func TestCalcToolErrorsAreUserFacing(t *testing.T) {
	registry := NewRegistry()
	ctx := context.Background()

	_, _, err := CalcProbabilityHandler(registry)(ctx, nil, CalcProbabilityInput{
		CalcID: "missing",
		Event:  []float64{1},
	})
	if err == nil {
		t.Fatal("expected unknown calculator error")
	}
	if !strings.Contains(err.Error(), "was not found") {
		t.Fatalf("expected catalog-formatted message, got %q", err.Error())
	}

	_, _, err = CalcCreateHandler(registry)(ctx, nil, CalcCreateInput{
		Universe:      []float64{0, 1},
		Probabilities: []float64{0.6, 0.6},
	})
	if err == nil {
		t.Fatal("expected unnormalized distribution error")
	}
	if !strings.Contains(err.Error(), "instead of 1") {
		t.Fatalf("expected catalog-formatted message, got %q", err.Error())
	}
}

func TestParseOperator(t *testing.T) {
	tests := []struct {
		value   string
		want    calc.Operator
		wantErr bool
	}{
		{value: "sum", want: calc.OperatorSum},
		{value: "union", want: calc.OperatorSum},
		{value: " Intersection ", want: calc.OperatorIntersection},
		{value: "intersect", want: calc.OperatorIntersection},
		{value: "xor", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseOperator(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected operator parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse operator: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected operator %v, got %v", tt.want, got)
			}
		})
	}
}
