package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunPrintsScenarios(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(context.Background(), &buf); err != nil {
		t.Fatalf("run demo: %v", err)
	}

	output := buf.String()
	wantLines := []string{
		"Probability to get a number greater than 2 is 0.6667",
		"Probability to get a number greater than 2 twice out of 3 throws is 0.4444",
		"Low profit probability: 0.20",
		"Medium profit probability: 0.60",
		"High profit probability: 0.20",
	}
	for _, want := range wantLines {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}
