// Package demo runs worked fuzzy probability scenarios and prints them.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/louisbranch/possibility.space/internal/calc"
	"github.com/louisbranch/possibility.space/internal/platform/cmd"
)

// Run prints the die throw and investment scenarios to out.
func Run(ctx context.Context, out io.Writer) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceDemo, func(context.Context) error {
		if err := dieThrow(out); err != nil {
			return fmt.Errorf("die throw scenario: %w", err)
		}
		fmt.Fprintln(out)
		if err := investment(out); err != nil {
			return fmt.Errorf("investment scenario: %w", err)
		}
		return nil
	})
}

// dieThrow models a fair six-sided die and a few events over it.
func dieThrow(out io.Writer) error {
	universe := []float64{1, 2, 3, 4, 5, 6}
	probabilities := make([]float64, len(universe))
	for i := range probabilities {
		probabilities[i] = 1.0 / 6.0
	}

	engine, err := calc.New(universe, probabilities, false)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Die throw")

	greaterThanTwo := []float64{0, 0, 1, 1, 1, 1}
	p, err := engine.Probability(greaterThanTwo)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Probability to get a number greater than 2 is %.4f\n", p)

	twoOfThree, err := engine.Bernoulli(greaterThanTwo, 2, 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Probability to get a number greater than 2 twice out of 3 throws is %.4f\n", twoOfThree)

	bigNumber := []float64{0, 0, 0.1, 0.3, 0.7, 1}
	p, err = engine.Probability(bigNumber)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Probability to get a big number is %.4f\n", p)
	return nil
}

// investment models graded profit levels over a discrete profit universe.
func investment(out io.Writer) error {
	universe := []float64{0, 5, 10, 15, 20}
	probabilities := []float64{0.1, 0.2, 0.4, 0.2, 0.1}

	engine, err := calc.New(universe, probabilities, true)
	if err != nil {
		return err
	}

	low := []float64{1.0, 0.5, 0.0, 0.0, 0.0}
	medium := []float64{0.0, 0.5, 1.0, 0.5, 0.0}
	high := []float64{0.0, 0.0, 0.0, 0.5, 1.0}

	engine.RegisterEvent(low)
	mediumIndex := engine.RegisterEvent(medium)
	highIndex := engine.RegisterEvent(high)

	fmt.Fprintln(out, "Investment profit")

	for _, level := range []struct {
		name  string
		event []float64
	}{
		{name: "Low", event: low},
		{name: "Medium", event: medium},
		{name: "High", event: high},
	} {
		p, err := engine.Probability(level.event)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s profit probability: %.2f\n", level.name, p)
	}

	fuzzyProbs, alphas := engine.FuzzyProbability(medium)
	fmt.Fprintf(out, "Medium profit fuzzy probability: %v at alpha levels %v\n", fuzzyProbs, alphas)

	combined, err := engine.EventsSum(mediumIndex, highIndex)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Membership of getting high or medium profit: %v\n", combined)
	return nil
}
