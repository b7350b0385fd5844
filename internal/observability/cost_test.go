package observability

import "testing"

func TestEstimateCost(t *testing.T) {
	// 1000 input + 1000 output tokens at per-1K prices.
	got := EstimateCost("gpt-4o-mini", 1000, 1000)
	want := gpt4oMiniInputPrice + gpt4oMiniOutputPrice
	if got != want {
		t.Errorf("EstimateCost = %v, want %v", got, want)
	}
}

func TestEstimateCostUnknownModelUsesDefault(t *testing.T) {
	got := EstimateCost("some-future-model", 2000, 0)
	want := 2 * gpt4oMiniInputPrice
	if got != want {
		t.Errorf("EstimateCost = %v, want %v", got, want)
	}
}

func TestFormatCost(t *testing.T) {
	if got := FormatCost(0.00075); got != "$0.000750" {
		t.Errorf("FormatCost = %q", got)
	}
	if got := FormatCost(0); got != "$0.000000" {
		t.Errorf("FormatCost = %q", got)
	}
}
