package origin

import (
	"math"
	"math/rand"
	"testing"

	"github.com/codeGROOVE-dev/tokorigin/pkg/signals"
)

const epsilon = 1e-9

func TestAggregateNoSignals(t *testing.T) {
	result := Aggregate(nil)

	if result.Country != UnknownCountry {
		t.Errorf("country = %q, want %q", result.Country, UnknownCountry)
	}
	if result.Confidence != 0 {
		t.Errorf("confidence = %v, want 0", result.Confidence)
	}
	if len(result.Signals) != 0 {
		t.Errorf("expected empty evidence, got %d signals", len(result.Signals))
	}
	if result.Warning == "" {
		t.Error("unknown result must carry an explicit warning")
	}
}

func TestAggregateSingleDeclaredRegion(t *testing.T) {
	// One full-confidence declared-region signal: score is exactly the
	// method weight, no diversity bonus, warning because 0.30 < 0.60.
	result := Aggregate([]signals.Signal{{
		Country:    "MY",
		Confidence: 1.0,
		Method:     signals.MethodDeclaredRegion,
		Evidence:   "declared",
	}})

	if result.Country != "MY" {
		t.Fatalf("country = %q, want MY", result.Country)
	}
	if result.CountryName != "Malaysia" {
		t.Errorf("country name = %q, want Malaysia", result.CountryName)
	}
	if math.Abs(result.Confidence-0.30) > epsilon {
		t.Errorf("confidence = %v, want exactly 1.0 x 0.30", result.Confidence)
	}
	if result.MethodCount != 1 {
		t.Errorf("method count = %d, want 1", result.MethodCount)
	}
	if result.DiversityBonus != 0 {
		t.Errorf("diversity bonus = %v, want 0 for a single method", result.DiversityBonus)
	}
	if result.Warning == "" {
		t.Error("a 0.30 confidence result should carry a low-confidence warning")
	}
}

func TestDiversityBonus(t *testing.T) {
	cases := []struct {
		methods int
		want    float64
	}{
		{1, 0},
		{2, 0.05},
		{5, 0.20},
		{10, 0.20}, // capped
	}
	prev := -1.0
	for _, tc := range cases {
		got := diversityBonus(tc.methods)
		if math.Abs(got-tc.want) > epsilon {
			t.Errorf("diversityBonus(%d) = %v, want %v", tc.methods, got, tc.want)
		}
		if got < prev {
			t.Errorf("diversityBonus must be monotonically non-decreasing, %d methods gave %v after %v",
				tc.methods, got, prev)
		}
		prev = got
	}
}

func TestAggregateSameMethodDuplicatesAccumulate(t *testing.T) {
	// Two bio signals for the same country both add to the score: no
	// dedupe, no averaging.
	sigs := []signals.Signal{
		{Country: "ID", Confidence: 0.9, Method: signals.MethodBioNickname},
		{Country: "ID", Confidence: 0.7, Method: signals.MethodBioNickname},
	}
	result := Aggregate(sigs)

	want := (0.9 + 0.7) * 0.20 // one method, no bonus
	if math.Abs(result.Confidence-want) > epsilon {
		t.Errorf("confidence = %v, want %v", result.Confidence, want)
	}
	if result.MethodCount != 1 {
		t.Errorf("method count = %d, want 1", result.MethodCount)
	}
	if len(result.Signals) != 2 {
		t.Errorf("both signals should be kept as evidence, got %d", len(result.Signals))
	}
}

func TestAggregateConfidenceClamped(t *testing.T) {
	// Stack enough full-confidence signals that raw score x bonus would
	// exceed 1.0; the result must clamp.
	var sigs []signals.Signal
	for i := 0; i < 10; i++ {
		for _, m := range methodOrder {
			sigs = append(sigs, signals.Signal{Country: "ID", Confidence: 1.0, Method: m})
		}
	}
	result := Aggregate(sigs)
	if result.Confidence != 1.0 {
		t.Errorf("confidence = %v, want clamped to exactly 1.0", result.Confidence)
	}
	if result.DiversityBonus != 0.20 {
		t.Errorf("diversity bonus = %v, want capped 0.20", result.DiversityBonus)
	}
}

func TestAggregateTieBreaksAlphabetically(t *testing.T) {
	// Identical evidence for two countries: the winner must be the
	// alphabetically first code, regardless of signal order.
	orders := [][]signals.Signal{
		{
			{Country: "SG", Confidence: 0.5, Method: signals.MethodBioNickname},
			{Country: "ID", Confidence: 0.5, Method: signals.MethodBioNickname},
		},
		{
			{Country: "ID", Confidence: 0.5, Method: signals.MethodBioNickname},
			{Country: "SG", Confidence: 0.5, Method: signals.MethodBioNickname},
		},
	}
	for i, sigs := range orders {
		result := Aggregate(sigs)
		if result.Country != "ID" {
			t.Errorf("order %d: tie winner = %q, want ID (alphabetical)", i, result.Country)
		}
	}
}

func TestAggregateHighConfidenceHasNoWarning(t *testing.T) {
	sigs := []signals.Signal{
		{Country: "ID", Confidence: 1.0, Method: signals.MethodDeclaredRegion},
		{Country: "ID", Confidence: 0.9, Method: signals.MethodPhonePattern},
		{Country: "ID", Confidence: 0.9, Method: signals.MethodBioNickname},
	}
	result := Aggregate(sigs)
	if result.Confidence < lowConfidenceThreshold {
		t.Fatalf("fixture should score above threshold, got %v", result.Confidence)
	}
	if result.Warning != "" {
		t.Errorf("unexpected warning on confident result: %q", result.Warning)
	}
}

func TestAggregateConfidenceBoundsFuzzed(t *testing.T) {
	// Property: for arbitrary signal combinations, boundary confidences
	// and heavy same-method duplication included, the final confidence
	// stays in [0,1]. Seeded so failures reproduce.
	rng := rand.New(rand.NewSource(1))
	confidences := []float64{0, 0.001, 0.5, 0.999, 1.0}
	countries := []string{"ID", "MY", "TH", "US", "BR"}

	for i := 0; i < 500; i++ {
		n := rng.Intn(40) + 1
		sigs := make([]signals.Signal, 0, n)
		for j := 0; j < n; j++ {
			sigs = append(sigs, signals.Signal{
				Country:    countries[rng.Intn(len(countries))],
				Confidence: confidences[rng.Intn(len(confidences))],
				Method:     methodOrder[rng.Intn(len(methodOrder))],
			})
		}
		result := Aggregate(sigs)
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Fatalf("confidence %v out of [0,1] for %d signals", result.Confidence, n)
		}
	}
}
