package biometric

import (
	"fmt"
	"math"
	"testing"

	"facegate.io/infrastructure/biometric/types"
)

func unitVector(dims int, axis int) []float32 {
	v := make([]float32, dims)
	v[axis] = 1
	return v
}

func TestCompareEmbeddingsIdentical(t *testing.T) {
	levels := []types.SecurityLevel{
		types.SecurityLevelVeryHigh,
		types.SecurityLevelHigh,
		types.SecurityLevelMedium,
		types.SecurityLevelLow,
	}

	probe := unitVector(512, 0)
	for _, level := range levels {
		t.Run(string(level), func(t *testing.T) {
			result, err := CompareEmbeddings(probe, probe, level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Similarity != 1.0 {
				t.Errorf("similarity = %v, want 1.0", result.Similarity)
			}
			if result.Distance != 0.0 {
				t.Errorf("distance = %v, want 0.0", result.Distance)
			}
			if !result.IsMatch {
				t.Errorf("identical embeddings should match at level %s", level)
			}
			if result.Confidence != 100.0 {
				t.Errorf("confidence = %v, want 100", result.Confidence)
			}
		})
	}
}

func TestCompareEmbeddingsSymmetric(t *testing.T) {
	a := []float32{0.3, -0.4, 0.5, 0.1}
	b := []float32{0.1, 0.2, -0.7, 0.4}

	ab, err := CompareEmbeddings(a, b, types.SecurityLevelMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := CompareEmbeddings(b, a, types.SecurityLevelMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ab.Similarity != ba.Similarity {
		t.Errorf("similarity not symmetric: %v vs %v", ab.Similarity, ba.Similarity)
	}
	if ab.Distance != ba.Distance {
		t.Errorf("distance not symmetric: %v vs %v", ab.Distance, ba.Distance)
	}
}

func TestCompareEmbeddingsDimensionMismatch(t *testing.T) {
	_, err := CompareEmbeddings(unitVector(512, 0), unitVector(128, 0), types.SecurityLevelMedium)
	if !IsKind(err, KindDimensionMismatch) {
		t.Fatalf("expected dimension mismatch error, got %v", err)
	}

	_, err = CompareEmbeddings(nil, nil, types.SecurityLevelMedium)
	if !IsKind(err, KindDimensionMismatch) {
		t.Fatalf("expected error for empty embeddings, got %v", err)
	}
}

// A pair that matches at a strict level must match at every laxer level.
func TestSecurityLevelMonotonicity(t *testing.T) {
	ordered := []types.SecurityLevel{
		types.SecurityLevelVeryHigh,
		types.SecurityLevelHigh,
		types.SecurityLevelMedium,
		types.SecurityLevelLow,
	}

	a := []float32{1, 0, 0}
	pairs := [][]float32{
		{1, 0, 0},
		{0.99, 0.14, 0},
		{0.9, 0.43, 0},
		{0.8, 0.6, 0},
		{0.5, 0.86, 0},
	}

	for _, b := range pairs {
		matchedStricter := false
		for _, level := range ordered {
			result, err := CompareEmbeddings(a, b, level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if matchedStricter && !result.IsMatch {
				t.Errorf("pair %v matched a stricter level but not %s", b, level)
			}
			if result.IsMatch {
				matchedStricter = true
			}
		}
	}
}

func TestMatchConfidenceScaling(t *testing.T) {
	tests := []struct {
		similarity float64
		want       float64
	}{
		{1.0, 100},
		{0.3, 0},
		{0.0, 0},
		{-1.0, 0},
		{0.65, 50},
		{0.8245, 74.9285714},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("sim=%v", tt.similarity), func(t *testing.T) {
			got := matchConfidence(tt.similarity)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("matchConfidence(%v) = %v, want %v", tt.similarity, got, tt.want)
			}
		})
	}
}

func TestBatchCompareRanking(t *testing.T) {
	probe := []float32{1, 0, 0}
	candidates := []TemplateRef{
		{ID: "far", Embedding: []float32{0, 1, 0}},
		{ID: "close", Embedding: []float32{0.99, 0.14, 0}},
		{ID: "exact", Embedding: []float32{1, 0, 0}},
		{ID: "mid", Embedding: []float32{0.7, 0.71, 0}},
	}

	matches, err := BatchCompare(probe, candidates, types.SecurityLevelLow, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 4 {
		t.Fatalf("got %d matches, want 4", len(matches))
	}

	wantOrder := []string{"exact", "close", "mid", "far"}
	for i, want := range wantOrder {
		if matches[i].ID != want {
			t.Errorf("rank %d = %s, want %s", i, matches[i].ID, want)
		}
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Errorf("matches not sorted by similarity at rank %d", i)
		}
	}
}

func TestBatchCompareTopK(t *testing.T) {
	probe := unitVector(8, 0)
	var candidates []TemplateRef
	for i := 0; i < 12; i++ {
		candidates = append(candidates, TemplateRef{
			ID:        fmt.Sprintf("candidate-%d", i),
			Embedding: unitVector(8, i%8),
		})
	}

	matches, err := BatchCompare(probe, candidates, types.SecurityLevelMedium, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 5 {
		t.Errorf("default top-k returned %d matches, want 5", len(matches))
	}

	matches, err = BatchCompare(probe, candidates, types.SecurityLevelMedium, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("top-3 returned %d matches, want 3", len(matches))
	}
}

func TestBatchCompareDimensionMismatchFailsWhole(t *testing.T) {
	probe := unitVector(8, 0)
	candidates := []TemplateRef{
		{ID: "good", Embedding: unitVector(8, 1)},
		{ID: "bad", Embedding: unitVector(4, 1)},
	}

	_, err := BatchCompare(probe, candidates, types.SecurityLevelMedium, 0)
	if !IsKind(err, KindDimensionMismatch) {
		t.Fatalf("expected dimension mismatch error, got %v", err)
	}
}

func TestSecurityLevelThresholds(t *testing.T) {
	tests := []struct {
		level types.SecurityLevel
		want  float64
	}{
		{types.SecurityLevelVeryHigh, 0.25},
		{types.SecurityLevelHigh, 0.35},
		{types.SecurityLevelMedium, 0.45},
		{types.SecurityLevelLow, 0.55},
		{types.SecurityLevel("bogus"), 0.45},
	}

	for _, tt := range tests {
		if got := tt.level.Threshold(); got != tt.want {
			t.Errorf("%s threshold = %v, want %v", tt.level, got, tt.want)
		}
	}
}
