package biometric

import (
	"math"
	"sort"

	"facegate.io/infrastructure/biometric/types"
)

const defaultBatchTopK = 5

// TemplateRef pairs a stored embedding with the identifier it belongs to.
type TemplateRef struct {
	ID        string
	Embedding []float32
}

// CompareEmbeddings matches two embeddings at the given security level.
// Both similarity and euclidean distance are reported; the match decision is
// driven by similarity against the level's threshold.
func CompareEmbeddings(probe, reference []float32, level types.SecurityLevel) (types.Comparison, error) {
	if len(probe) != len(reference) {
		return types.Comparison{}, newError(KindDimensionMismatch, "embedding dimensions differ: %d vs %d", len(probe), len(reference))
	}
	if len(probe) == 0 {
		return types.Comparison{}, newError(KindDimensionMismatch, "embeddings are empty")
	}

	threshold := level.Threshold()
	similarity := cosineSimilarity(probe, reference)

	return types.Comparison{
		IsMatch:       similarity > 1.0-threshold,
		Similarity:    similarity,
		Distance:      euclideanDistance(probe, reference),
		Threshold:     threshold,
		Confidence:    matchConfidence(similarity),
		SecurityLevel: level,
	}, nil
}

// BatchCompare ranks candidate templates against a probe embedding and
// returns the topK best by similarity. topK <= 0 selects the default of 5.
// A candidate whose dimensions do not fit the probe fails the whole call
// rather than being silently skipped.
func BatchCompare(probe []float32, candidates []TemplateRef, level types.SecurityLevel, topK int) ([]types.RankedMatch, error) {
	if topK <= 0 {
		topK = defaultBatchTopK
	}

	matches := make([]types.RankedMatch, 0, len(candidates))
	for _, candidate := range candidates {
		comparison, err := CompareEmbeddings(probe, candidate.Embedding, level)
		if err != nil {
			return nil, err
		}
		matches = append(matches, types.RankedMatch{ID: candidate.ID, Comparison: comparison})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// matchConfidence rescales cosine similarity into a 0-100 confidence figure.
// Similarities at or below 0.3 carry no confidence at all.
func matchConfidence(similarity float64) float64 {
	confidence := (similarity - 0.3) / 0.7 * 100
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

func cosineSimilarity(a, b []float32) float64 {
	dotProduct := 0.0
	normA := 0.0
	normB := 0.0

	for i := 0; i < len(a); i++ {
		dotProduct += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	similarity := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
	if similarity > 1.0 {
		similarity = 1.0
	}
	if similarity < -1.0 {
		similarity = -1.0
	}
	return similarity
}

func euclideanDistance(a, b []float32) float64 {
	total := 0.0
	for i := 0; i < len(a); i++ {
		diff := float64(a[i] - b[i])
		total += diff * diff
	}
	return math.Sqrt(total)
}
