package forecast

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service errors.
var (
	// ErrNoExplanations indicates that no contribution rows exist for
	// a prediction.
	ErrNoExplanations = errors.New("no explanations found for prediction")
)

// summaryTopFeatures is how many feature labels the summary names.
const summaryTopFeatures = 5

// Service provides forecast read operations.
type Service struct {
	repo Repository
}

// NewService creates a new forecast service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Explain returns the feature-attribution breakdown for a prediction,
// with a generated textual summary. Returns ErrNoExplanations when the
// prediction has no recorded contributions.
func (s *Service) Explain(ctx context.Context, predictionID string) (*Explanation, error) {
	contributions, err := s.repo.Contributions(ctx, predictionID)
	if err != nil {
		return nil, err
	}
	if len(contributions) == 0 {
		return nil, ErrNoExplanations
	}

	return &Explanation{
		PredictionID:  predictionID,
		Contributions: contributions,
		Summary:       buildSummary(contributions),
	}, nil
}

// buildSummary names the strongest features and the single largest
// positive and negative contributor. Contributions arrive ordered by
// descending absolute magnitude.
func buildSummary(contributions []Contribution) string {
	top := contributions
	if len(top) > summaryTopFeatures {
		top = top[:summaryTopFeatures]
	}

	names := make([]string, 0, len(top))
	for _, c := range top {
		names = append(names, c.FeatureName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top contributing features: %s.", strings.Join(names, ", "))

	if pos, ok := extreme(contributions, func(v float64) bool { return v > 0 }); ok {
		fmt.Fprintf(&b, " Largest increase from %s (%+.2f).", pos.FeatureName, pos.Contribution)
	}
	if neg, ok := extreme(contributions, func(v float64) bool { return v < 0 }); ok {
		fmt.Fprintf(&b, " Largest decrease from %s (%+.2f).", neg.FeatureName, neg.Contribution)
	}

	return b.String()
}

// extreme returns the first contribution whose value matches the sign
// predicate. Ordering by absolute magnitude makes it the strongest one.
func extreme(contributions []Contribution, match func(float64) bool) (Contribution, bool) {
	for _, c := range contributions {
		if match(c.Contribution) {
			return c, true
		}
	}
	return Contribution{}, false
}
