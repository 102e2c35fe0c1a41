package classify

import (
	"context"

	"anota/internal/model"
)

// Classifier is the contract shared by the remote and heuristic tiers.
// Callers are agnostic to which tier produced the result.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.Result, error)
}
