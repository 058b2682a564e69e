package providers

import (
	"context"

	"hockey-odds-service/internal/domain"
)

// PredictionProvider defines how upstream prediction snapshots are fetched.
// The date parameter, when provided, should be a YYYY-MM-DD string; providers
// should interpret an empty date as "today".
type PredictionProvider interface {
	FetchPredictions(ctx context.Context, date string) (domain.Snapshot, error)
}
