// Package fetch drains paginated record sources that only answer bounded batches.
package fetch

import "context"

// PageFunc requests one batch of records using half-open [offset,
// offset+limit) addressing. It returns at most limit items; a shorter batch
// signals exhaustion.
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// All retrieves every record behind a paginated source. Starting at offset
// zero it requests batchSize items at a time, advancing only after a full
// batch, and stops on the first short batch. Termination is guaranteed
// because the loop continues only on full batches and any finite backing
// store eventually yields a short one.
//
// A mid-loop error degrades gracefully: whatever was accumulated so far is
// returned along with the error, and callers are expected to use the
// partial result. Each fetch is sequential by construction (the next offset
// depends on the previous batch size); independent fetches run concurrently
// with each other.
func All[T any](ctx context.Context, batchSize int, page PageFunc[T]) ([]T, error) {
	var collected []T

	for offset := 0; ; offset += batchSize {
		batch, err := page(ctx, offset, batchSize)
		if err != nil {
			return collected, err
		}
		collected = append(collected, batch...)
		if len(batch) < batchSize {
			return collected, nil
		}
	}
}
