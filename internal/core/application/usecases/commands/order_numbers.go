package commands

import (
	"context"
	"errors"
	"fmt"

	"decoflow/internal/core/ports"
	"decoflow/internal/pkg/errs"
)

const (
	leadNumberPrefix  = "LEAD"
	quoteNumberPrefix = "TBD"
)

// nextOrderNumber returns the first free <prefix>-<n> number, starting from
// one past the current store size.
func nextOrderNumber(ctx context.Context, repo ports.OrderRepository, prefix string) (string, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return "", err
	}
	for n := count + 1; ; n++ {
		candidate := fmt.Sprintf("%s-%04d", prefix, n)
		_, err = repo.GetByNumber(ctx, candidate)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
}
