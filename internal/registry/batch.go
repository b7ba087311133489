package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/exgen-dev/exgen/pkg/models"
)

// ResolveAll resolves every package in names concurrently and returns
// the dependencies in input order. Any single lookup failure fails the
// whole batch and no partial results are returned.
func ResolveAll(ctx context.Context, r Resolver, names []string) ([]models.Dependency, error) {
	if len(names) == 0 {
		return nil, nil
	}

	results := make([]models.Dependency, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Go(func() {
			results[i], errs[i] = r.Resolve(ctx, name)
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("resolve packages: %w", err)
	}
	return results, nil
}
