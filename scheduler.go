// Copyright (c) 2026 bigint contributors
// SPDX-License-Identifier: BSD-3-Clause

package bigint

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Work-pool scheduler backing Karatsuba's concurrent sub-products
// (spec.md §5). submit enqueues a task; exitScope blocks until every
// task submitted within the scope — including nested fan-outs spawned by
// recursive Karatsuba calls — has completed, publishing results into a
// mutex-guarded map. An error from any sub-task propagates out of exitScope and
// cancels the containing operation; nothing is retried or swallowed.
//
// Grounded on golang.org/x/sync/errgroup for the spawn/wait-all primitive,
// the same mechanism cloudflare-cloudflared's supervisor and origin
// packages use for goroutine fan-out, combined with the explicit
// sync.Mutex-guarded result table pattern from the z80-optimizer example's
// pkg/search.WorkerPool (oisee-z80-optimizer/pkg/search/worker.go).
type scope struct {
	eg      *errgroup.Group
	mu      sync.Mutex
	results map[string][]uint64
}

// schedulerLog is the package's injectable logger; silent by default so the
// library never logs unless a caller opts in (see SetLogger).
var schedulerLog = zerolog.Nop()

// SetLogger installs a logger the scheduler uses to report Karatsuba
// fan-out joins and sub-task failures. Passing zerolog.Nop() restores
// silence.
func SetLogger(l zerolog.Logger) { schedulerLog = l }

// enterScope opens a fan-out region.
func enterScope() *scope {
	return &scope{eg: new(errgroup.Group), results: make(map[string][]uint64)}
}

// submit enqueues a task keyed by key; its result (or error) is collected
// at exitScope.
func (s *scope) submit(key string, task func() ([]uint64, error)) {
	s.eg.Go(func() (err error) {
		defer func() {
			// Cancellation is not supported (spec.md §5): a panicking
			// sub-task is caught here and re-raised as an ordinary error at
			// the join barrier rather than crashing the whole process.
			if r := recover(); r != nil {
				err = errors.Errorf("karatsuba sub-task %q panicked: %v", key, r)
			}
		}()
		result, taskErr := task()
		if taskErr != nil {
			return taskErr
		}
		s.mu.Lock()
		s.results[key] = result
		s.mu.Unlock()
		return nil
	})
}

// exitScope blocks until every submitted task (and any nested fan-out it
// started) has completed, returning the published results or the first
// error encountered.
func (s *scope) exitScope(sizeHint int) (map[string][]uint64, error) {
	err := s.eg.Wait()
	if err != nil {
		schedulerLog.Error().Err(err).Msg("karatsuba sub-task failed")
		return nil, err
	}
	schedulerLog.Debug().
		Int("subproducts", len(s.results)).
		Int("operand_limbs", sizeHint).
		Msg("karatsuba fan-out joined")
	return s.results, nil
}
