package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/papermill_ledger/internal/apperrors"
	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/papermill_ledger/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// DefaultSourceTimeout bounds a single posting source when none is configured.
const DefaultSourceTimeout = 10 * time.Second

// Assembly is the merged, ordered output of all posting sources for one scope.
type Assembly struct {
	Postings      []domain.Posting
	Warnings      []domain.SourceWarning
	FailedSources []domain.SourceName
}

// LedgerAssembler runs every posting source for a scope and merges their postings into a
// single chronological list.
type LedgerAssembler struct {
	BaseService
	sources       []portssvc.PostingSource
	sourceTimeout time.Duration
}

// NewLedgerAssembler creates an assembler over the given sources. A non-positive timeout
// falls back to DefaultSourceTimeout.
func NewLedgerAssembler(sources []portssvc.PostingSource, sourceTimeout time.Duration) *LedgerAssembler {
	if sourceTimeout <= 0 {
		sourceTimeout = DefaultSourceTimeout
	}
	return &LedgerAssembler{sources: sources, sourceTimeout: sourceTimeout}
}

// Assemble fetches postings from every source concurrently. A source that fails or runs
// past its timeout contributes no postings and one warning; the rest of the ledger is still
// returned. Cancelling ctx aborts the whole assembly with ctx.Err().
func (a *LedgerAssembler) Assemble(ctx context.Context, scope domain.AccountScope, rng domain.DateRange) (*Assembly, error) {
	results := make([][]domain.Posting, len(a.sources))
	failures := make([]error, len(a.sources))

	var g errgroup.Group
	for i, src := range a.sources {
		g.Go(func() error {
			srcCtx, cancel := context.WithTimeout(ctx, a.sourceTimeout)
			defer cancel()

			postings, err := src.Fetch(srcCtx, scope, rng)
			if err != nil {
				failures[i] = &apperrors.SourceError{Source: string(src.Name()), Err: err}
				return nil
			}
			results[i] = postings
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &Assembly{}
	total := 0
	for _, r := range results {
		total += len(r)
	}
	out.Postings = make([]domain.Posting, 0, total)

	for i, src := range a.sources {
		if failures[i] != nil {
			msg := failures[i].Error()
			if errors.Is(failures[i], context.DeadlineExceeded) {
				msg = fmt.Sprintf("source %s timed out after %s", src.Name(), a.sourceTimeout)
			}
			a.LogWarn(ctx, "Posting source failed, ledger will be partial",
				slog.String("source", string(src.Name())),
				slog.String("account_id", scope.Root.AccountID),
				slog.String("error", failures[i].Error()))
			out.Warnings = append(out.Warnings, domain.SourceWarning{Source: src.Name(), Message: msg})
			out.FailedSources = append(out.FailedSources, src.Name())
			continue
		}
		out.Postings = append(out.Postings, results[i]...)
	}

	sort.SliceStable(out.Postings, func(i, j int) bool {
		return out.Postings[i].Less(out.Postings[j])
	})
	return out, nil
}
