package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/papermill_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// dateFilter appends `column >= start AND column < endExclusive` predicates for the bounded
// sides of rng, numbering placeholders after the existing args.
func dateFilter(column string, rng domain.DateRange, args []any) (string, []any) {
	var sb strings.Builder
	if rng.Start != nil {
		args = append(args, *rng.Start)
		fmt.Fprintf(&sb, " AND %s >= $%d", column, len(args))
	}
	if rng.EndExclusive != nil {
		args = append(args, *rng.EndExclusive)
		fmt.Fprintf(&sb, " AND %s < $%d", column, len(args))
	}
	return sb.String(), args
}
