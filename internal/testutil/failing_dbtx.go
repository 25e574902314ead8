package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/jornada/internal/db"
)

// FailingDBTX wraps a DBTX and injects Err on the FailOn-th ExecContext call.
// FailOn <= 0 fails every write. Reads pass through unless FailReads is set.
type FailingDBTX struct {
	db.DBTX
	FailOn    int32
	FailReads bool
	Err       error

	count atomic.Int32
}

func (f *FailingDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if f.FailOn <= 0 || n == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

func (f *FailingDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	if f.FailReads {
		// A cancelled context makes the row carry an error on Scan.
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		return f.DBTX.QueryRowContext(cancelled, query, args...)
	}
	return f.DBTX.QueryRowContext(ctx, query, args...)
}
