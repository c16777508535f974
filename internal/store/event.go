package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out one increasing sequence number shared by every
// event table, so answers, rounds and LLM calls can be ordered against each
// other even though each lives in its own table with its own row IDs.
//
// The mutex serializes within the process; the read and the increment share
// one transaction.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

// newSequenceCounter creates a counter and seeds its row.
func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	query, args := builder().Insert(GlobalSequenceTable.Name).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if _, err := drv.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	tx, err := sc.drv.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin sequence: %w", err)
	}
	defer tx.Rollback()

	b := builder()
	query, args := b.Select("next_val").
		From(b.Table(GlobalSequenceTable.Name)).
		Where(entsql.EQ("id", 1)).
		Query()
	var seq int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}

	query, args = b.Update(GlobalSequenceTable.Name).
		Set("next_val", seq+1).
		Where(entsql.EQ("id", 1)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo with ent's query builders and the global
// sequence.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

// insert appends one row to table, filling sequence and timestamp.
func (r *eventRepo) insert(ctx context.Context, table string, cols []string, vals ...any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(table).
		Columns(append([]string{"sequence", "timestamp"}, cols...)...).
		Values(append([]any{seqNum, time.Now().UTC().UnixMilli()}, vals...)...).
		Query()
	if _, err := r.drv.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

// apply adds the QueryOpts filters, newest-first ordering and the limit to
// a selector over an event table.
func (o QueryOpts) apply(sel *entsql.Selector) *entsql.Selector {
	if o.After > 0 {
		sel.Where(entsql.GT("sequence", o.After))
	}
	if o.Before > 0 {
		sel.Where(entsql.LT("sequence", o.Before))
	}
	if !o.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", o.From.UTC().UnixMilli()))
	}
	if !o.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", o.To.UTC().UnixMilli()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if o.Limit > 0 {
		sel.Limit(o.Limit)
	}
	return sel
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
