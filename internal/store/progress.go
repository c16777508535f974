package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/wortschatz/wortschatz/internal/progress"
)

// ProgressRepo persists the progress document in the learner and
// word_progress tables. It implements progress.Repo.
type ProgressRepo struct {
	drv *entsql.Driver
}

var _ progress.Repo = (*ProgressRepo)(nil)

// Load reads the document. An empty database yields a fresh document.
func (r *ProgressRepo) Load(ctx context.Context) (*progress.Document, error) {
	doc := progress.New()

	b := builder()
	query, args := b.Select("xp", "streak", "last_played", "best_speed").
		From(b.Table(LearnerTable.Name)).
		Where(entsql.EQ("id", 1)).
		Query()
	err := r.drv.DB().QueryRowContext(ctx, query, args...).
		Scan(&doc.XP, &doc.Streak, &doc.LastPlayed, &doc.BestSpeed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load learner: %w", err)
	}

	query, args = b.Select("word_key", "mastery", "correct", "wrong").
		From(b.Table(WordProgressTable.Name)).
		Query()
	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load word progress: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		rec := &progress.Record{}
		if err := rows.Scan(&key, &rec.Mastery, &rec.Correct, &rec.Wrong); err != nil {
			return nil, fmt.Errorf("scan word progress: %w", err)
		}
		doc.Words[key] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load word progress: %w", err)
	}
	return doc, nil
}

// Save replaces the stored document in a single transaction.
func (r *ProgressRepo) Save(ctx context.Context, doc *progress.Document) error {
	tx, err := r.drv.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	b := builder()
	query, args := b.Insert(LearnerTable.Name).
		Columns("id", "xp", "streak", "last_played", "best_speed", "updated_at").
		Values(1, doc.XP, doc.Streak, doc.LastPlayed, doc.BestSpeed, time.Now().UTC().UnixMilli()).
		OnConflict(entsql.ConflictColumns("id"), entsql.ResolveWithNewValues()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save learner: %w", err)
	}

	query, args = b.Delete(WordProgressTable.Name).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear word progress: %w", err)
	}

	for key, rec := range doc.Words {
		if rec == nil {
			continue
		}
		mastery := min(max(rec.Mastery, 0), progress.MaxMastery)
		query, args := b.Insert(WordProgressTable.Name).
			Columns("word_key", "mastery", "correct", "wrong").
			Values(key, mastery, rec.Correct, rec.Wrong).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save word %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit progress: %w", err)
	}
	return nil
}
