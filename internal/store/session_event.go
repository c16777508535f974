package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	err := r.insert(ctx, SessionEventsTable.Name,
		[]string{"session_id", "action", "mode", "category",
			"questions_served", "correct_answers", "xp_earned", "duration_secs"},
		data.SessionID, data.Action, data.Mode, data.Category,
		data.QuestionsServed, data.CorrectAnswers, data.XPEarned, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	err := r.insert(ctx, AnswerEventsTable.Name,
		[]string{"session_id", "mode", "category", "word", "prompt",
			"correct_answer", "learner_answer", "correct", "time_ms"},
		data.SessionID, data.Mode, data.Category, data.Word, data.Prompt,
		data.CorrectAnswer, data.LearnerAnswer, data.Correct, data.TimeMs,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	b := builder()
	sel := b.Select("session_id", "mode", "category", "timestamp", "questions_served",
		"correct_answers", "xp_earned", "duration_secs").
		From(b.Table(SessionEventsTable.Name)).
		Where(entsql.EQ("action", "end"))
	query, args := opts.apply(sel).Query()

	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		var ts int64
		if err := rows.Scan(&rec.SessionID, &rec.Mode, &rec.Category, &ts,
			&rec.QuestionsServed, &rec.CorrectAnswers, &rec.XPEarned, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		rec.Timestamp = fromMillis(ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) AccuracyByMode(ctx context.Context) ([]ModeAccuracy, error) {
	b := builder()
	query, args := b.Select("mode", entsql.Count("*"), entsql.Sum("correct")).
		From(b.Table(AnswerEventsTable.Name)).
		GroupBy("mode").
		OrderBy("mode").
		Query()

	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query accuracy by mode: %w", err)
	}
	defer rows.Close()

	var out []ModeAccuracy
	for rows.Next() {
		var m ModeAccuracy
		if err := rows.Scan(&m.Mode, &m.Answers, &m.Correct); err != nil {
			return nil, fmt.Errorf("scan accuracy: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
