package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// AnswerEventData captures one scored answer.
type AnswerEventData struct {
	SessionID     string
	Mode          string
	Category      string
	Word          string
	Prompt        string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	TimeMs        int
}

// SessionEventData captures the start or end of a practice round.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	Mode            string
	Category        string
	QuestionsServed int
	CorrectAnswers  int
	XPEarned        int
	DurationSecs    int
}

// SessionSummaryRecord is a finished round read back from the log.
type SessionSummaryRecord struct {
	SessionID       string
	Mode            string
	Category        string
	Timestamp       time.Time
	QuestionsServed int
	CorrectAnswers  int
	XPEarned        int
	DurationSecs    int
}

// ModeAccuracy aggregates answer events for one mode.
type ModeAccuracy struct {
	Mode    string
	Answers int
	Correct int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM events for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns finished rounds, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// AccuracyByMode totals answer events per mode.
	AccuracyByMode(ctx context.Context) ([]ModeAccuracy, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if there is none.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose totals LLM events per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}
