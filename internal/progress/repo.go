package progress

import "context"

// Saver persists the whole document. Session controllers call it after
// every scored answer.
type Saver interface {
	Save(ctx context.Context, d *Document) error
}

// Repo loads and saves the progress document. Load never fails on a
// missing or corrupt store; it returns a fresh document instead.
type Repo interface {
	Saver
	Load(ctx context.Context) (*Document, error)
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, d *Document) error

func (f SaverFunc) Save(ctx context.Context, d *Document) error { return f(ctx, d) }
