package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wortschatz/wortschatz/internal/coach"
	"github.com/wortschatz/wortschatz/internal/config"
	"github.com/wortschatz/wortschatz/internal/llm"
	"github.com/wortschatz/wortschatz/internal/logging"
	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/store"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// env is what every subcommand works with once flags and config are
// resolved. close must be called when done.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *store.Store
	repo    progress.Repo
	doc     *progress.Document
	catalog *vocab.Catalog
}

// loadConfig reads the config file and applies flag overrides, which take
// precedence over the file and the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("progress"); p != "" {
		cfg.Progress.Path = p
	}
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.DataDir = p
	}
	return cfg, nil
}

// openEnv opens the store, loads progress and the vocabulary.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		log = zap.NewNop()
	}

	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	e := &env{cfg: cfg, log: log, store: st}
	switch cfg.Progress.Backend {
	case config.BackendSQLite:
		e.repo = st.ProgressRepo()
	default:
		e.repo = progress.NewFileRepo(cfg.Progress.Path, log)
	}

	e.doc, err = e.repo.Load(cmd.Context())
	if err != nil {
		e.close()
		return nil, fmt.Errorf("load progress: %w", err)
	}

	dir, err := vocabDir(cfg)
	if err != nil {
		e.close()
		return nil, err
	}
	e.catalog, err = vocab.Load(vocabSource(dir, log), log)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return e, nil
}

func (e *env) close() {
	e.log.Sync()
	e.store.Close()
}

// sessionEnv is the template handed to every practice round.
func (e *env) sessionEnv() session.Env {
	return session.Env{
		Doc:           e.doc,
		Saver:         e.repo,
		Events:        e.store.EventRepo(),
		Logger:        e.log,
		BatchSize:     e.cfg.Quiz.BatchSize,
		SpeedDuration: e.cfg.Speed.Duration,
	}
}

// coach returns the word coach, or nil when no LLM provider is configured.
func (e *env) coach(ctx context.Context) *coach.Service {
	lc := e.cfg.LLM()
	provider, err := llm.NewProvider(ctx, lc, e.store.EventRepo(), e.log)
	if err != nil {
		if !errors.Is(err, llm.ErrDisabled) {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The coach will be unavailable.")
		}
		return nil
	}
	cc := coach.DefaultConfig()
	if lc.Timeout > 0 {
		cc.Timeout = lc.Timeout
	}
	return coach.NewService(provider, cc)
}

// touchStreak advances the daily streak for today's visit and saves it.
func (e *env) touchStreak(ctx context.Context) {
	e.doc.UpdateStreak(timeNow())
	if err := e.repo.Save(ctx, e.doc); err != nil {
		e.log.Warn("saving streak failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Warning: progress could not be saved:", err)
	}
}

// vocabDir is where imported and user-edited lists live.
func vocabDir(cfg *config.Config) (string, error) {
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	dir, err := store.DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vocab"), nil
}

// vocabSource layers the user directory over the built-in lists.
func vocabSource(dir string, log *zap.Logger) vocab.Source {
	return vocab.NewLayered(log,
		vocab.NewFSSource(os.DirFS(dir)),
		vocab.NewFSSource(vocab.Embedded()),
	)
}
