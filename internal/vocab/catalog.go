package vocab

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
)

// Source supplies the word list of one category. A category with no
// backing file yields an empty list and a nil error.
type Source interface {
	Category(c Category) ([]Word, error)
}

// FSSource reads "<category>.json" files from a filesystem.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a Source over fsys (e.g. os.DirFS(dir) or Embedded()).
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Category(c Category) ([]Word, error) {
	raw, err := fs.ReadFile(s.fsys, string(c)+".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", c, err)
	}
	return Decode(c, raw)
}

// Decode validates and parses one category file, tagging every word with c.
func Decode(c Category, raw []byte) ([]Word, error) {
	if err := Validate(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", c, err)
	}
	var words []Word
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c, err)
	}
	for i := range words {
		words[i].Category = c
	}
	return words, nil
}

// Layered consults its sources in order and returns the first non-empty
// list. It lets a user data directory override the built-in lists one
// category at a time.
type Layered struct {
	sources []Source
	logger  *zap.Logger
}

// NewLayered creates a Layered source. Errors from a source that a later
// one covers are logged on logger, which may be nil.
func NewLayered(logger *zap.Logger, sources ...Source) *Layered {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Layered{sources: sources, logger: logger}
}

func (l *Layered) Category(c Category) ([]Word, error) {
	var firstErr error
	for _, s := range l.sources {
		words, err := s.Category(c)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if len(words) > 0 {
			if firstErr != nil {
				l.logger.Warn("ignoring unreadable category override",
					zap.String("category", string(c)), zap.Error(firstErr))
			}
			return words, nil
		}
	}
	return nil, firstErr
}

// Catalog holds every loaded category.
type Catalog struct {
	words map[Category][]Word
}

// NewCatalog builds a catalog directly from in-memory lists. Words are
// re-tagged with the key they are stored under.
func NewCatalog(lists map[Category][]Word) *Catalog {
	c := &Catalog{words: make(map[Category][]Word, len(lists))}
	for cat, ws := range lists {
		tagged := make([]Word, len(ws))
		for i, w := range ws {
			w.Category = cat
			tagged[i] = w
		}
		c.words[cat] = tagged
	}
	return c
}

// Load reads every category from src. Missing or unreadable categories are
// omitted (and logged); it fails only when nothing could be loaded.
func Load(src Source, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{words: make(map[Category][]Word)}
	total := 0
	for _, cat := range Categories {
		words, err := src.Category(cat)
		if err != nil {
			logger.Warn("skipping category", zap.String("category", string(cat)), zap.Error(err))
			continue
		}
		if len(words) == 0 {
			logger.Debug("category has no words", zap.String("category", string(cat)))
			continue
		}
		c.words[cat] = words
		total += len(words)
	}
	if total == 0 {
		return nil, ErrEmptyCatalog
	}
	logger.Info("vocabulary loaded", zap.Int("categories", len(c.words)), zap.Int("words", total))
	return c, nil
}

// Words returns the list for cat. All returns every category concatenated
// in menu order.
func (c *Catalog) Words(cat Category) []Word {
	if cat == All {
		return c.All()
	}
	return c.words[cat]
}

// All concatenates every loaded category in menu order.
func (c *Catalog) All() []Word {
	var out []Word
	for _, cat := range Categories {
		out = append(out, c.words[cat]...)
	}
	return out
}

// Count returns the number of words in cat.
func (c *Catalog) Count(cat Category) int {
	return len(c.Words(cat))
}

// Loaded returns the categories that have at least one word, in menu order.
func (c *Catalog) Loaded() []Category {
	var out []Category
	for _, cat := range Categories {
		if len(c.words[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}
