package vocab

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportConfig describes where the word fields live in a spreadsheet.
// Columns are spreadsheet letters ("A", "B", ...); an empty column is
// not imported.
type ImportConfig struct {
	FilePath          string
	Category          Category
	SheetName         string // xlsx only; empty means the first sheet
	GermanColumn      string
	EnglishColumn     string
	HintColumn        string
	ExampleColumn     string
	ConjugationColumn string
	OppositeColumn    string
	ContextColumn     string
	StartRow          int // 1-based; rows above it are headers
}

// DefaultImportConfig returns the column layout used by the bundled
// spreadsheet template: de, en, hint, example, conjugation, opposite,
// context with one header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		GermanColumn:      "A",
		EnglishColumn:     "B",
		HintColumn:        "C",
		ExampleColumn:     "D",
		ConjugationColumn: "E",
		OppositeColumn:    "F",
		ContextColumn:     "G",
		StartRow:          2,
	}
}

// ImportResult counts what happened to each row.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ReadSpreadsheet reads words from an .xlsx or .csv file.
func ReadSpreadsheet(cfg ImportConfig) ([]Word, *ImportResult, error) {
	if !cfg.Category.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCategory, cfg.Category)
	}
	if cfg.GermanColumn == "" || cfg.EnglishColumn == "" {
		return nil, nil, errors.New("german and english columns are required")
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".csv":
		rows, err = readCSVRows(cfg.FilePath)
	case ".xlsx", ".xlsm":
		rows, err = readExcelRows(cfg.FilePath, cfg.SheetName)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q (want .xlsx or .csv)", filepath.Ext(cfg.FilePath))
	}
	if err != nil {
		return nil, nil, err
	}

	words, result := rowsToWords(rows, cfg)
	return words, result, nil
}

func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowsToWords(rows [][]string, cfg ImportConfig) ([]Word, *ImportResult) {
	result := &ImportResult{}
	start := cfg.StartRow
	if start < 1 {
		start = 1
	}

	var words []Word
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < start {
			continue
		}
		result.TotalProcessed++

		cell := func(col string) string {
			if col == "" {
				return ""
			}
			idx, err := excelize.ColumnNameToNumber(col)
			if err != nil || idx > len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx-1])
		}

		w := Word{
			Category:    cfg.Category,
			German:      cell(cfg.GermanColumn),
			English:     cell(cfg.EnglishColumn),
			Hint:        cell(cfg.HintColumn),
			Example:     cell(cfg.ExampleColumn),
			Conjugation: cell(cfg.ConjugationColumn),
			Opposite:    cell(cfg.OppositeColumn),
			Context:     cell(cfg.ContextColumn),
		}
		if w.German == "" && w.English == "" {
			result.Skipped++
			continue
		}
		if w.German == "" || w.English == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: both German and English are required", rowNum))
			continue
		}
		words = append(words, w)
		result.Imported++
	}
	return words, result
}

// Merge appends incoming words whose German text is not already present in
// existing. It returns the merged list and the number of words added.
func Merge(existing, incoming []Word) ([]Word, int) {
	seen := make(map[string]bool, len(existing))
	out := make([]Word, 0, len(existing)+len(incoming))
	for _, w := range existing {
		seen[w.German] = true
		out = append(out, w)
	}
	added := 0
	for _, w := range incoming {
		if seen[w.German] {
			continue
		}
		seen[w.German] = true
		out = append(out, w)
		added++
	}
	return out, added
}

// WriteCategory writes words as dir/<category>.json, validating the result
// against the vocabulary schema before it replaces the old file.
func WriteCategory(dir string, c Category, words []Word) error {
	raw, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := Validate(raw); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dir, string(c)+".json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
