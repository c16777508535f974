package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadSpreadsheetXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farben.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"de", "en", "hint"},
		{"rot", "red", "like a rose"},
		{"", "", ""},
		{"blau", "", ""},
		{"grün", "green", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	cfg := DefaultImportConfig()
	cfg.FilePath = path
	cfg.Category = "colors"

	words, res, err := ReadSpreadsheet(cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, res.TotalProcessed)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, res.Errors, 1)

	require.Len(t, words, 2)
	assert.Equal(t, "rot", words[0].German)
	assert.Equal(t, "like a rose", words[0].Hint)
	assert.Equal(t, Category("colors"), words[1].Category)
}

func TestReadSpreadsheetCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zahlen.csv")
	data := "de,en\neins,one\n\"zwei\",two\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := DefaultImportConfig()
	cfg.FilePath = path
	cfg.Category = "numbers"

	words, res, err := ReadSpreadsheet(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	require.Len(t, words, 2)
	assert.Equal(t, "zwei", words[1].German)
}

func TestReadSpreadsheetRejectsUnknownCategory(t *testing.T) {
	cfg := DefaultImportConfig()
	cfg.FilePath = "words.csv"
	cfg.Category = "animals"
	_, _, err := ReadSpreadsheet(cfg)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestMergeSkipsKnownWords(t *testing.T) {
	existing := []Word{{German: "rot", English: "red"}}
	incoming := []Word{{German: "rot", English: "red!"}, {German: "gelb", English: "yellow"}}

	merged, added := Merge(existing, incoming)
	assert.Equal(t, 1, added)
	require.Len(t, merged, 2)
	assert.Equal(t, "red", merged[0].English)
}

func TestWriteCategoryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	words := []Word{{German: "Straße", English: "street", Hint: "ß"}}
	require.NoError(t, WriteCategory(dir, "nouns", words))

	got, err := NewFSSource(os.DirFS(dir)).Category("nouns")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Straße", got[0].German)
	assert.Equal(t, Category("nouns"), got[0].Category)
}
