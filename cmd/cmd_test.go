package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wortschatz/wortschatz/internal/vocab"
)

// sandbox points config, data and state at a temp dir and returns the
// flags that pin every path.
func sandbox(t *testing.T) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)
	require.NoError(t, resetCmd.Flags().Set("yes", "false"))

	return dir, []string{
		"--db", filepath.Join(dir, "w.db"),
		"--progress", filepath.Join(dir, "progress.json"),
		"--data", filepath.Join(dir, "vocab"),
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wortschatz (devel)")
}

func TestImport(t *testing.T) {
	dir, flags := sandbox(t)
	csv := filepath.Join(dir, "colors.csv")
	require.NoError(t, os.WriteFile(csv, []byte("de,en,hint\nrot,red,\nmagenta,magenta,like the ink\n,missing,\n"), 0o644))

	out, err := execute(t, append([]string{"import", csv, "--category", "colors"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 1 new words to Colors")

	raw, err := os.ReadFile(filepath.Join(dir, "vocab", "colors.json"))
	require.NoError(t, err)
	var words []vocab.Word
	require.NoError(t, json.Unmarshal(raw, &words))

	assert.Equal(t, "rot", words[0].German, "built-in words come first")
	last := words[len(words)-1]
	assert.Equal(t, "magenta", last.German)
	assert.Equal(t, "like the ink", last.Hint)
}

func TestImport_RejectsAll(t *testing.T) {
	dir, flags := sandbox(t)
	csv := filepath.Join(dir, "x.csv")
	require.NoError(t, os.WriteFile(csv, []byte("de,en\nrot,red\n"), 0o644))

	_, err := execute(t, append([]string{"import", csv, "--category", "all"}, flags...)...)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	dir, flags := sandbox(t)
	path := filepath.Join(dir, "progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"xp":90,"streak":2,"words":{}}`), 0o644))

	out, err := execute(t, append([]string{"reset"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "--yes")
	raw, _ := os.ReadFile(path)
	assert.Contains(t, string(raw), `"xp":90`, "nothing changes without --yes")

	_, err = execute(t, append([]string{"reset", "--yes"}, flags...)...)
	require.NoError(t, err)
	raw, err = os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		XP     int `json:"xp"`
		Streak int `json:"streak"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Zero(t, doc.XP)
	assert.Zero(t, doc.Streak)
}

func TestStats(t *testing.T) {
	dir, flags := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "progress.json"),
		[]byte(`{"xp":120,"streak":3,"best_speed":7,"words":{"colors:rot":{"mastery":4,"correct":4,"wrong":1}}}`), 0o644))

	out, err := execute(t, append([]string{"stats"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "120 XP")
	assert.Contains(t, out, "1 words learned")
	assert.Contains(t, out, "Colors")
	assert.Contains(t, out, "No sessions recorded yet.")
}

func TestDrill_EndOfInput(t *testing.T) {
	_, flags := sandbox(t)

	out, err := execute(t, append([]string{"drill"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Tschüss! Bis bald!")
}

func TestLLMList_Empty(t *testing.T) {
	_, flags := sandbox(t)

	out, err := execute(t, append([]string{"llm", "list"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "No coach requests recorded.")
}
