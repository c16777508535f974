package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wortschatz/wortschatz/internal/vocab"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import words from an .xlsx or .csv file into a category",
	Long: `Reads German/English pairs from a spreadsheet and merges them into the
category's list in the vocabulary directory. Words already present (by German
text) are kept unchanged. Default columns: A German, B English, C hint,
D example, E conjugation, F opposite, G context, with one header row.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("category")
		cat, err := vocab.ParseCategory(name)
		if err != nil {
			return err
		}
		if cat == vocab.All {
			return fmt.Errorf("pick a single category, not %q", name)
		}

		ic := vocab.DefaultImportConfig()
		ic.FilePath = args[0]
		ic.Category = cat
		ic.SheetName, _ = cmd.Flags().GetString("sheet")
		if row, _ := cmd.Flags().GetInt("start-row"); row > 0 {
			ic.StartRow = row
		}

		incoming, res, err := vocab.ReadSpreadsheet(ic)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir, err := vocabDir(cfg)
		if err != nil {
			return err
		}

		// Start from the list the trainer would load today, so importing
		// into a built-in category extends it instead of replacing it.
		if _, err := vocab.NewFSSource(os.DirFS(dir)).Category(cat); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: replacing unreadable %s list: %v\n", cat, err)
		}
		existing, _ := vocabSource(dir, nil).Category(cat)
		merged, added := vocab.Merge(existing, incoming)
		if err := vocab.WriteCategory(dir, cat, merged); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Rows read: %d, valid: %d, skipped: %d\n", res.TotalProcessed, res.Imported, res.Skipped)
		for _, e := range res.Errors {
			fmt.Fprintln(out, "  ", e)
		}
		fmt.Fprintf(out, "Added %d new words to %s (%d total) in %s\n", added, cat.Label(), len(merged), dir)
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("category", "c", "", "Target category, by name or menu number")
	importCmd.Flags().String("sheet", "", "Worksheet name (xlsx only; default first sheet)")
	importCmd.Flags().Int("start-row", 0, "First data row, 1-based (default 2)")
	importCmd.MarkFlagRequired("category")
}
