package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

var (
	localizeWrite  bool
	localizeOutput string
	localizeJSON   bool
)

var localizeCmd = &cobra.Command{
	Use:   "localize [file ...]",
	Short: "Rewrite timestamp elements in HTML files",
	Long: `Runs the localisation pass over the given HTML files.

Without flags the rewritten documents are printed to stdout. Use --write
to rewrite files in place, or --output to write a single input to a path.
With no arguments, HTML is read from stdin when it is piped.

Use --json to print a machine-readable summary of the localised stamps
instead of the rewritten documents.`,
	RunE: runLocalize,
}

func init() {
	localizeCmd.Flags().BoolVarP(&localizeWrite, "write", "w", false, "rewrite files in place")
	localizeCmd.Flags().StringVarP(&localizeOutput, "output", "o", "", "write the result to this path (single input only)")
	localizeCmd.Flags().BoolVar(&localizeJSON, "json", false, "print a summary as JSON instead of the document")
	rootCmd.AddCommand(localizeCmd)
}

// passSummary is the JSON shape of one localisation pass.
type passSummary struct {
	File    string         `json:"file,omitempty"`
	PassID  string         `json:"pass_id"`
	Count   int            `json:"count"`
	Invalid int            `json:"invalid"`
	Stamps  []stampSummary `json:"stamps"`
}

// stampSummary is the JSON shape of one localised stamp.
type stampSummary struct {
	Datetime string `json:"datetime"`
	Format   string `json:"format,omitempty"`
	Text     string `json:"text"`
	Valid    bool   `json:"valid"`
}

func runLocalize(cmd *cobra.Command, args []string) error {
	if localizeOutput != "" && len(args) != 1 {
		return errors.New("--output requires exactly one input file")
	}
	if localizeWrite && len(args) == 0 {
		return errors.New("--write requires input files")
	}

	if len(args) == 0 {
		return localizeStdin(cmd)
	}

	for _, path := range args {
		if err := localizeFile(cmd, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// localizeStdin processes piped HTML and prints the result.
func localizeStdin(cmd *cobra.Command) error {
	if stdinIsTerminal() {
		return errors.New("no input: pass files or pipe HTML on stdin")
	}

	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	result, err := localizerService.Localize(cmd.Context(), src)
	if err != nil {
		return err
	}

	return emitResult(cmd, "", result)
}

// localizeFile processes one file per the output flags.
func localizeFile(cmd *cobra.Command, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	result, err := localizerService.Localize(cmd.Context(), src)
	if err != nil {
		return err
	}

	switch {
	case localizeWrite:
		if err := os.WriteFile(path, result.Output, 0644); err != nil {
			return fmt.Errorf("writing file: %w", err)
		}
	case localizeOutput != "":
		if err := os.WriteFile(localizeOutput, result.Output, 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return emitResult(cmd, path, result)
}

// emitResult prints the rewritten document, or the JSON summary when
// --json is set. Documents already written to files are not repeated
// on stdout.
func emitResult(cmd *cobra.Command, path string, result *domain.PassResult) error {
	if localizeJSON {
		return outputSummaryJSON(cmd, path, result)
	}
	if localizeWrite || localizeOutput != "" {
		cmd.Printf("%s: localised %d stamp(s)\n", path, result.Count())
		return nil
	}
	cmd.Print(string(result.Output))
	return nil
}

func outputSummaryJSON(cmd *cobra.Command, path string, result *domain.PassResult) error {
	summary := passSummary{
		File:    path,
		PassID:  result.ID,
		Count:   result.Count(),
		Invalid: result.InvalidCount(),
		Stamps:  make([]stampSummary, 0, len(result.Stamps)),
	}
	for _, s := range result.Stamps {
		summary.Stamps = append(summary.Stamps, stampSummary{
			Datetime: s.Stamp.Datetime,
			Format:   s.Stamp.Format,
			Text:     s.Text,
			Valid:    s.Valid,
		})
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal
// rather than a pipe.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
