package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"

	"github.com/mesh-intelligence/libraflow/internal/metrics"
	"github.com/mesh-intelligence/libraflow/pkg/types"
)

// statusResult is the JSON body for add and remove.
type statusResult struct {
	Status string `json:"status"`
	ISBN   string `json:"isbn"`
}

// searchResult is the JSON body for search.
type searchResult struct {
	Found bool        `json:"found"`
	Book  *types.Book `json:"book,omitempty"`
}

func (s *session) jsonOutput() bool {
	return s.cfg.Output == types.OutputJSON
}

func writeJSON(w io.Writer, v any) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printRecent(w io.Writer, entries []types.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No recently added books.")
		return
	}
	fmt.Fprintln(w, "===== Recently Added Books =====")
	for _, e := range entries {
		fmt.Fprintf(w, "- %s by %s (ISBN: %s)\n", e.Title, e.Author, e.ISBN)
	}
}

func printHistory(w io.Writer, entries []types.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No borrowed books.")
		return
	}
	fmt.Fprintln(w, "===== Borrowed Books History =====")
	for _, e := range entries {
		fmt.Fprintf(w, "- %s (ISBN: %s)\n", e.Title, e.ISBN)
	}
}

// printBookTable prints books in a human-readable table format.
func printBookTable(w io.Writer, books []types.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ISBN\tTITLE\tAUTHOR\tCATEGORY")
	fmt.Fprintln(tw, "----\t-----\t------\t--------")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.ISBN, truncate(b.Title, 40), truncate(b.Author, 30), b.Category)
	}
	tw.Flush()

	writeTrimmed(w, sb.String())
	fmt.Fprintf(w, "Total: %d book(s)\n", len(books))
}

func printSamples(w io.Writer, samples []metrics.Sample) {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	for _, s := range samples {
		fmt.Fprintf(tw, "%s\t%g\n", s.Name, s.Value)
	}
	tw.Flush()
	writeTrimmed(w, sb.String())
}

// writeTrimmed prints tabwriter output, trimming trailing whitespace from
// each line.
func writeTrimmed(w io.Writer, out string) {
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
