package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/glot-go/internal/domain"
)

// RenderSnippetList prints snippet summaries in a plain, ASCII-only
// table.
func RenderSnippetList(out io.Writer, snippets []domain.Snippet) {
	if len(snippets) == 0 {
		fmt.Fprintln(out, "No snippets.")
		return
	}
	fmt.Fprintf(out, "%-24s %-12s %-14s %s\n", "ID", "LANGUAGE", "MODIFIED", "TITLE")
	for _, snippet := range snippets {
		fmt.Fprintf(out, "%-24s %-12s %-14s %s\n",
			snippet.ID, snippet.Language, age(snippet.Modified), snippet.Title)
	}
}

// RenderHistory prints run records, newest first.
func RenderHistory(out io.Writer, records []domain.RunRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return
	}
	fmt.Fprintf(out, "%-14s %-12s %-10s %-12s %-8s %s\n",
		"WHEN", "LANGUAGE", "VERSION", "FILE", "STATUS", "TOOK")
	for _, rec := range records {
		status := "ok"
		if rec.Failed {
			status = "failed"
		}
		fmt.Fprintf(out, "%-14s %-12s %-10s %-12s %-8s %dms\n",
			age(rec.Timestamp), rec.Language, rec.Version, rec.Filename, status, rec.DurationMS)
	}
}

// RenderHealthReport prints doctor checks.
func RenderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%-4s] %-14s %s\n", check.Status, check.Name, check.Details)
	}
	if report.Healthy() {
		fmt.Fprintln(out, "All checks passed.")
	} else {
		fmt.Fprintln(out, "Some checks failed.")
	}
}

func age(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}
