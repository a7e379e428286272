package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"polygen/internal/profile"
)

// rankRow is one line of the ranking table.
type rankRow struct {
	Rank     int
	Language string
	Score    float64
}

// rankProfiles scores every registered profile against the query, sorted
// descending. The sort is stable so ties keep registration order, matching
// FindBest's tie-break.
func rankProfiles(registry *profile.Registry, q profile.Query) []rankRow {
	names := registry.Names()
	rows := make([]rankRow, 0, len(names))
	for _, name := range names {
		p, ok := registry.Get(name)
		if !ok {
			continue
		}
		rows = append(rows, rankRow{Language: name, Score: p.Score(q)})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Score > rows[b].Score
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// renderRanking writes the ranking table.
func renderRanking(w io.Writer, rows []rankRow) {
	langWidth := len("LANGUAGE")
	for _, row := range rows {
		if rw := runewidth.StringWidth(row.Language); rw > langWidth {
			langWidth = rw
		}
	}

	fmt.Fprintf(w, "  %s  %s  %s\n", padRight("RANK", 4), padRight("LANGUAGE", langWidth), "SCORE") //nolint:errcheck
	for _, row := range rows {
		fmt.Fprintf(w, "  %s  %s  %.2f\n", padRight(fmt.Sprintf("%d", row.Rank), 4), padRight(row.Language, langWidth), row.Score) //nolint:errcheck
	}
}

// renderProfiles writes the characteristics table for every profile.
func renderProfiles(w io.Writer, registry *profile.Registry) {
	dims := profile.Dimensions()

	langWidth := len("LANGUAGE")
	for _, name := range registry.Names() {
		if rw := runewidth.StringWidth(name); rw > langWidth {
			langWidth = rw
		}
	}

	header := []string{padRight("LANGUAGE", langWidth)}
	for _, d := range dims {
		header = append(header, padRight(string(d), len(string(d))))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(header, "  ")) //nolint:errcheck

	for _, name := range registry.Names() {
		p, ok := registry.Get(name)
		if !ok {
			continue
		}
		cells := []string{padRight(name, langWidth)}
		for _, d := range dims {
			cells = append(cells, padRight(fmt.Sprintf("%.0f", p.Characteristics[d]), len(string(d))))
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(cells, "  ")) //nolint:errcheck

		if len(p.UseCases) > 0 {
			var useCases []string
			for _, uc := range p.UseCases {
				useCases = append(useCases, fmt.Sprintf("%s=%.0f", uc.Name, uc.Score))
			}
			fmt.Fprintf(w, "  %s  use cases: %s\n", padRight("", langWidth), strings.Join(useCases, ", ")) //nolint:errcheck
		}
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
