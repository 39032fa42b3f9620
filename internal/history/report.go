package history

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	reportMargin = 40.0
	headerSize   = 16
	sectionSize  = 11
	bodySize     = 9
	lineH        = 12.0
)

// Report renders the run log as a one-or-more-page PDF summary: overall
// stats, per-weapon table, and the most recent runs.
func (s *Store) Report(title string) ([]byte, error) {
	summary := s.ProgressionSummary()
	weapons := s.WeaponStats()
	recent := s.RecentRuns(15)

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(reportMargin, reportMargin, reportMargin)
	pdf.SetAutoPageBreak(true, reportMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", headerSize)
	pdf.CellFormat(0, 20, title, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Overall numbers
	pdf.SetFont("Helvetica", "B", sectionSize)
	pdf.CellFormat(0, lineH, "Overview", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", bodySize)
	lines := []string{
		fmt.Sprintf("Runs: %d (%d victories, %d defeats)", summary.TotalRuns, summary.Victories, summary.Defeats),
		fmt.Sprintf("Win rate: %.1f%%", summary.WinRate),
		fmt.Sprintf("Average build score: %.1f", summary.AvgBuildScore),
		fmt.Sprintf("Average heat: %.1f", summary.AvgHeat),
		fmt.Sprintf("Current streak: %+d (best win streak %d, worst loss streak %d)",
			summary.Streaks.Current, summary.Streaks.BestWin, summary.Streaks.WorstLoss),
	}
	if summary.BestRun != nil {
		lines = append(lines, fmt.Sprintf("Best run: #%d with %s, score %d",
			summary.BestRun.RunNumber, summary.BestRun.Weapon, summary.BestRun.BuildScore))
	}
	for _, line := range lines {
		pdf.CellFormat(0, lineH, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Per-weapon table
	if len(weapons) > 0 {
		pdf.SetFont("Helvetica", "B", sectionSize)
		pdf.CellFormat(0, lineH, "Weapons", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", bodySize)
		widths := []float64{150, 60, 60, 80, 80}
		for i, h := range []string{"Weapon", "Runs", "Wins", "Win rate", "Best score"} {
			pdf.CellFormat(widths[i], lineH, h, "B", 0, "L", false, 0, "")
		}
		pdf.Ln(lineH)
		pdf.SetFont("Helvetica", "", bodySize)
		for _, weapon := range sortedKeys(weapons) {
			ws := weapons[weapon]
			cells := []string{
				weapon,
				fmt.Sprintf("%d", ws.Runs),
				fmt.Sprintf("%d", ws.Wins),
				fmt.Sprintf("%.1f%%", ws.WinRate),
				fmt.Sprintf("%d", ws.BestScore),
			}
			for i, c := range cells {
				pdf.CellFormat(widths[i], lineH, c, "", 0, "L", false, 0, "")
			}
			pdf.Ln(lineH)
		}
		pdf.Ln(8)
	}

	// Recent runs
	if len(recent) > 0 {
		pdf.SetFont("Helvetica", "B", sectionSize)
		pdf.CellFormat(0, lineH, "Recent runs", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", bodySize)
		for _, r := range recent {
			outcome := "defeat"
			if r.Victory {
				outcome = "victory"
			}
			gods := strings.Join(r.Gods, ", ")
			if gods == "" {
				gods = "no gods"
			}
			line := fmt.Sprintf("#%d  %s (%s)  score %d  heat %d  %s",
				r.RunNumber, r.Weapon, gods, r.BuildScore, r.HeatLevel, outcome)
			pdf.CellFormat(0, lineH, line, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedKeys(m map[string]WeaponStats) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
