// Package sheet imports tasks from a public Google Sheet's CSV export.
package sheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"focusarena/internal/game"
)

var sheetIDRe = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ExtractSheetID pulls the spreadsheet id out of a Google Sheets URL.
func ExtractSheetID(url string) (string, error) {
	m := sheetIDRe.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("not a Google Sheets URL: %q", url)
	}
	return m[1], nil
}

// Importer fetches and parses sheet rows into tasks.
type Importer struct {
	client *http.Client
}

func NewImporter() *Importer {
	return &Importer{client: &http.Client{Timeout: 30 * time.Second}}
}

// Fetch downloads the CSV export of a sheet. The sheet must be shared
// publicly with read access; there is no OAuth flow.
func (im *Importer) Fetch(ctx context.Context, sheetID string) ([][]string, error) {
	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", sheetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := im.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet not accessible (HTTP %d): is it shared publicly?", resp.StatusCode)
	}
	return ReadRows(resp.Body)
}

// ReadRows parses CSV content, skipping the header row.
func ReadRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// ParseTasks converts rows (title, description, date, priority) into tasks of
// the chosen category. Rows without a title are skipped. Ids are left at zero
// for the reducer's allocator.
func ParseTasks(rows [][]string, cat game.Category, today game.Date) []game.Task {
	var out []game.Task
	for _, row := range rows {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		date := today
		if len(row) > 2 {
			if d, ok := parseRowDate(row[2]); ok {
				date = d
			}
		}

		priority := ""
		if len(row) > 3 {
			priority = row[3]
		}
		xp, value := rewardsForPriority(priority)

		out = append(out, game.Task{
			Title: strings.TrimSpace(row[0]),
			Date:  date,
			Cat:   cat,
			XP:    xp,
			Value: value,
		})
	}
	return out
}

// parseRowDate accepts ISO dates and the DD/MM/YYYY form sheets often hold.
func parseRowDate(s string) (game.Date, bool) {
	s = strings.TrimSpace(s)
	if d, err := game.ParseDate(s); err == nil {
		return d, true
	}
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return game.NewDate(t), true
	}
	return "", false
}

// rewardsForPriority maps a free-form priority cell to xp/value.
func rewardsForPriority(priority string) (xp, value int) {
	p := strings.ToLower(priority)
	switch {
	case strings.Contains(p, "high"), strings.Contains(p, "urgent"):
		return 50, 100
	case strings.Contains(p, "low"), strings.Contains(p, "basse"):
		return 15, 25
	default:
		return 30, 50
	}
}
