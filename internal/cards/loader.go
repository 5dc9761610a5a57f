package cards

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// parseListCell splits a multi-value CSV cell ("Animal/Kingdom") into its
// entries, dropping blanks and "-" placeholders.
func parseListCell(s string) []string {
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// LoadCardsFromDataDir loads card CSVs from a data directory. cards.csv must
// exist; custom_cards.csv and parallel_cards.csv are optional extensions.
func LoadCardsFromDataDir(dataDir string) ([]Card, error) {
	files := []string{
		filepath.Join(dataDir, "cards.csv"),
		filepath.Join(dataDir, "custom_cards.csv"),
		filepath.Join(dataDir, "parallel_cards.csv"),
	}

	var all []Card
	var found bool
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		found = true
		cs, err := loadSingleCSV(f)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, cs...)
	}
	if !found {
		return nil, fmt.Errorf("no card CSVs found in %s", dataDir)
	}
	return all, nil
}

func loadSingleCSV(path string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Card{}
	for _, row := range rows[1:] {
		c := Card{
			CardID:    get(row, "card_id"),
			Name:      get(row, "name"),
			Color:     get(row, "color"),
			Type:      get(row, "type"),
			Counter:   get(row, "counter"),
			Text:      get(row, "text"),
			Trigger:   get(row, "trigger"),
			BlockIcon: get(row, "block_icon"),
			ImageURL:  get(row, "image_url"),
		}
		if c.CardID == "" {
			continue
		}

		costStr := get(row, "cost")
		if costStr != "" && costStr != "-" {
			v, _ := strconv.Atoi(costStr)
			c.Cost = v
		}

		c.Features = parseListCell(get(row, "features"))
		c.Attributes = parseListCell(get(row, "attributes"))

		switch get(row, "is_parallel") {
		case "True", "true", "1":
			c.IsParallel = true
		}

		series := get(row, "series")
		if series == "" || series == "-" {
			series = "-"
		}
		c.SeriesID = series

		out = append(out, c)
	}
	return out, nil
}
