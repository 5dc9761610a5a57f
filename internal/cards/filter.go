package cards

import "strings"

type FilterOptions struct {
	Colors       []string `json:"colors"`
	Types        []string `json:"types"`
	Costs        []int    `json:"costs"`
	Attributes   []string `json:"attributes"`
	Features     []string `json:"features"`
	SeriesIDs    []string `json:"series_ids"`
	LeaderColors []string `json:"leader_colors"`
	FreeWords    string   `json:"free_words"`
	ParallelMode string   `json:"parallel_mode"` // "normal", "parallel", "both"
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.Contains(h, n) {
				return true
			}
		}
	}
	return false
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

func oneOfInt(v int, set []int) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Filter returns the cards matching every requested criterion. Empty option
// fields match everything. When LeaderColors is set, leaders themselves are
// excluded: the filter is then selecting cards addable under that leader.
func Filter(all []Card, opt FilterOptions) []Card {
	var out []Card
	for _, c := range all {
		if !matches(c, opt) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matches(c Card, opt FilterOptions) bool {
	if opt.ParallelMode == "normal" && c.IsParallel {
		return false
	}
	if opt.ParallelMode == "parallel" && !c.IsParallel {
		return false
	}
	if len(opt.LeaderColors) > 0 {
		if c.Type == "LEADER" {
			return false
		}
		ok := false
		for _, lc := range opt.LeaderColors {
			if strings.Contains(c.Color, lc) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(opt.Colors) > 0 && !containsAny([]string{c.Color}, opt.Colors) {
		return false
	}
	if len(opt.Types) > 0 && !oneOf(c.Type, opt.Types) {
		return false
	}
	if len(opt.Costs) > 0 && !oneOfInt(c.Cost, opt.Costs) {
		return false
	}
	if len(opt.Attributes) > 0 && !containsAny(c.Attributes, opt.Attributes) {
		return false
	}
	if len(opt.Features) > 0 && !containsAny(c.Features, opt.Features) {
		return false
	}
	if len(opt.SeriesIDs) > 0 && !oneOf(c.SeriesID, opt.SeriesIDs) {
		return false
	}
	if opt.FreeWords != "" {
		for _, k := range strings.Fields(opt.FreeWords) {
			k = strings.ToLower(k)
			if !strings.Contains(strings.ToLower(c.Name), k) &&
				!strings.Contains(strings.ToLower(c.Text), k) &&
				!strings.Contains(strings.ToLower(strings.Join(c.Features, " ")), k) &&
				!strings.Contains(strings.ToLower(c.Trigger), k) {
				return false
			}
		}
	}
	return true
}
