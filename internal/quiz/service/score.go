package service

import (
	"math"
	"sort"
	"strings"

	catalog "bikematch-service/internal/catalog/model"
	"bikematch-service/internal/quiz/model"
)

// Criteria labels surfaced to the UI for "what this bike missed".
const (
	labelUseCase  = "use case"
	labelTerrain  = "terrain"
	labelRange    = "range"
	labelEquipped = "equipped"
)

// A bike counts as equipped when at least this many of the five equipment
// flags are true. 3-of-5 is the reference policy.
const equippedThreshold = 3

// MaxScore is one point per scored criterion.
const MaxScore = 4

func unsure(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "" || v == "unsure"
}

func splitTags(s string) []string {
	parts := strings.Split(strings.ToLower(s), ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func hasTag(tags []string, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// ceiling resolves the hard budget cutoff from the answers.
func ceiling(a model.Answers) float64 {
	if a.MaxBudget != nil {
		return *a.MaxBudget
	}
	if unsure(a.BudgetBand) {
		return math.Inf(1)
	}
	return BudgetCeiling(a.BudgetBand)
}

// cutoffPrice is the price used for the budget filter: sale else RRP else
// unbounded, so an entry with no price at all can never pass a finite budget.
func cutoffPrice(e catalog.CatalogEntry) float64 {
	if e.PriceSaleGbp != nil {
		return *e.PriceSaleGbp
	}
	if e.PriceRrpGbp != nil {
		return *e.PriceRrpGbp
	}
	return math.Inf(1)
}

// Score rates one entry against the answers. Budget is a hard filter, not a
// criterion: excluded=true means the entry must not appear in results at all.
// The four scored criteria are independent and additive; missed collects the
// labels of stated (non-unsure) criteria the entry failed.
func Score(e catalog.CatalogEntry, a model.Answers) (score int, missed []string, excluded bool) {
	if cutoffPrice(e) > ceiling(a) {
		return 0, nil, true
	}

	missed = make([]string, 0, MaxScore)

	if !unsure(a.UseCase) {
		if hasTag(splitTags(e.UseCases), a.UseCase) {
			score++
		} else {
			missed = append(missed, labelUseCase)
		}
	}
	if !unsure(a.Terrain) {
		if hasTag(splitTags(e.Surfaces), a.Terrain) {
			score++
		} else {
			missed = append(missed, labelTerrain)
		}
	}
	if !unsure(a.Range) {
		if RangeBand(e.BatteryWh) == strings.ToLower(strings.TrimSpace(a.Range)) {
			score++
		} else {
			missed = append(missed, labelRange)
		}
	}
	if !unsure(a.Equipped) {
		want := strings.EqualFold(strings.TrimSpace(a.Equipped), "yes")
		n := 0
		for _, f := range e.EquippedFlags() {
			if isTrue(f) {
				n++
			}
		}
		if (n >= equippedThreshold) == want {
			score++
		} else {
			missed = append(missed, labelEquipped)
		}
	}

	return score, missed, false
}

// Rank scores the whole catalog against one set of answers and returns the
// top matches: budget-excluded entries dropped, entries below minScore
// dropped, the rest sorted by score descending with effective price ascending
// as the tie-break, capped at limit. Pure: inputs are never mutated. An empty
// or nil catalog yields an empty result, never an error.
func Rank(items []catalog.CatalogEntry, a model.Answers, limit, minScore int) []model.ScoredEntry {
	scored := make([]model.ScoredEntry, 0, len(items))
	for _, e := range items {
		s, missed, excluded := Score(e, a)
		if excluded || s < minScore {
			continue
		}
		scored = append(scored, model.ScoredEntry{CatalogEntry: e, Score: s, Missed: missed})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].EffectivePrice() < scored[j].EffectivePrice()
	})

	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
