package model

import catalog "bikematch-service/internal/catalog/model"

// Answers is one shopper's quiz input. Empty or "unsure" means no preference
// for that criterion. MaxBudget, when set, wins over BudgetBand.
type Answers struct {
	UseCase  string `json:"use_case,omitempty"`
	Terrain  string `json:"terrain,omitempty"`
	Range    string `json:"range,omitempty"`    // short | medium | long
	Equipped string `json:"equipped,omitempty"` // yes | no

	BudgetBand string   `json:"budget_band,omitempty"`
	MaxBudget  *float64 `json:"max_budget,omitempty"`
}

// ScoredEntry is a catalog entry ranked against one set of answers.
// Missed lists the human-readable labels of stated criteria the entry failed;
// budget never appears there since over-budget entries are excluded outright.
type ScoredEntry struct {
	catalog.CatalogEntry
	Score  int      `json:"score"`
	Missed []string `json:"missed"`
}
