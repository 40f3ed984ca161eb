// Package shopping generates shopping lists from weekly meal plans.
//
// The pipeline is a pure computation over already fetched inputs:
//
//	plan → ExtractDemand → Aggregate → Net → Price → Assemble
//
// Problems with single lines (unknown units, missing recipes, missing
// prices, ...) never abort a run. They are collected as Diagnostics and
// returned with the list.
package shopping

import (
	"errors"
	"fmt"
	"time"

	"github.com/family-meals/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
)

// ErrNoEligibleInput is returned when a plan cannot produce a list at all.
//
// A list that is empty because everything is in stock is not an error.
var ErrNoEligibleInput = errors.New("the plan does not contain anything to shop for")

var (
	ErrNoPlannedMeals         = fmt.Errorf("%w: no meals are planned for this week", ErrNoEligibleInput)
	ErrNoResolvableRecipes    = fmt.Errorf("%w: none of the planned recipes exist", ErrNoEligibleInput)
	ErrNoValidIngredientLines = fmt.Errorf("%w: none of the planned recipes has a usable ingredient line", ErrNoEligibleInput)
)

// Input contains everything needed for one generation run.
type Input struct {
	FamilyID    uuid.UUID
	Week        types.Week
	Plan        WeeklyPlan
	Recipes     RecipeCatalog
	Ingredients IngredientCatalog
	Stock       Stock
	Locale      language.Tag // Collation for sorting, defaults to DefaultLocale
	Now         time.Time    // Creation time of the list, defaults to the current time
}

// Result is a generated list together with all diagnostics of the run.
type Result struct {
	List        ShoppingList
	Diagnostics Diagnostics
}

// Generate runs the full pipeline.
//
// On ErrNoEligibleInput, the diagnostics collected so far are still returned.
func Generate(in Input) (Result, error) {
	var result Result

	if in.Plan.PlannedMeals() == 0 {
		return result, ErrNoPlannedMeals
	}

	demand, resolved, diagnostics := ExtractDemand(in.Plan, in.Recipes)
	result.Diagnostics = append(result.Diagnostics, diagnostics...)
	if resolved == 0 {
		return result, ErrNoResolvableRecipes
	}

	aggregated, diagnostics := Aggregate(demand, in.Ingredients)
	result.Diagnostics = append(result.Diagnostics, diagnostics...)
	if len(aggregated) == 0 {
		return result, ErrNoValidIngredientLines
	}

	// Map iteration order is random, sort for reproducible diagnostics
	ids := maps.Keys(aggregated)
	lines := make([]Line, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, aggregated[id])
	}
	SortLines(lines, in.Locale)

	for i, line := range lines {
		var entry *StockEntry
		if e, ok := in.Stock[line.IngredientID]; ok {
			entry = &e
		}

		netted, diagnostic := Net(line, entry, in.Ingredients)
		if diagnostic != nil {
			result.Diagnostics = append(result.Diagnostics, *diagnostic)
		}

		priced, diagnostic := Price(netted, in.Ingredients)
		if diagnostic != nil {
			result.Diagnostics = append(result.Diagnostics, *diagnostic)
		}

		lines[i] = priced
	}

	list := Assemble(lines, in.Locale)
	list.FamilyID = in.FamilyID
	list.Week = in.Week
	list.CreatedAt = in.Now
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now().UTC()
	}

	result.List = list
	return result, nil
}
