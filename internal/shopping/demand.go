package shopping

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemandLine is one raw ingredient requirement, as written in a recipe.
type DemandLine struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
	Unit         string
	RecipeID     uuid.UUID // Only for tracing, not used for aggregation
	Day          Day
	Meal         Meal
}

// ExtractDemand flattens all recipe lines of all planned meals.
//
// Slots are visited Monday to Sunday, breakfast to dinner. A recipe that is
// planned n times contributes its lines n times. Slots referencing a recipe
// that is not in the catalog are skipped and reported.
//
// The second return value is the number of slots that resolved to a recipe.
func ExtractDemand(plan WeeklyPlan, recipes RecipeCatalog) ([]DemandLine, int, Diagnostics) {
	var demand []DemandLine
	var diagnostics Diagnostics
	resolved := 0

	for _, d := range Days {
		for _, m := range Meals {
			recipeID := plan.Get(d, m)
			if recipeID == nil {
				continue
			}

			recipe, ok := recipes.Recipe(*recipeID)
			if !ok {
				diagnostics = append(diagnostics, Diagnostic{
					Kind:     KindMissingRecipe,
					RecipeID: ref(*recipeID),
					Day:      d.String(),
					Meal:     m.String(),
					Message:  fmt.Sprintf("the recipe planned for %s %s does not exist", d, m),
				})
				continue
			}
			resolved++

			for _, line := range recipe.Lines {
				demand = append(demand, DemandLine{
					IngredientID: line.IngredientID,
					Quantity:     line.Quantity,
					Unit:         line.Unit,
					RecipeID:     recipe.ID,
					Day:          d,
					Meal:         m,
				})
			}
		}
	}

	return demand, resolved, diagnostics
}
