package v1

import (
	"fmt"

	"github.com/family-meals/backend/internal/models"
	"github.com/family-meals/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WeeklyPlanEditable represents all user configurable parameters
type WeeklyPlanEditable struct {
	Slots map[string]map[string]*uuid.UUID `json:"slots" binding:"required"` // Recipe IDs by day and meal, e.g. {"monday": {"dinner": "a9a3f1c4-63c4-4b3a-9a07-6f0a8f6a3f52"}}. Missing and null slots are unplanned
}

type WeeklyPlanLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/plans/2024-W05"`                  // The plan itself
	Family       string `json:"family" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                               // The family the plan belongs to
	ShoppingList string `json:"shoppingList" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/shopping-lists/2024-W05"` // The shopping list generated from this plan
}

// WeeklyPlan is the API representation of a WeeklyPlan.
type WeeklyPlan struct {
	models.DefaultModel
	FamilyID     uuid.UUID                        `json:"familyId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // ID of the family
	Week         types.Week                       `json:"week" swaggertype:"string" example:"2024-W05"`            // The ISO 8601 week
	PlannedMeals int                              `json:"plannedMeals" example:"9"`                                // Number of slots with a recipe
	Slots        map[string]map[string]*uuid.UUID `json:"slots"`                                                   // Recipe IDs for all seven days and three meals, null for unplanned meals
	Links        WeeklyPlanLinks                  `json:"links"`
}

func newWeeklyPlan(c *gin.Context, model models.WeeklyPlan) WeeklyPlan {
	url := c.GetString(string(models.DBContextURL))
	grid := model.Engine()

	return WeeklyPlan{
		DefaultModel: model.DefaultModel,
		FamilyID:     model.FamilyID,
		Week:         model.Week,
		PlannedMeals: grid.PlannedMeals(),
		Slots:        grid.Grid(),
		Links: WeeklyPlanLinks{
			Self:         fmt.Sprintf("%s/v1/families/%s/plans/%s", url, model.FamilyID, model.Week),
			Family:       fmt.Sprintf("%s/v1/families/%s", url, model.FamilyID),
			ShoppingList: fmt.Sprintf("%s/v1/families/%s/shopping-lists/%s", url, model.FamilyID, model.Week),
		},
	}
}

type WeeklyPlanResponse struct {
	Data  *WeeklyPlan `json:"data"`                                                           // Data for the plan
	Error *string     `json:"error" example:"there is no meal plan for this family and week"` // The error, if any occurred
}
