package v1

import (
	"fmt"

	"github.com/family-meals/backend/internal/models"
	fm_uuid "github.com/family-meals/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeLineEditable is one ingredient line of a recipe
type RecipeLineEditable struct {
	IngredientID uuid.UUID       `json:"ingredientId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // ID of the ingredient
	Quantity     decimal.Decimal `json:"quantity" swaggertype:"string" example:"250"`                 // Quantity in the unit of the line. Must be greater than zero
	Unit         string          `json:"unit" example:"g" binding:"unitname"`                         // Unit of the quantity. Must be in the unit table of the ingredient
}

// RecipeEditable represents all user configurable parameters
type RecipeEditable struct {
	FamilyID uuid.UUID            `json:"familyId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`   // ID of the family the recipe belongs to
	Name     string               `json:"name" example:"Crêpes" default:""`                          // Name of the recipe
	Note     string               `json:"note" example:"Let the batter rest for an hour" default:""` // A longer description of the recipe
	Servings int                  `json:"servings" example:"4" default:"0" binding:"min=0"`          // Number of servings the quantities are meant for. Informational only
	Lines    []RecipeLineEditable `json:"lines" binding:"dive"`                                      // The ingredient lines. Replaces all lines when updated
}

func (editable RecipeEditable) model() models.Recipe {
	lines := make([]models.RecipeLine, 0, len(editable.Lines))
	for _, l := range editable.Lines {
		lines = append(lines, models.RecipeLine{
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
		})
	}

	return models.Recipe{
		FamilyID: editable.FamilyID,
		Name:     editable.Name,
		Note:     editable.Note,
		Servings: editable.Servings,
		Lines:    lines,
	}
}

func newRecipeEditable(model models.Recipe) RecipeEditable {
	lines := make([]RecipeLineEditable, 0, len(model.Lines))
	for _, l := range model.Lines {
		lines = append(lines, RecipeLineEditable{
			IngredientID: l.IngredientID,
			Quantity:     l.Quantity,
			Unit:         l.Unit,
		})
	}

	return RecipeEditable{
		FamilyID: model.FamilyID,
		Name:     model.Name,
		Note:     model.Note,
		Servings: model.Servings,
		Lines:    lines,
	}
}

type RecipeLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/recipes/a9a3f1c4-63c4-4b3a-9a07-6f0a8f6a3f52"`    // The recipe itself
	Family string `json:"family" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The family the recipe belongs to
}

// Recipe is the API representation of a Recipe.
type Recipe struct {
	models.DefaultModel
	RecipeEditable
	Links RecipeLinks `json:"links"`
}

func newRecipe(c *gin.Context, model models.Recipe) Recipe {
	url := c.GetString(string(models.DBContextURL))

	return Recipe{
		DefaultModel:   model.DefaultModel,
		RecipeEditable: newRecipeEditable(model),
		Links: RecipeLinks{
			Self:   fmt.Sprintf("%s/v1/recipes/%s", url, model.ID),
			Family: fmt.Sprintf("%s/v1/families/%s", url, model.FamilyID),
		},
	}
}

type RecipeListResponse struct {
	Data       []Recipe    `json:"data"`                                                          // List of recipes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type RecipeCreateResponse struct {
	Data  []RecipeResponse `json:"data"`                                                          // List of created recipes
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *RecipeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecipeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RecipeResponse struct {
	Data  *Recipe `json:"data"`                                                          // Data for the recipe
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecipeQueryFilter struct {
	FamilyID     fm_uuid.UUID `form:"family"`                         // By ID of the family
	IngredientID fm_uuid.UUID `form:"ingredient" filterField:"false"` // By ID of an ingredient used in the recipe
	Name         string       `form:"name" filterField:"false"`       // By name
	Note         string       `form:"note" filterField:"false"`       // By note
	Search       string       `form:"search" filterField:"false"`     // By string in name or note
	Offset       uint         `form:"offset" filterField:"false"`     // The offset of the first recipe returned. Defaults to 0.
	Limit        int          `form:"limit" filterField:"false"`      // Maximum number of recipes to return. Defaults to 50.
}

func (f RecipeQueryFilter) model() models.Recipe {
	return models.Recipe{
		FamilyID: f.FamilyID.UUID,
	}
}
