package v1

import (
	"fmt"

	"github.com/family-meals/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IngredientUnitEditable is one unit an ingredient can be measured in
type IngredientUnitEditable struct {
	Name             string              `json:"name" example:"g" binding:"unitname"`                  // Name of the unit. Compared case insensitively
	IsStandard       bool                `json:"isStandard" example:"false" default:"false"`           // Is this the unit the ingredient is bought and priced in? Exactly one unit must be the standard unit
	ConversionFactor decimal.NullDecimal `json:"conversionFactor" swaggertype:"string" example:"1000"` // How many of this unit make up one standard unit. Must be 1 or null for the standard unit
	StandardPrice    decimal.NullDecimal `json:"standardPrice" swaggertype:"string" example:"1.20"`    // Price for one of this unit
}

func (editable IngredientUnitEditable) model() models.IngredientUnit {
	return models.IngredientUnit{
		Name:             editable.Name,
		IsStandard:       editable.IsStandard,
		ConversionFactor: editable.ConversionFactor,
		StandardPrice:    editable.StandardPrice,
	}
}

// IngredientEditable represents all user configurable parameters
type IngredientEditable struct {
	Name     string                   `json:"name" example:"Farine" default:""`                                // Name of the ingredient, must be unique
	Category string                   `json:"category" example:"Épicerie" default:""`                          // Aisle or shelf, used to group the shopping list
	Note     string                   `json:"note" example:"Type 55 for pastry, type 65 for bread" default:""` // A longer description of the ingredient
	Units    []IngredientUnitEditable `json:"units" binding:"dive"`                                            // The unit table. Replaces all units when updated
}

func (editable IngredientEditable) model() models.Ingredient {
	units := make([]models.IngredientUnit, 0, len(editable.Units))
	for _, u := range editable.Units {
		units = append(units, u.model())
	}

	return models.Ingredient{
		Name:     editable.Name,
		Category: editable.Category,
		Note:     editable.Note,
		Units:    units,
	}
}

func newIngredientEditable(model models.Ingredient) IngredientEditable {
	units := make([]IngredientUnitEditable, 0, len(model.Units))
	for _, u := range model.Units {
		units = append(units, IngredientUnitEditable{
			Name:             u.Name,
			IsStandard:       u.IsStandard,
			ConversionFactor: u.ConversionFactor,
			StandardPrice:    u.StandardPrice,
		})
	}

	return IngredientEditable{
		Name:     model.Name,
		Category: model.Category,
		Note:     model.Note,
		Units:    units,
	}
}

type IngredientLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/ingredients/4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // The ingredient itself
}

// Ingredient is the API representation of an Ingredient.
type Ingredient struct {
	models.DefaultModel
	IngredientEditable
	Links IngredientLinks `json:"links"`
}

func newIngredient(c *gin.Context, model models.Ingredient) Ingredient {
	url := c.GetString(string(models.DBContextURL))

	return Ingredient{
		DefaultModel:       model.DefaultModel,
		IngredientEditable: newIngredientEditable(model),
		Links: IngredientLinks{
			Self: fmt.Sprintf("%s/v1/ingredients/%s", url, model.ID),
		},
	}
}

type IngredientListResponse struct {
	Data       []Ingredient `json:"data"`                                                          // List of ingredients
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type IngredientCreateResponse struct {
	Data  []IngredientResponse `json:"data"`                                                          // List of created ingredients
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IngredientCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	i.Data = append(i.Data, IngredientResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IngredientResponse struct {
	Data  *Ingredient `json:"data"`                                                          // Data for the ingredient
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IngredientQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Category string `form:"category"`                   // By category
	Note     string `form:"note" filterField:"false"`   // By note
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first ingredient returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of ingredients to return. Defaults to 50.
}

func (f IngredientQueryFilter) model() models.Ingredient {
	return models.Ingredient{
		Category: f.Category,
	}
}
