package v1

import (
	"fmt"

	"github.com/family-meals/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// FamilyEditable represents all user configurable parameters
type FamilyEditable struct {
	Name     string `json:"name" example:"Martin" default:""`                         // Name of the family
	Note     string `json:"note" example:"Weekday dinners are vegetarian" default:""` // A longer description of the family
	Locale   string `json:"locale" example:"fr-FR" default:"fr-FR"`                   // BCP 47 language tag. Used to sort shopping lists
	Currency string `json:"currency" example:"€" default:""`                          // The currency symbol for prices. Derived from the locale if not set
}

func (editable FamilyEditable) model() models.Family {
	return models.Family{
		Name:     editable.Name,
		Note:     editable.Note,
		Locale:   editable.Locale,
		Currency: editable.Currency,
	}
}

func newFamilyEditable(model models.Family) FamilyEditable {
	return FamilyEditable{
		Name:     model.Name,
		Note:     model.Note,
		Locale:   model.Locale,
		Currency: model.Currency,
	}
}

type FamilyLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                 // The family itself
	Recipes      string `json:"recipes" example:"https://example.com/api/v1/recipes?family=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                        // Recipes of this family
	Stock        string `json:"stock" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/stock"`                          // Pantry of this family
	Plan         string `json:"plan" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/plans/YYYY-Www"`                  // Meal plan of this family for a week. This is a template, replace YYYY-Www with the ISO week
	ShoppingList string `json:"shoppingList" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/shopping-lists/YYYY-Www"` // Shopping list of this family for a week. This is a template, replace YYYY-Www with the ISO week
}

// Family is the API representation of a Family.
type Family struct {
	models.DefaultModel
	FamilyEditable
	Links FamilyLinks `json:"links"`
}

func newFamily(c *gin.Context, model models.Family) Family {
	url := c.GetString(string(models.DBContextURL))

	return Family{
		DefaultModel:   model.DefaultModel,
		FamilyEditable: newFamilyEditable(model),
		Links: FamilyLinks{
			Self:         fmt.Sprintf("%s/v1/families/%s", url, model.ID),
			Recipes:      fmt.Sprintf("%s/v1/recipes?family=%s", url, model.ID),
			Stock:        fmt.Sprintf("%s/v1/families/%s/stock", url, model.ID),
			Plan:         fmt.Sprintf("%s/v1/families/%s/plans/YYYY-Www", url, model.ID),
			ShoppingList: fmt.Sprintf("%s/v1/families/%s/shopping-lists/YYYY-Www", url, model.ID),
		},
	}
}

type FamilyListResponse struct {
	Data       []Family    `json:"data"`                                                          // List of families
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type FamilyCreateResponse struct {
	Data  []FamilyResponse `json:"data"`                                                          // List of created families
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (f *FamilyCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	f.Data = append(f.Data, FamilyResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type FamilyResponse struct {
	Data  *Family `json:"data"`                                                          // Data for the family
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FamilyQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Locale string `form:"locale"`                     // By locale
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first family returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of families to return. Defaults to 50.
}

func (f FamilyQueryFilter) model() models.Family {
	return models.Family{
		Locale: f.Locale,
	}
}
