package v1

import (
	"fmt"

	"github.com/family-meals/backend/internal/models"
	"github.com/family-meals/backend/internal/shopping"
	"github.com/family-meals/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingListGenerate contains the options for generating a shopping list
type ShoppingListGenerate struct {
	PreserveChecked bool `json:"preserveChecked" example:"true" default:"false"` // Keep items checked that were checked on the previous list for the week
}

// ShoppingListItemEditable represents all user configurable parameters of a shopping list item
type ShoppingListItemEditable struct {
	IsChecked *bool `json:"isChecked" example:"true" binding:"required"` // Is the item in the cart?
}

type ShoppingListItemLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/shopping-lists/2024-W05/items/4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // The item itself
	Ingredient string `json:"ingredient" example:"https://example.com/api/v1/ingredients/4e743e94-6a4b-44d6-aba5-d77c87103ff7"`                                                           // The ingredient
}

// ShoppingListItem is one ingredient to buy
type ShoppingListItem struct {
	IngredientID    uuid.UUID             `json:"ingredientId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // ID of the ingredient
	Name            string                `json:"name" example:"Farine"`                                       // Name of the ingredient
	Category        string                `json:"category" example:"Épicerie"`                                 // Category of the ingredient
	GrossQuantity   decimal.Decimal       `json:"grossQuantity" swaggertype:"string" example:"0.5"`            // Quantity needed for all planned meals, in the standard unit
	StockQuantity   decimal.Decimal       `json:"stockQuantity" swaggertype:"string" example:"0.1"`            // Quantity on hand, in the standard unit
	NetQuantity     decimal.Decimal       `json:"netQuantity" swaggertype:"string" example:"0.4"`              // Quantity to buy, in the standard unit
	Unit            string                `json:"unit" example:"kg"`                                           // The standard unit of the ingredient
	PricePerUnit    decimal.NullDecimal   `json:"pricePerUnit" swaggertype:"string" example:"1.2"`             // Price of one standard unit. Null if no price is known
	TheoreticalCost decimal.Decimal       `json:"theoreticalCost" swaggertype:"string" example:"0.6"`          // Cost of the gross quantity
	ActualCost      decimal.Decimal       `json:"actualCost" swaggertype:"string" example:"0.48"`              // Cost of the net quantity
	NeedsPriceInput bool                  `json:"needsPriceInput" example:"false"`                             // No price is known for the ingredient
	IsChecked       bool                  `json:"isChecked" example:"false"`                                   // Is the item in the cart?
	Recipes         []uuid.UUID           `json:"recipes"`                                                     // IDs of the recipes that need the ingredient
	Links           ShoppingListItemLinks `json:"links"`
}

func newShoppingListItem(c *gin.Context, list models.ShoppingList, model models.ShoppingListItem) ShoppingListItem {
	url := c.GetString(string(models.DBContextURL))

	recipes := model.Recipes
	if recipes == nil {
		recipes = []uuid.UUID{}
	}

	return ShoppingListItem{
		IngredientID:    model.IngredientID,
		Name:            model.Name,
		Category:        model.Category,
		GrossQuantity:   model.GrossQuantity,
		StockQuantity:   model.StockQuantity,
		NetQuantity:     model.NetQuantity,
		Unit:            model.Unit,
		PricePerUnit:    model.PricePerUnit,
		TheoreticalCost: model.TheoreticalCost,
		ActualCost:      model.ActualCost,
		NeedsPriceInput: model.NeedsPriceInput,
		IsChecked:       model.IsChecked,
		Recipes:         recipes,
		Links: ShoppingListItemLinks{
			Self:       fmt.Sprintf("%s/v1/families/%s/shopping-lists/%s/items/%s", url, list.FamilyID, list.Week, model.IngredientID),
			Ingredient: fmt.Sprintf("%s/v1/ingredients/%s", url, model.IngredientID),
		},
	}
}

type ShoppingListLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/shopping-lists/2024-W05"` // The shopping list itself
	Family string `json:"family" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                       // The family the list belongs to
	Plan   string `json:"plan" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/plans/2024-W05"`          // The plan the list was generated from
}

// ShoppingList is the API representation of a generated ShoppingList.
type ShoppingList struct {
	models.DefaultModel
	FamilyID             uuid.UUID            `json:"familyId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`  // ID of the family
	Week                 types.Week           `json:"week" swaggertype:"string" example:"2024-W05"`             // The ISO 8601 week
	Status               models.ListStatus    `json:"status" example:"partial"`                                 // complete, partial or empty
	Currency             string               `json:"currency" example:"€"`                                     // Currency symbol of the family
	TotalTheoreticalCost decimal.Decimal      `json:"totalTheoreticalCost" swaggertype:"string" example:"12.4"` // Sum of the theoretical cost of all items
	TotalActualCost      decimal.Decimal      `json:"totalActualCost" swaggertype:"string" example:"9.85"`      // Sum of the actual cost of all items
	Warnings             int                  `json:"warnings" example:"2"`                                     // Number of diagnostics
	Diagnostics          shopping.Diagnostics `json:"diagnostics"`                                              // Problems found while generating the list
	Items                []ShoppingListItem   `json:"items"`                                                    // Items sorted by category and name
	Links                ShoppingListLinks    `json:"links"`
}

func newShoppingList(c *gin.Context, family models.Family, model models.ShoppingList) ShoppingList {
	url := c.GetString(string(models.DBContextURL))

	diagnostics := model.Diagnostics
	if diagnostics == nil {
		diagnostics = shopping.Diagnostics{}
	}

	items := make([]ShoppingListItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, newShoppingListItem(c, model, item))
	}

	return ShoppingList{
		DefaultModel:         model.DefaultModel,
		FamilyID:             model.FamilyID,
		Week:                 model.Week,
		Status:               model.Status,
		Currency:             family.Currency,
		TotalTheoreticalCost: model.TotalTheoreticalCost,
		TotalActualCost:      model.TotalActualCost,
		Warnings:             model.Warnings,
		Diagnostics:          diagnostics,
		Items:                items,
		Links: ShoppingListLinks{
			Self:   fmt.Sprintf("%s/v1/families/%s/shopping-lists/%s", url, model.FamilyID, model.Week),
			Family: fmt.Sprintf("%s/v1/families/%s", url, model.FamilyID),
			Plan:   fmt.Sprintf("%s/v1/families/%s/plans/%s", url, model.FamilyID, model.Week),
		},
	}
}

type ShoppingListResponse struct {
	Data        *ShoppingList        `json:"data"`                                                           // Data for the shopping list
	Error       *string              `json:"error" example:"the plan does not contain anything to shop for"` // The error, if any occurred
	Diagnostics shopping.Diagnostics `json:"diagnostics,omitempty"`                                          // Why no list could be generated
}

type ShoppingListItemResponse struct {
	Data  *ShoppingListItem `json:"data"`                                                          // Data for the item
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ShoppingListQueryFilter struct {
	Category string `form:"category"` // Glob pattern for the category of the items, e.g. "Fruits*"
}
