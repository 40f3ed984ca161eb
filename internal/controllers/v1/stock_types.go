package v1

import (
	"fmt"

	"github.com/family-meals/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockItemEditable represents all user configurable parameters
type StockItemEditable struct {
	Quantity decimal.Decimal `json:"quantity" swaggertype:"string" example:"100"` // Quantity on hand. Must not be negative
	Unit     string          `json:"unit" example:"g" binding:"unitname"`         // Unit of the quantity
}

type StockItemLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/families/550dc009-cea6-4c12-b2a5-03446eb7b7cf/stock/4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // The stock item itself
	Ingredient string `json:"ingredient" example:"https://example.com/api/v1/ingredients/4e743e94-6a4b-44d6-aba5-d77c87103ff7"`                                   // The ingredient
}

// StockItem is the API representation of a StockItem.
type StockItem struct {
	models.Timestamps
	FamilyID     uuid.UUID `json:"familyId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`     // ID of the family
	IngredientID uuid.UUID `json:"ingredientId" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // ID of the ingredient
	Name         string    `json:"name" example:"Farine"`                                       // Name of the ingredient
	StockItemEditable
	Links StockItemLinks `json:"links"`
}

func newStockItem(c *gin.Context, model models.StockItem) StockItem {
	url := c.GetString(string(models.DBContextURL))

	return StockItem{
		Timestamps:   model.Timestamps,
		FamilyID:     model.FamilyID,
		IngredientID: model.IngredientID,
		Name:         model.Ingredient.Name,
		StockItemEditable: StockItemEditable{
			Quantity: model.Quantity,
			Unit:     model.Unit,
		},
		Links: StockItemLinks{
			Self:       fmt.Sprintf("%s/v1/families/%s/stock/%s", url, model.FamilyID, model.IngredientID),
			Ingredient: fmt.Sprintf("%s/v1/ingredients/%s", url, model.IngredientID),
		},
	}
}

type StockListResponse struct {
	Data  []StockItem `json:"data"`                                                          // List of stock items
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type StockItemResponse struct {
	Data  *StockItem `json:"data"`                                                          // Data for the stock item
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
