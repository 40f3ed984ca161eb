package v1

import (
	"net/http"

	"github.com/family-meals/backend/internal/httputil"
	"github.com/family-meals/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
)

// RegisterStockRoutes registers the routes for the pantry of a family
// with the RouterGroup that is passed.
func RegisterStockRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsStockList)
		r.GET("", GetStock)
	}

	// Stock of one ingredient
	{
		r.OPTIONS("/:ingredientId", OptionsStockItem)
		r.GET("/:ingredientId", GetStockItem)
		r.PUT("/:ingredientId", SetStockItem)
		r.DELETE("/:ingredientId", DeleteStockItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stock
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/stock [options]
func OptionsStockList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stock
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ingredientId	path		string	true	"ID of the ingredient"
// @Router			/v1/families/{id}/stock/{ingredientId} [options]
func OptionsStockItem(c *gin.Context) {
	var uri URIStockItem
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Family{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get stock
// @Description	Returns everything the family has on hand, sorted by ingredient name
// @Tags			Stock
// @Produce		json
// @Success		200	{object}	StockListResponse
// @Failure		400	{object}	StockListResponse
// @Failure		404	{object}	StockListResponse
// @Failure		500	{object}	StockListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/stock [get]
func GetStock(c *gin.Context) {
	family, err := findFamily(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockListResponse{
			Error: &s,
		})
		return
	}

	var items []models.StockItem
	err = models.DB.Preload("Ingredient").Where(&models.StockItem{FamilyID: family.ID}).Find(&items).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockListResponse{
			Error: &s,
		})
		return
	}

	data := make([]StockItem, 0, len(items))
	for _, item := range items {
		data = append(data, newStockItem(c, item))
	}

	// Sort by name the way the family's language does
	col := collate.New(family.Language(), collate.IgnoreCase)
	sortStock(col, data)

	c.JSON(http.StatusOK, StockListResponse{Data: data})
}

// @Summary		Get stock item
// @Description	Returns the stock of one ingredient
// @Tags			Stock
// @Produce		json
// @Success		200				{object}	StockItemResponse
// @Failure		400				{object}	StockItemResponse
// @Failure		404				{object}	StockItemResponse
// @Failure		500				{object}	StockItemResponse
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ingredientId	path		string	true	"ID of the ingredient"
// @Router			/v1/families/{id}/stock/{ingredientId} [get]
func GetStockItem(c *gin.Context) {
	var uri URIStockItem
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	item, err := findStockItem(uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	data := newStockItem(c, item)
	c.JSON(http.StatusOK, StockItemResponse{Data: &data})
}

// @Summary		Set stock item
// @Description	Sets the quantity of an ingredient the family has on hand
// @Tags			Stock
// @Accept			json
// @Produce		json
// @Success		200				{object}	StockItemResponse
// @Failure		400				{object}	StockItemResponse
// @Failure		404				{object}	StockItemResponse
// @Failure		500				{object}	StockItemResponse
// @Param			id				path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ingredientId	path		string				true	"ID of the ingredient"
// @Param			stock			body		StockItemEditable	true	"Stock"
// @Router			/v1/families/{id}/stock/{ingredientId} [put]
func SetStockItem(c *gin.Context) {
	var uri URIStockItem
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Family{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Ingredient{}, uri.IngredientID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	var data StockItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	err = models.SetStock(models.DB, &models.StockItem{
		FamilyID:     uri.ID.UUID,
		IngredientID: uri.IngredientID.UUID,
		Quantity:     data.Quantity,
		Unit:         data.Unit,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	item, err := findStockItem(uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StockItemResponse{
			Error: &s,
		})
		return
	}

	r := newStockItem(c, item)
	c.JSON(http.StatusOK, StockItemResponse{Data: &r})
}

// @Summary		Delete stock item
// @Description	Removes an ingredient from the pantry of the family
// @Tags			Stock
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ingredientId	path		string	true	"ID of the ingredient"
// @Router			/v1/families/{id}/stock/{ingredientId} [delete]
func DeleteStockItem(c *gin.Context) {
	var uri URIStockItem
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	item, err := findStockItem(uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&item).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func findStockItem(uri URIStockItem) (models.StockItem, error) {
	var item models.StockItem
	err := models.DB.
		Preload("Ingredient").
		Where("family_id = ? AND ingredient_id = ?", uri.ID.UUID, uri.IngredientID.UUID).
		First(&item).Error

	return item, err
}

func sortStock(col *collate.Collator, items []StockItem) {
	slices.SortStableFunc(items, func(a, b StockItem) int {
		return col.CompareString(a.Name, b.Name)
	})
}
