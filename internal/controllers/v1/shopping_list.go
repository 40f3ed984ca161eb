package v1

import (
	"errors"
	"net/http"

	"github.com/family-meals/backend/internal/httputil"
	"github.com/family-meals/backend/internal/models"
	"github.com/family-meals/backend/internal/shopping"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterShoppingListRoutes registers the routes for the shopping lists of a family
// with the RouterGroup that is passed.
func RegisterShoppingListRoutes(r *gin.RouterGroup) {
	// Shopping list for a week
	{
		r.OPTIONS("/:week", OptionsShoppingList)
		r.GET("/:week", GetShoppingList)
		r.POST("/:week", GenerateShoppingList)
		r.DELETE("/:week", DeleteShoppingList)
	}

	// Items on the list
	{
		r.OPTIONS("/:week/items/:ingredientId", OptionsShoppingListItem)
		r.PATCH("/:week/items/:ingredientId", UpdateShoppingListItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shopping Lists
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week	path		string	true	"ISO 8601 week, e.g. 2024-W05"
// @Router			/v1/families/{id}/shopping-lists/{week} [options]
func OptionsShoppingList(c *gin.Context) {
	var uri URIWeek
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

	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Shopping Lists
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week			path		string	true	"ISO 8601 week, e.g. 2024-W05"
// @Param			ingredientId	path		string	true	"ID of the ingredient"
// @Router			/v1/families/{id}/shopping-lists/{week}/items/{ingredientId} [options]
func OptionsShoppingListItem(c *gin.Context) {
	var uri URIShoppingListItem
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.FindShoppingList(models.DB, uri.ID.UUID, uri.Week)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary		Generate shopping list
// @Description	Generates the shopping list of a family for a week from the meal plan, the recipes and the stock.
// @Description	An existing list for the week is replaced. If everything is in stock, the list is empty and the status is 200.
// @Description	Problems with single ingredients are reported as diagnostics and mark the list as partial.
// @Tags			Shopping Lists
// @Accept			json
// @Produce		json
// @Success		200		{object}	ShoppingListResponse
// @Success		201		{object}	ShoppingListResponse
// @Failure		400		{object}	ShoppingListResponse
// @Failure		404		{object}	ShoppingListResponse
// @Failure		422		{object}	ShoppingListResponse
// @Failure		500		{object}	ShoppingListResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week	path		string					true	"ISO 8601 week, e.g. 2024-W05"
// @Param			options	body		ShoppingListGenerate	false	"Options"
// @Router			/v1/families/{id}/shopping-lists/{week} [post]
func GenerateShoppingList(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListResponse{
			Error: &s,
		})
		return
	}

	var family models.Family
	err = models.DB.First(&family, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListResponse{
			Error: &s,
		})
		return
	}

	// The options are optional, an empty body uses the defaults
	var options ShoppingListGenerate
	err = httputil.BindData(c, &options)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), ShoppingListResponse{
			Error: &s,
		})
		return
	}

	list, err := models.GenerateShoppingList(models.DB, family.ID, uri.Week, options.PreserveChecked)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPlanNotFound):
			ShoppingListGenerations.WithLabelValues(outcomeNoPlan).Inc()
		case errors.Is(err, shopping.ErrNoEligibleInput):
			ShoppingListGenerations.WithLabelValues(outcomeNotEligible).Inc()
		default:
			ShoppingListGenerations.WithLabelValues(outcomeError).Inc()
		}

		// Diagnostics are only collected when the run got past the plan lookup
		s := err.Error()
		c.JSON(status(err), ShoppingListResponse{
			Error:       &s,
			Diagnostics: list.Diagnostics,
		})
		return
	}
	ShoppingListGenerations.WithLabelValues(string(list.Status)).Inc()

	code := http.StatusCreated
	if list.Status == models.ListStatusEmpty {
		code = http.StatusOK
	}

	data := newShoppingList(c, family, list)
	c.JSON(code, ShoppingListResponse{Data: &data})
}

// @Summary		Get shopping list
// @Description	Returns the shopping list of a family for a week
// @Tags			Shopping Lists
// @Produce		json
// @Success		200			{object}	ShoppingListResponse
// @Failure		400			{object}	ShoppingListResponse
// @Failure		404			{object}	ShoppingListResponse
// @Failure		500			{object}	ShoppingListResponse
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week		path		string	true	"ISO 8601 week, e.g. 2024-W05"
// @Param			category	query		string	false	"Only return items in categories matching this glob pattern, e.g. Fruits*"
// @Router			/v1/families/{id}/shopping-lists/{week} [get]
func GetShoppingList(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListResponse{
			Error: &s,
		})
		return
	}

	var filter ShoppingListQueryFilter
	err = c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ShoppingListResponse{
			Error: &s,
		})
		return
	}

	var family models.Family
	err = models.DB.First(&family, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListResponse{
			Error: &s,
		})
		return
	}

	list, err := models.FindShoppingList(models.DB, family.ID, uri.Week)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListResponse{
			Error: &s,
		})
		return
	}

	if c.Request.URL.Query().Has("category") {
		items := make([]models.ShoppingListItem, 0, len(list.Items))
		for _, item := range list.Items {
			if glob.Glob(filter.Category, item.Category) {
				items = append(items, item)
			}
		}
		list.Items = items
	}

	data := newShoppingList(c, family, list)
	c.JSON(http.StatusOK, ShoppingListResponse{Data: &data})
}

// @Summary		Delete shopping list
// @Description	Deletes the shopping list of a family for a week
// @Tags			Shopping Lists
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week	path		string	true	"ISO 8601 week, e.g. 2024-W05"
// @Router			/v1/families/{id}/shopping-lists/{week} [delete]
func DeleteShoppingList(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	list, err := models.FindShoppingList(models.DB, uri.ID.UUID, uri.Week)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&list).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Check shopping list item
// @Description	Sets if an item on the shopping list is checked
// @Tags			Shopping Lists
// @Accept			json
// @Produce		json
// @Success		200				{object}	ShoppingListItemResponse
// @Failure		400				{object}	ShoppingListItemResponse
// @Failure		404				{object}	ShoppingListItemResponse
// @Failure		500				{object}	ShoppingListItemResponse
// @Param			id				path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week			path		string						true	"ISO 8601 week, e.g. 2024-W05"
// @Param			ingredientId	path		string						true	"ID of the ingredient"
// @Param			item			body		ShoppingListItemEditable	true	"Item"
// @Router			/v1/families/{id}/shopping-lists/{week}/items/{ingredientId} [patch]
func UpdateShoppingListItem(c *gin.Context) {
	var uri URIShoppingListItem
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListItemResponse{
			Error: &s,
		})
		return
	}

	list, err := models.FindShoppingList(models.DB, uri.ID.UUID, uri.Week)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListItemResponse{
			Error: &s,
		})
		return
	}

	var data ShoppingListItemEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListItemResponse{
			Error: &s,
		})
		return
	}

	item, err := list.SetChecked(models.DB, uri.IngredientID.UUID, *data.IsChecked)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ShoppingListItemResponse{
			Error: &s,
		})
		return
	}

	r := newShoppingListItem(c, list, item)
	c.JSON(http.StatusOK, ShoppingListItemResponse{Data: &r})
}
