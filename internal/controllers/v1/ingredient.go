package v1

import (
	"net/http"

	"github.com/family-meals/backend/internal/httputil"
	"github.com/family-meals/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterIngredientRoutes registers the routes for ingredients with
// the RouterGroup that is passed.
func RegisterIngredientRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIngredientList)
		r.GET("", GetIngredients)
		r.POST("", CreateIngredients)
	}

	// Ingredient with ID
	{
		r.OPTIONS("/:id", OptionsIngredientDetail)
		r.GET("/:id", GetIngredient)
		r.PATCH("/:id", UpdateIngredient)
		r.DELETE("/:id", DeleteIngredient)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ingredients
// @Success		204
// @Router			/v1/ingredients [options]
func OptionsIngredientList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ingredients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/ingredients/{id} [options]
func OptionsIngredientDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Ingredient{})
}

// @Summary		Create ingredients
// @Description	Creates new ingredients together with their unit tables
// @Tags			Ingredients
// @Produce		json
// @Success		201			{object}	IngredientCreateResponse
// @Failure		400			{object}	IngredientCreateResponse
// @Failure		500			{object}	IngredientCreateResponse
// @Param			ingredients	body		[]IngredientEditable	true	"Ingredients"
// @Router			/v1/ingredients [post]
func CreateIngredients(c *gin.Context) {
	var editables []IngredientEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IngredientCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IngredientCreateResponse{}

	for _, editable := range editables {
		ingredient := editable.model()

		err = models.DB.Create(&ingredient).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.PreloadUnits(models.DB).First(&ingredient, ingredient.ID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newIngredient(c, ingredient)
		r.Data = append(r.Data, IngredientResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get ingredients
// @Description	Returns a list of ingredients
// @Tags			Ingredients
// @Produce		json
// @Success		200	{object}	IngredientListResponse
// @Failure		500	{object}	IngredientListResponse
// @Router			/v1/ingredients [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			category	query	string	false	"Filter by category"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first ingredient returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of ingredients to return. Defaults to 50."
func GetIngredients(c *gin.Context) {
	var filter IngredientQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Model(&models.Ingredient{}).
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)
	q, limit := limitOffset(q, setFields, filter.Offset, filter.Limit)

	var ingredients []models.Ingredient
	err := models.PreloadUnits(q.Session(&gorm.Session{})).Find(&ingredients).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		data = append(data, newIngredient(c, ingredient))
	}

	c.JSON(http.StatusOK, IngredientListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get ingredient
// @Description	Returns a specific ingredient
// @Tags			Ingredients
// @Produce		json
// @Success		200	{object}	IngredientResponse
// @Failure		400	{object}	IngredientResponse
// @Failure		404	{object}	IngredientResponse
// @Failure		500	{object}	IngredientResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/ingredients/{id} [get]
func GetIngredient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	var ingredient models.Ingredient
	err = models.PreloadUnits(models.DB).First(&ingredient, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	data := newIngredient(c, ingredient)
	c.JSON(http.StatusOK, IngredientResponse{Data: &data})
}

// @Summary		Update ingredient
// @Description	Update an existing ingredient. Only values to be updated need to be specified. If units are specified, they replace the complete unit table.
// @Tags			Ingredients
// @Accept			json
// @Produce		json
// @Success		200			{object}	IngredientResponse
// @Failure		400			{object}	IngredientResponse
// @Failure		404			{object}	IngredientResponse
// @Failure		500			{object}	IngredientResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ingredient	body		IngredientEditable	true	"Ingredient"
// @Router			/v1/ingredients/{id} [patch]
func UpdateIngredient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	var ingredient models.Ingredient
	err = models.PreloadUnits(models.DB).First(&ingredient, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IngredientEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	// Fields not in the body keep their current value
	data := newIngredientEditable(ingredient)
	if hasField(updateFields, "Units") {
		data.Units = nil
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	update := data.model()
	update.DefaultModel = ingredient.DefaultModel

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if hasField(updateFields, "Units") {
			err := update.ReplaceUnits(tx, update.Units)
			if err != nil {
				return err
			}
		}

		fields := withoutField(updateFields, "Units")
		if len(fields) == 0 {
			return nil
		}

		update.Units = nil
		return tx.Model(&update).Select("", fields...).Updates(&update).Error
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	err = models.PreloadUnits(models.DB).First(&ingredient, ingredient.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IngredientResponse{
			Error: &s,
		})
		return
	}

	r := newIngredient(c, ingredient)
	c.JSON(http.StatusOK, IngredientResponse{Data: &r})
}

// @Summary		Delete ingredient
// @Description	Deletes an ingredient with its units and all stock of it. Recipe lines using the ingredient are kept and reported when generating shopping lists.
// @Tags			Ingredients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/ingredients/{id} [delete]
func DeleteIngredient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var ingredient models.Ingredient
	err = models.DB.First(&ingredient, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&ingredient).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
