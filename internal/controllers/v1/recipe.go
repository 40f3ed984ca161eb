package v1

import (
	"net/http"

	"github.com/family-meals/backend/internal/httputil"
	"github.com/family-meals/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterRecipeRoutes registers the routes for recipes with
// the RouterGroup that is passed.
func RegisterRecipeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecipeList)
		r.GET("", GetRecipes)
		r.POST("", CreateRecipes)
	}

	// Recipe with ID
	{
		r.OPTIONS("/:id", OptionsRecipeDetail)
		r.GET("/:id", GetRecipe)
		r.PATCH("/:id", UpdateRecipe)
		r.DELETE("/:id", DeleteRecipe)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recipes
// @Success		204
// @Router			/v1/recipes [options]
func OptionsRecipeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recipes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recipes/{id} [options]
func OptionsRecipeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Recipe{})
}

// @Summary		Create recipes
// @Description	Creates new recipes together with their ingredient lines
// @Tags			Recipes
// @Produce		json
// @Success		201		{object}	RecipeCreateResponse
// @Failure		400		{object}	RecipeCreateResponse
// @Failure		500		{object}	RecipeCreateResponse
// @Param			recipes	body		[]RecipeEditable	true	"Recipes"
// @Router			/v1/recipes [post]
func CreateRecipes(c *gin.Context) {
	var editables []RecipeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecipeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecipeCreateResponse{}

	for _, editable := range editables {
		recipe := editable.model()

		err = models.DB.Create(&recipe).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecipe(c, recipe)
		r.Data = append(r.Data, RecipeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get recipes
// @Description	Returns a list of recipes
// @Tags			Recipes
// @Produce		json
// @Success		200	{object}	RecipeListResponse
// @Failure		400	{object}	RecipeListResponse
// @Failure		500	{object}	RecipeListResponse
// @Router			/v1/recipes [get]
// @Param			family		query	string	false	"Filter by family ID"
// @Param			ingredient	query	string	false	"Filter by ID of an ingredient used in the recipe"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first recipe returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of recipes to return. Defaults to 50."
func GetRecipes(c *gin.Context) {
	var filter RecipeQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, RecipeListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Model(&models.Recipe{}).
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	if slices.Contains(setFields, "IngredientID") {
		q = q.Where("id IN (?)", models.DB.Model(&models.RecipeLine{}).Select("recipe_id").Where("ingredient_id = ?", filter.IngredientID.UUID))
	}

	q, limit := limitOffset(q, setFields, filter.Offset, filter.Limit)

	var recipes []models.Recipe
	err = models.PreloadLines(q.Session(&gorm.Session{})).Find(&recipes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		data = append(data, newRecipe(c, recipe))
	}

	c.JSON(http.StatusOK, RecipeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get recipe
// @Description	Returns a specific recipe
// @Tags			Recipes
// @Produce		json
// @Success		200	{object}	RecipeResponse
// @Failure		400	{object}	RecipeResponse
// @Failure		404	{object}	RecipeResponse
// @Failure		500	{object}	RecipeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recipes/{id} [get]
func GetRecipe(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	var recipe models.Recipe
	err = models.PreloadLines(models.DB).First(&recipe, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	data := newRecipe(c, recipe)
	c.JSON(http.StatusOK, RecipeResponse{Data: &data})
}

// @Summary		Update recipe
// @Description	Update an existing recipe. Only values to be updated need to be specified. If lines are specified, they replace all lines of the recipe.
// @Tags			Recipes
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecipeResponse
// @Failure		400		{object}	RecipeResponse
// @Failure		404		{object}	RecipeResponse
// @Failure		500		{object}	RecipeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			recipe	body		RecipeEditable	true	"Recipe"
// @Router			/v1/recipes/{id} [patch]
func UpdateRecipe(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	var recipe models.Recipe
	err = models.PreloadLines(models.DB).First(&recipe, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecipeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	// Fields not in the body keep their current value
	data := newRecipeEditable(recipe)
	if hasField(updateFields, "Lines") {
		data.Lines = nil
	}

	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	update := data.model()
	update.DefaultModel = recipe.DefaultModel

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if hasField(updateFields, "Lines") {
			err := update.ReplaceLines(tx, update.Lines)
			if err != nil {
				return err
			}
		}

		fields := withoutField(updateFields, "Lines")
		if len(fields) == 0 {
			return nil
		}

		update.Lines = nil
		return tx.Model(&update).Select("", fields...).Updates(&update).Error
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	err = models.PreloadLines(models.DB).First(&recipe, recipe.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecipeResponse{
			Error: &s,
		})
		return
	}

	r := newRecipe(c, recipe)
	c.JSON(http.StatusOK, RecipeResponse{Data: &r})
}

// @Summary		Delete recipe
// @Description	Deletes a recipe. Plans using the recipe are kept and report it as missing when generating shopping lists.
// @Tags			Recipes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recipes/{id} [delete]
func DeleteRecipe(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var recipe models.Recipe
	err = models.DB.First(&recipe, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&recipe).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
