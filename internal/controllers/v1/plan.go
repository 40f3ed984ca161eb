package v1

import (
	"net/http"

	"github.com/family-meals/backend/internal/httputil"
	"github.com/family-meals/backend/internal/models"
	"github.com/family-meals/backend/internal/shopping"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPlanRoutes registers the routes for the meal plans of a family
// with the RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:week", OptionsPlan)
	r.GET("/:week", GetPlan)
	r.PUT("/:week", SetPlan)
	r.DELETE("/:week", DeletePlan)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week	path		string	true	"ISO 8601 week, e.g. 2024-W05"
// @Router			/v1/families/{id}/plans/{week} [options]
func OptionsPlan(c *gin.Context) {
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

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get plan
// @Description	Returns the meal plan of a family for a week
// @Tags			Plans
// @Produce		json
// @Success		200		{object}	WeeklyPlanResponse
// @Failure		400		{object}	WeeklyPlanResponse
// @Failure		404		{object}	WeeklyPlanResponse
// @Failure		500		{object}	WeeklyPlanResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week	path		string	true	"ISO 8601 week, e.g. 2024-W05"
// @Router			/v1/families/{id}/plans/{week} [get]
func GetPlan(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyPlanResponse{
			Error: &s,
		})
		return
	}

	plan, err := models.FindPlan(models.DB, uri.ID.UUID, uri.Week)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyPlanResponse{
			Error: &s,
		})
		return
	}

	data := newWeeklyPlan(c, plan)
	c.JSON(http.StatusOK, WeeklyPlanResponse{Data: &data})
}

// @Summary		Set plan
// @Description	Creates or replaces the meal plan of a family for a week. Slots that are not specified are unplanned.
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		200		{object}	WeeklyPlanResponse
// @Failure		400		{object}	WeeklyPlanResponse
// @Failure		404		{object}	WeeklyPlanResponse
// @Failure		500		{object}	WeeklyPlanResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week	path		string				true	"ISO 8601 week, e.g. 2024-W05"
// @Param			plan	body		WeeklyPlanEditable	true	"Plan"
// @Router			/v1/families/{id}/plans/{week} [put]
func SetPlan(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyPlanResponse{
			Error: &s,
		})
		return
	}

	var family models.Family
	err = models.DB.First(&family, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyPlanResponse{
			Error: &s,
		})
		return
	}

	var data WeeklyPlanEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyPlanResponse{
			Error: &s,
		})
		return
	}

	grid, err := shopping.PlanFromGrid(data.Slots)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyPlanResponse{
			Error: &s,
		})
		return
	}

	var plan models.WeeklyPlan
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		plan, err = models.SavePlan(tx, family.ID, uri.Week, grid)
		return err
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklyPlanResponse{
			Error: &s,
		})
		return
	}

	r := newWeeklyPlan(c, plan)
	c.JSON(http.StatusOK, WeeklyPlanResponse{Data: &r})
}

// @Summary		Delete plan
// @Description	Deletes the meal plan of a family for a week. The shopping list for the week is kept.
// @Tags			Plans
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			week	path		string	true	"ISO 8601 week, e.g. 2024-W05"
// @Router			/v1/families/{id}/plans/{week} [delete]
func DeletePlan(c *gin.Context) {
	var uri URIWeek
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	plan, err := models.FindPlan(models.DB, uri.ID.UUID, uri.Week)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&plan).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
