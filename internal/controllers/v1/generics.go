package v1

import (
	"github.com/family-meals/backend/internal/httputil"
	"github.com/family-meals/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for resources nested below a family (like plans or stock)
func resourceOptionsDetail[R models.Family | models.Ingredient | models.Recipe](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// findFamily binds the family ID from the URI and loads the family.
func findFamily(c *gin.Context) (models.Family, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Family{}, err
	}

	var family models.Family
	err = models.DB.First(&family, uri.ID).Error
	return family, err
}
