package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/family-meals/backend/internal/controllers/v1"
	"github.com/family-meals/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/families", "OPTIONS, GET, POST"},
		{"http://example.com/v1/ingredients", "OPTIONS, GET, POST"},
		{"http://example.com/v1/recipes", "OPTIONS, GET, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, recorder.Header().Get("allow"), tt.response)
		})
	}
}

// TestOptionsHeaderFamilyResources verifies the allowed verbs for
// resources nested below a family.
func (suite *TestSuiteStandard) TestOptionsHeaderFamilyResources() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	ingredient := createTestIngredient(suite.T(), v1.IngredientEditable{})
	base := family.Data.Links.Self

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{base, "OPTIONS, GET, PATCH, DELETE"},
		{base + "/plans/2024-W05", "OPTIONS, GET, PUT, DELETE"},
		{base + "/stock", "OPTIONS, GET"},
		{base + "/stock/" + ingredient.Data.ID.String(), "OPTIONS, GET, PUT, DELETE"},
		{ingredient.Data.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, recorder.Header().Get("allow"), tt.response)
		})
	}
}
