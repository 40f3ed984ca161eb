package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/family-meals/backend/internal/controllers/v1"
	"github.com/family-meals/backend/internal/models"
	"github.com/family-meals/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestIngredient(t *testing.T, i v1.IngredientEditable, expectedStatus ...int) v1.IngredientResponse {
	if i.Name == "" {
		i.Name = uuid.NewString()
	}

	if i.Units == nil {
		i.Units = []v1.IngredientUnitEditable{{Name: "kg", IsStandard: true}}
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.IngredientEditable{i}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/ingredients", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var ingredient v1.IngredientCreateResponse
	test.DecodeResponse(t, &r, &ingredient)

	if r.Code == http.StatusCreated {
		return ingredient.Data[0]
	}

	return v1.IngredientResponse{}
}

// createTestFlour creates flour that is bought by the kilogram for 1.20.
func createTestFlour(t *testing.T) v1.IngredientResponse {
	return createTestIngredient(t, v1.IngredientEditable{
		Name:     "Farine",
		Category: "Épicerie",
		Units: []v1.IngredientUnitEditable{
			{Name: "kg", IsStandard: true, StandardPrice: nd("1.20")},
			{Name: "g", ConversionFactor: nd("1000")},
		},
	})
}

// TestIngredientsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestIngredientsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestIngredient(t, v1.IngredientEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/ingredients", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.IngredientListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestIngredientsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestIngredientsOptions() {
	tests := []struct {
		name   string
		id     string // path at the ingredients endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No ingredient with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Ingredient exists", createTestIngredient(suite.T(), v1.IngredientEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/ingredients", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestIngredientsCreate() {
	flour := createTestFlour(suite.T())

	assert.Equal(suite.T(), "Farine", flour.Data.Name)
	assert.Equal(suite.T(), "Épicerie", flour.Data.Category)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/ingredients/%s", flour.Data.ID), flour.Data.Links.Self)

	// Units are sorted by name
	require.Len(suite.T(), flour.Data.Units, 2)
	assert.Equal(suite.T(), "g", flour.Data.Units[0].Name)
	assert.True(suite.T(), flour.Data.Units[0].ConversionFactor.Decimal.Equal(d("1000")))
	assert.False(suite.T(), flour.Data.Units[0].StandardPrice.Valid)
	assert.Equal(suite.T(), "kg", flour.Data.Units[1].Name)
	assert.True(suite.T(), flour.Data.Units[1].IsStandard)
	assert.True(suite.T(), flour.Data.Units[1].StandardPrice.Decimal.Equal(d("1.2")))
}

func (suite *TestSuiteStandard) TestIngredientsCreateUnitNormalized() {
	ingredient := createTestIngredient(suite.T(), v1.IngredientEditable{
		Units: []v1.IngredientUnitEditable{{Name: " Pièce ", IsStandard: true}},
	})

	assert.Equal(suite.T(), "pièce", ingredient.Data.Units[0].Name)
}

func (suite *TestSuiteStandard) TestIngredientsCreateFails() {
	_ = createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Sel"})

	tests := []struct {
		name       string
		ingredient v1.IngredientEditable
		err        string
	}{
		{"Duplicate name", v1.IngredientEditable{Name: "Sel", Units: []v1.IngredientUnitEditable{{Name: "kg", IsStandard: true}}}, models.ErrIngredientNameNotUnique.Error()},
		{"Empty name", v1.IngredientEditable{Name: " ", Units: []v1.IngredientUnitEditable{{Name: "kg", IsStandard: true}}}, models.ErrIngredientNameEmpty.Error()},
		{"No standard unit", v1.IngredientEditable{Name: "Poivre", Units: []v1.IngredientUnitEditable{{Name: "g"}}}, "the units of the ingredient are invalid"},
		{"Two standard units", v1.IngredientEditable{Name: "Sucre", Units: []v1.IngredientUnitEditable{{Name: "kg", IsStandard: true}, {Name: "g", IsStandard: true}}}, "the units of the ingredient are invalid"},
		{"Duplicate unit", v1.IngredientEditable{Name: "Riz", Units: []v1.IngredientUnitEditable{{Name: "kg", IsStandard: true}, {Name: "KG"}}}, "the units of the ingredient are invalid"},
		{"Factor zero", v1.IngredientEditable{Name: "Lait", Units: []v1.IngredientUnitEditable{{Name: "l", IsStandard: true}, {Name: "ml", ConversionFactor: nd("0")}}}, models.ErrFactorNotPositive.Error()},
		{"Negative price", v1.IngredientEditable{Name: "Beurre", Units: []v1.IngredientUnitEditable{{Name: "kg", IsStandard: true, StandardPrice: nd("-1")}}}, models.ErrPriceNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/ingredients", []v1.IngredientEditable{tt.ingredient})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.IngredientCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestIngredientsCreateInvalidUnitName() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/ingredients", []v1.IngredientEditable{{Name: "Huile", Units: []v1.IngredientUnitEditable{{Name: "100", IsStandard: true}}}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.IngredientCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, "is not a valid unit name")
}

func (suite *TestSuiteStandard) TestIngredientsGet() {
	_ = createTestFlour(suite.T())
	_ = createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Lait", Category: "Crèmerie", Note: "Demi-écrémé"})
	_ = createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Beurre", Category: "Crèmerie"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Category", "category=Cr%C3%A8merie", 2},
		{"Name", "name=ait", 1},
		{"Note", "note=%C3%A9cr%C3%A9m%C3%A9", 1},
		{"Search", "search=beur", 1},
		{"Limit", "limit=1", 1},
		{"Nothing found", "name=Chocolat", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/ingredients?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.IngredientListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestIngredientsGetWithUnits verifies that the list contains the units
// and the total is not affected by them.
func (suite *TestSuiteStandard) TestIngredientsGetWithUnits() {
	_ = createTestFlour(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/ingredients", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IngredientListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Len(suite.T(), response.Data[0].Units, 2)
	assert.Equal(suite.T(), int64(1), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestIngredientsGetSingle() {
	flour := createTestFlour(suite.T())

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing ingredient", flour.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No ingredient with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No ingredient with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE No ingredient with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/ingredients/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestIngredientsUpdate() {
	flour := createTestFlour(suite.T())

	// Fields that are not sent keep their value, including the units
	r := test.Request(suite.T(), http.MethodPatch, flour.Data.Links.Self, map[string]any{"category": "Boulangerie"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IngredientResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Farine", response.Data.Name)
	assert.Equal(suite.T(), "Boulangerie", response.Data.Category)
	assert.Len(suite.T(), response.Data.Units, 2)

	// Units replace the complete unit table
	r = test.Request(suite.T(), http.MethodPatch, flour.Data.Links.Self, map[string]any{
		"units": []map[string]any{
			{"name": "kg", "isStandard": true, "standardPrice": "1.50"},
			{"name": "sachet", "conversionFactor": "2"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Units, 2)
	assert.Equal(suite.T(), "kg", response.Data.Units[0].Name)
	assert.True(suite.T(), response.Data.Units[0].StandardPrice.Decimal.Equal(d("1.5")))
	assert.Equal(suite.T(), "sachet", response.Data.Units[1].Name)
	assert.Equal(suite.T(), "Boulangerie", response.Data.Category)
}

func (suite *TestSuiteStandard) TestIngredientsUpdateFails() {
	flour := createTestFlour(suite.T())
	_ = createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Sucre"})

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "name": 2 `},
		{"Duplicate name", map[string]any{"name": "Sucre"}},
		{"Empty name", map[string]any{"name": ""}},
		{"No standard unit", map[string]any{"units": []map[string]any{{"name": "g"}}}},
		{"Invalid unit name", map[string]any{"units": []map[string]any{{"name": "", "isStandard": true}}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, flour.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// Failed updates do not change the ingredient
	r := test.Request(suite.T(), http.MethodGet, flour.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.IngredientResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Farine", response.Data.Name)
	assert.Len(suite.T(), response.Data.Units, 2)
}

func (suite *TestSuiteStandard) TestIngredientsDelete() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())
	setTestStock(suite.T(), family.Data.ID, flour.Data.ID, v1.StockItemEditable{Quantity: d("1"), Unit: "kg"})

	r := test.Request(suite.T(), http.MethodDelete, flour.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, flour.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Stock of the ingredient is deleted with it
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s/stock", family.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StockListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 0)
}
