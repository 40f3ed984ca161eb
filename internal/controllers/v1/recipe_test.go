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

func createTestRecipe(t *testing.T, r v1.RecipeEditable, expectedStatus ...int) v1.RecipeResponse {
	if r.FamilyID == uuid.Nil {
		r.FamilyID = createTestFamily(t, v1.FamilyEditable{}).Data.ID
	}

	if r.Name == "" {
		r.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.RecipeEditable{r}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/recipes", body)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var recipe v1.RecipeCreateResponse
	test.DecodeResponse(t, &recorder, &recipe)

	if recorder.Code == http.StatusCreated {
		return recipe.Data[0]
	}

	return v1.RecipeResponse{}
}

// TestRecipesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestRecipesDBClosed() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestRecipe(t, v1.RecipeEditable{FamilyID: family.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/recipes", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.RecipeListResponse
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

// TestRecipesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestRecipesOptions() {
	tests := []struct {
		name   string
		id     string // path at the recipes endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No recipe with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Recipe exists", createTestRecipe(suite.T(), v1.RecipeEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/recipes", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRecipesCreate() {
	flour := createTestFlour(suite.T())
	eggs := createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Oeufs", Units: []v1.IngredientUnitEditable{{Name: "pièce", IsStandard: true}}})

	recipe := createTestRecipe(suite.T(), v1.RecipeEditable{
		Name:     " Crêpes ",
		Servings: 4,
		Lines: []v1.RecipeLineEditable{
			{IngredientID: flour.Data.ID, Quantity: d("250"), Unit: " G"},
			{IngredientID: eggs.Data.ID, Quantity: d("4"), Unit: "Pièce"},
		},
	})

	assert.Equal(suite.T(), "Crêpes", recipe.Data.Name)
	assert.Equal(suite.T(), 4, recipe.Data.Servings)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/families/%s", recipe.Data.FamilyID), recipe.Data.Links.Family)

	// Lines keep their order, units are normalized
	require.Len(suite.T(), recipe.Data.Lines, 2)
	assert.Equal(suite.T(), flour.Data.ID, recipe.Data.Lines[0].IngredientID)
	assert.Equal(suite.T(), "g", recipe.Data.Lines[0].Unit)
	assert.True(suite.T(), recipe.Data.Lines[0].Quantity.Equal(d("250")))
	assert.Equal(suite.T(), eggs.Data.ID, recipe.Data.Lines[1].IngredientID)
	assert.Equal(suite.T(), "pièce", recipe.Data.Lines[1].Unit)
}

func (suite *TestSuiteStandard) TestRecipesCreateFails() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())

	tests := []struct {
		name   string
		recipe v1.RecipeEditable
		err    string
	}{
		{"Empty name", v1.RecipeEditable{FamilyID: family.Data.ID, Name: " "}, models.ErrRecipeNameEmpty.Error()},
		{"Family does not exist", v1.RecipeEditable{FamilyID: uuid.New(), Name: "Crêpes"}, models.ErrReferenceInvalid.Error()},
		{"Quantity zero", v1.RecipeEditable{FamilyID: family.Data.ID, Name: "Crêpes", Lines: []v1.RecipeLineEditable{{IngredientID: flour.Data.ID, Quantity: d("0"), Unit: "g"}}}, models.ErrQuantityNotPositive.Error()},
		{"Quantity negative", v1.RecipeEditable{FamilyID: family.Data.ID, Name: "Crêpes", Lines: []v1.RecipeLineEditable{{IngredientID: flour.Data.ID, Quantity: d("-1"), Unit: "g"}}}, models.ErrQuantityNotPositive.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/recipes", []v1.RecipeEditable{tt.recipe})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.RecipeCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecipesCreateInvalidBody() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Not an array", `{ "name": "Crêpes" }`, ""},
		{"Negative servings", []map[string]any{{"name": "Crêpes", "servings": -2}}, "Servings must be at least 0"},
		{"Invalid unit", []map[string]any{{"name": "Crêpes", "lines": []map[string]any{{"ingredientId": uuid.NewString(), "quantity": "1", "unit": "   "}}}}, "Unit is not a valid unit name"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/recipes", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != "" {
				var response v1.RecipeCreateResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestRecipesGet() {
	martin := createTestFamily(suite.T(), v1.FamilyEditable{Name: "Martin"})
	dupont := createTestFamily(suite.T(), v1.FamilyEditable{Name: "Dupont"})
	flour := createTestFlour(suite.T())

	_ = createTestRecipe(suite.T(), v1.RecipeEditable{FamilyID: martin.Data.ID, Name: "Crêpes", Lines: []v1.RecipeLineEditable{{IngredientID: flour.Data.ID, Quantity: d("250"), Unit: "g"}}})
	_ = createTestRecipe(suite.T(), v1.RecipeEditable{FamilyID: martin.Data.ID, Name: "Ratatouille", Note: "Better the next day"})
	_ = createTestRecipe(suite.T(), v1.RecipeEditable{FamilyID: dupont.Data.ID, Name: "Quiche", Lines: []v1.RecipeLineEditable{{IngredientID: flour.Data.ID, Quantity: d("200"), Unit: "g"}}})

	tests := []struct {
		name   string
		query  string
		len    int
		status int
	}{
		{"All", "", 3, http.StatusOK},
		{"Family", fmt.Sprintf("family=%s", martin.Data.ID), 2, http.StatusOK},
		{"Ingredient", fmt.Sprintf("ingredient=%s", flour.Data.ID), 2, http.StatusOK},
		{"Family and ingredient", fmt.Sprintf("family=%s&ingredient=%s", dupont.Data.ID, flour.Data.ID), 1, http.StatusOK},
		{"Unknown ingredient", fmt.Sprintf("ingredient=%s", uuid.New()), 0, http.StatusOK},
		{"Name", "name=quich", 1, http.StatusOK},
		{"Search", "search=next", 1, http.StatusOK},
		{"Offset", "offset=1&limit=1", 1, http.StatusOK},
		{"Invalid family", "family=NotAUUID", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/recipes?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.RecipeListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestRecipesGetPagination verifies that the total counts all matching recipes
// and that lines are returned with the list.
func (suite *TestSuiteStandard) TestRecipesGetPagination() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())

	for i := 0; i < 3; i++ {
		_ = createTestRecipe(suite.T(), v1.RecipeEditable{FamilyID: family.Data.ID, Lines: []v1.RecipeLineEditable{{IngredientID: flour.Data.ID, Quantity: d("100"), Unit: "g"}}})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/recipes?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecipeListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Len(suite.T(), response.Data[0].Lines, 1)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestRecipesGetSingle() {
	recipe := createTestRecipe(suite.T(), v1.RecipeEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing recipe", recipe.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No recipe with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No recipe with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE No recipe with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/recipes/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRecipesUpdate() {
	flour := createTestFlour(suite.T())
	eggs := createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Oeufs", Units: []v1.IngredientUnitEditable{{Name: "pièce", IsStandard: true}}})
	recipe := createTestRecipe(suite.T(), v1.RecipeEditable{
		Name:  "Crêpes",
		Lines: []v1.RecipeLineEditable{{IngredientID: flour.Data.ID, Quantity: d("250"), Unit: "g"}},
	})

	// Fields that are not sent keep their value, including the lines
	r := test.Request(suite.T(), http.MethodPatch, recipe.Data.Links.Self, map[string]any{"note": "Let the batter rest", "servings": 6})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecipeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Crêpes", response.Data.Name)
	assert.Equal(suite.T(), "Let the batter rest", response.Data.Note)
	assert.Equal(suite.T(), 6, response.Data.Servings)
	assert.Len(suite.T(), response.Data.Lines, 1)

	// Lines replace all lines
	r = test.Request(suite.T(), http.MethodPatch, recipe.Data.Links.Self, map[string]any{
		"lines": []map[string]any{
			{"ingredientId": eggs.Data.ID, "quantity": "3", "unit": "pièce"},
			{"ingredientId": flour.Data.ID, "quantity": "125", "unit": "g"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Lines, 2)
	assert.Equal(suite.T(), eggs.Data.ID, response.Data.Lines[0].IngredientID)
	assert.Equal(suite.T(), flour.Data.ID, response.Data.Lines[1].IngredientID)
	assert.True(suite.T(), response.Data.Lines[1].Quantity.Equal(d("125")))
	assert.Equal(suite.T(), "Let the batter rest", response.Data.Note)

	// An empty list removes all lines
	r = test.Request(suite.T(), http.MethodPatch, recipe.Data.Links.Self, map[string]any{"lines": []any{}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Lines, 0)
}

func (suite *TestSuiteStandard) TestRecipesUpdateFails() {
	flour := createTestFlour(suite.T())
	recipe := createTestRecipe(suite.T(), v1.RecipeEditable{
		Name:  "Crêpes",
		Lines: []v1.RecipeLineEditable{{IngredientID: flour.Data.ID, Quantity: d("250"), Unit: "g"}},
	})

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Broken JSON", `{ "name": 2 `},
		{"Empty name", map[string]any{"name": ""}},
		{"Family does not exist", map[string]any{"familyId": uuid.NewString()}},
		{"Quantity zero", map[string]any{"lines": []map[string]any{{"ingredientId": flour.Data.ID, "quantity": "0", "unit": "g"}}}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, recipe.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// Failed updates are rolled back
	r := test.Request(suite.T(), http.MethodGet, recipe.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecipeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Crêpes", response.Data.Name)
	assert.Len(suite.T(), response.Data.Lines, 1)
}

func (suite *TestSuiteStandard) TestRecipesDelete() {
	recipe := createTestRecipe(suite.T(), v1.RecipeEditable{})

	r := test.Request(suite.T(), http.MethodDelete, recipe.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, recipe.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
