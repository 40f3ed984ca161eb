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

func setTestStock(t *testing.T, familyID, ingredientID uuid.UUID, s v1.StockItemEditable, expectedStatus ...int) v1.StockItemResponse {
	// Default to 200 OK as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/v1/families/%s/stock/%s", familyID, ingredientID), s)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var item v1.StockItemResponse
	test.DecodeResponse(t, &r, &item)

	return item
}

func (suite *TestSuiteStandard) TestStockOptions() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", fmt.Sprintf("%s/stock", family.Data.ID), http.StatusNoContent, "OPTIONS, GET"},
		{"Item", fmt.Sprintf("%s/stock/%s", family.Data.ID, flour.Data.ID), http.StatusNoContent, "OPTIONS, GET, PUT, DELETE"},
		{"Item, no family with this ID", fmt.Sprintf("%s/stock/%s", uuid.New(), flour.Data.ID), http.StatusNotFound, ""},
		{"Item, invalid ingredient ID", fmt.Sprintf("%s/stock/NotAUUID", family.Data.ID), http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/families/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestStockSet() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())

	item := setTestStock(suite.T(), family.Data.ID, flour.Data.ID, v1.StockItemEditable{Quantity: d("500"), Unit: " G "})

	assert.Equal(suite.T(), family.Data.ID, item.Data.FamilyID)
	assert.Equal(suite.T(), flour.Data.ID, item.Data.IngredientID)
	assert.Equal(suite.T(), "Farine", item.Data.Name)
	assert.Equal(suite.T(), "g", item.Data.Unit)
	assert.True(suite.T(), item.Data.Quantity.Equal(d("500")))
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/families/%s/stock/%s", family.Data.ID, flour.Data.ID), item.Data.Links.Self)
	assert.Equal(suite.T(), flour.Data.Links.Self, item.Data.Links.Ingredient)

	// Setting the stock again replaces quantity and unit
	item = setTestStock(suite.T(), family.Data.ID, flour.Data.ID, v1.StockItemEditable{Quantity: d("0.25"), Unit: "kg"})
	assert.Equal(suite.T(), "kg", item.Data.Unit)
	assert.True(suite.T(), item.Data.Quantity.Equal(d("0.25")))

	r := test.Request(suite.T(), http.MethodGet, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StockItemResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "kg", response.Data.Unit)
	assert.True(suite.T(), response.Data.Quantity.Equal(d("0.25")))
}

// TestStockSetZero verifies that a quantity of zero is valid.
func (suite *TestSuiteStandard) TestStockSetZero() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())

	item := setTestStock(suite.T(), family.Data.ID, flour.Data.ID, v1.StockItemEditable{Quantity: d("0"), Unit: "kg"})
	assert.True(suite.T(), item.Data.Quantity.IsZero())
}

func (suite *TestSuiteStandard) TestStockSetFails() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())

	tests := []struct {
		name         string
		familyID     string
		ingredientID string
		body         any
		status       int
		err          string
	}{
		{"No family with this ID", uuid.NewString(), flour.Data.ID.String(), v1.StockItemEditable{Quantity: d("1"), Unit: "kg"}, http.StatusNotFound, ""},
		{"No ingredient with this ID", family.Data.ID.String(), uuid.NewString(), v1.StockItemEditable{Quantity: d("1"), Unit: "kg"}, http.StatusNotFound, ""},
		{"Invalid ingredient ID", family.Data.ID.String(), "NotAUUID", v1.StockItemEditable{Quantity: d("1"), Unit: "kg"}, http.StatusBadRequest, ""},
		{"Empty body", family.Data.ID.String(), flour.Data.ID.String(), "", http.StatusBadRequest, ""},
		{"Negative quantity", family.Data.ID.String(), flour.Data.ID.String(), v1.StockItemEditable{Quantity: d("-1"), Unit: "kg"}, http.StatusBadRequest, models.ErrQuantityNegative.Error()},
		{"No unit", family.Data.ID.String(), flour.Data.ID.String(), v1.StockItemEditable{Quantity: d("1")}, http.StatusBadRequest, "is not a valid unit name"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/v1/families/%s/stock/%s", tt.familyID, tt.ingredientID), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				var response v1.StockItemResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, tt.err)
			}
		})
	}
}

// TestStockGet verifies that the stock is sorted by ingredient name in the
// family's language and only contains the family's stock.
func (suite *TestSuiteStandard) TestStockGet() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	other := createTestFamily(suite.T(), v1.FamilyEditable{Name: "Dupont"})

	eggs := createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Oeufs", Units: []v1.IngredientUnitEditable{{Name: "pièce", IsStandard: true}}})
	apricots := createTestIngredient(suite.T(), v1.IngredientEditable{Name: "Abricots"})
	spinach := createTestIngredient(suite.T(), v1.IngredientEditable{Name: "épinards"})
	flour := createTestFlour(suite.T())

	setTestStock(suite.T(), family.Data.ID, eggs.Data.ID, v1.StockItemEditable{Quantity: d("6"), Unit: "pièce"})
	setTestStock(suite.T(), family.Data.ID, spinach.Data.ID, v1.StockItemEditable{Quantity: d("0.3"), Unit: "kg"})
	setTestStock(suite.T(), family.Data.ID, apricots.Data.ID, v1.StockItemEditable{Quantity: d("1"), Unit: "kg"})
	setTestStock(suite.T(), other.Data.ID, flour.Data.ID, v1.StockItemEditable{Quantity: d("1"), Unit: "kg"})

	r := test.Request(suite.T(), http.MethodGet, family.Data.Links.Stock, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StockListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Abricots", response.Data[0].Name)
	assert.Equal(suite.T(), "épinards", response.Data[1].Name)
	assert.Equal(suite.T(), "Oeufs", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestStockGetFails() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"List, no family with this ID", fmt.Sprintf("%s/stock", uuid.New()), http.StatusNotFound},
		{"List, invalid family ID", "NotAUUID/stock", http.StatusBadRequest},
		{"Item, nothing in stock", fmt.Sprintf("%s/stock/%s", family.Data.ID, flour.Data.ID), http.StatusNotFound},
		{"Item, invalid ingredient ID", fmt.Sprintf("%s/stock/NotAUUID", family.Data.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/families/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestStockDelete() {
	family := createTestFamily(suite.T(), v1.FamilyEditable{})
	flour := createTestFlour(suite.T())
	item := setTestStock(suite.T(), family.Data.ID, flour.Data.ID, v1.StockItemEditable{Quantity: d("1"), Unit: "kg"})

	r := test.Request(suite.T(), http.MethodDelete, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, item.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
