package shopping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrUnknownUnit           = errors.New("the unit is not defined for the ingredient")
	ErrNoStandardUnitDefined = errors.New("the ingredient does not have exactly one standard unit")
	ErrNotConvertible        = errors.New("the unit has no conversion factor to the standard unit")
	ErrDuplicateUnit         = errors.New("the unit is defined more than once")
)

// Unit is one entry of an ingredient's unit table.
//
// A ConversionFactor F on a non-standard unit U means
// quantity_in_U / F = quantity_in_standard_unit.
type Unit struct {
	IsStandard       bool
	ConversionFactor decimal.NullDecimal
	StandardPrice    decimal.NullDecimal // Price for one of this unit
}

// Quantity is an amount in a named unit.
type Quantity struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// UnitsTable is the validated unit table of an ingredient.
//
// The zero value is an empty table for which every conversion fails.
type UnitsTable struct {
	units    map[string]Unit
	standard string
	err      error
}

// NormalizeUnit returns the canonical form of a unit name used for lookups.
func NormalizeUnit(name string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(name)))
}

// NewUnitsTable builds a units table and validates that exactly one unit
// is flagged as standard.
//
// When validation fails, the returned table is still usable, but every
// conversion that needs the standard unit fails with ErrNoStandardUnitDefined.
func NewUnitsTable(units map[string]Unit) (UnitsTable, error) {
	t := UnitsTable{units: make(map[string]Unit, len(units))}

	var standards []string
	for name, unit := range units {
		key := NormalizeUnit(name)
		if _, ok := t.units[key]; ok {
			t.err = fmt.Errorf("%w: %s", ErrDuplicateUnit, key)
			return t, t.err
		}

		t.units[key] = unit
		if unit.IsStandard {
			standards = append(standards, key)
		}
	}

	if len(standards) != 1 {
		slices.Sort(standards)
		t.err = fmt.Errorf("%w: found %d standard units %v", ErrNoStandardUnitDefined, len(standards), standards)
		return t, t.err
	}

	t.standard = standards[0]
	return t, nil
}

// Err returns the validation error of the table, if any.
func (t UnitsTable) Err() error {
	if t.units == nil {
		return fmt.Errorf("%w: the table is empty", ErrNoStandardUnitDefined)
	}

	return t.err
}

// Standard returns the name of the standard unit.
func (t UnitsTable) Standard() (string, bool) {
	if t.Err() != nil {
		return "", false
	}

	return t.standard, true
}

// Unit returns the table entry for a unit name.
func (t UnitsTable) Unit(name string) (Unit, bool) {
	u, ok := t.units[NormalizeUnit(name)]
	return u, ok
}

// Names returns all unit names in ascending order.
func (t UnitsTable) Names() []string {
	names := maps.Keys(t.units)
	slices.Sort(names)
	return names
}

// Convert converts a quantity in fromUnit to the standard unit of the table.
//
// Conversion from the standard unit is the identity. No rounding is applied.
func (t UnitsTable) Convert(quantity decimal.Decimal, fromUnit string) (Quantity, error) {
	key := NormalizeUnit(fromUnit)

	unit, ok := t.units[key]
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %q", ErrUnknownUnit, fromUnit)
	}

	standard, ok := t.Standard()
	if !ok {
		return Quantity{}, t.Err()
	}

	if unit.IsStandard {
		return Quantity{Quantity: quantity, Unit: key}, nil
	}

	if !unit.ConversionFactor.Valid || !unit.ConversionFactor.Decimal.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: %q", ErrNotConvertible, fromUnit)
	}

	return Quantity{
		Quantity: quantity.Div(unit.ConversionFactor.Decimal),
		Unit:     standard,
	}, nil
}

// PricePerStandardUnit returns the price for one standard unit.
//
// The standard unit's own price is preferred. Otherwise the first
// non-standard unit (by name) that has both a price and a usable
// conversion factor is used, converting the rate with price × factor.
func (t UnitsTable) PricePerStandardUnit() (decimal.Decimal, bool) {
	standard, ok := t.Standard()
	if !ok {
		return decimal.Zero, false
	}

	if price := t.units[standard].StandardPrice; price.Valid {
		return price.Decimal, true
	}

	for _, name := range t.Names() {
		unit := t.units[name]
		if unit.IsStandard || !unit.StandardPrice.Valid {
			continue
		}

		if !unit.ConversionFactor.Valid || !unit.ConversionFactor.Decimal.IsPositive() {
			continue
		}

		return unit.StandardPrice.Decimal.Mul(unit.ConversionFactor.Decimal), true
	}

	return decimal.Zero, false
}
