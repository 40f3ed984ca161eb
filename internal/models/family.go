package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// DefaultLocale is used for families that do not specify a locale.
const DefaultLocale = "fr-FR"

// Family represents a household that plans meals together.
//
// All recipes, plans, stock and shopping lists belong to a family.
type Family struct {
	DefaultModel
	Name     string
	Note     string
	Locale   string // BCP 47 language tag used for sorting and the currency
	Currency string // Currency symbol, derived from the locale when empty
}

// BeforeSave trims whitespace from all strings, validates the locale
// and sets the currency symbol if none is set.
func (f *Family) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Note = strings.TrimSpace(f.Note)
	f.Locale = strings.TrimSpace(f.Locale)
	f.Currency = strings.TrimSpace(f.Currency)

	if f.Name == "" {
		return ErrFamilyNameEmpty
	}

	if f.Locale == "" {
		f.Locale = DefaultLocale
	}

	tag, err := language.Parse(f.Locale)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrLocaleInvalid, f.Locale)
	}
	f.Locale = tag.String()

	if f.Currency == "" {
		f.Currency = currencySymbol(tag)
	}

	return nil
}

// Language returns the parsed locale of the family.
func (f Family) Language() language.Tag {
	tag, err := language.Parse(f.Locale)
	if err != nil {
		return language.Make(DefaultLocale)
	}

	return tag
}

// currencySymbol returns the symbol of the currency used in the region of the tag.
func currencySymbol(tag language.Tag) string {
	unit, confidence := currency.FromTag(tag)
	if confidence == language.No {
		return ""
	}

	return fmt.Sprintf("%s", currency.Symbol(unit))
}
