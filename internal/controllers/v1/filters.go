package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// limitOffset applies offset and limit to the query and returns the limit used.
func limitOffset(query *gorm.DB, setFields []string, offset uint, limit int) (*gorm.DB, int) {
	// Set the offset. Does not need checking since the default is 0
	query = query.Offset(int(offset))

	// Default to 50 resources and set the limit
	l := 50
	if slices.Contains(setFields, "Limit") {
		l = limit
	}

	return query.Limit(l), l
}

// hasField reports if the field name is part of the fields returned by httputil.GetBodyFields.
func hasField(fields []any, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}

	return false
}

// withoutField returns the fields without the given field name.
func withoutField(fields []any, name string) []any {
	result := make([]any, 0, len(fields))
	for _, f := range fields {
		if f != name {
			result = append(result, f)
		}
	}

	return result
}
