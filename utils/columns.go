package utils

import "reflect"

// ColumnList returns the "db" tag of every field of T, in declaration order.
// Used by dbmodels to keep SELECT column lists in sync with the row structs
// scanned by pgx.RowToStructByName.
func ColumnList[T any](prefixes ...string) []string {
	var value T
	t := reflect.TypeOf(value)

	prefix := ""
	if len(prefixes) > 0 {
		prefix = prefixes[0] + "."
	}

	columns := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, prefix+tag)
	}
	return columns
}
