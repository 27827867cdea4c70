package utils

import (
	"fmt"
	"reflect"
	"strings"
)

// StructToCsvHeader takes a struct type and returns a slice of strings representing the CSV header.
// It uses the `csv` tag on struct fields to determine the header name.
// If a field doesn't have a `csv` tag, the field name is used.
func StructToCsvHeader(t reflect.Type) []string {
	var headers []string
	for i := 0; i < t.NumField(); i++ {
		headers = append(headers, headerName(t.Field(i)))
	}
	return headers
}

// QuoteField wraps a value in double quotes, doubling any quote inside it.
func QuoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// FormatCsv renders the header line unquoted followed by one line per item,
// every field quoted. Lines are joined with "\n" and there is no trailing newline.
func FormatCsv[T any](headers []string, data []T) (string, error) {
	lines := make([]string, 0, len(data)+1)
	lines = append(lines, strings.Join(headers, ","))

	for _, item := range data {
		row := make([]string, len(headers))
		for i := range row {
			row[i] = QuoteField("")
		}

		v := reflect.ValueOf(item)

		// If item is a pointer, get the value it points to
		if v.Kind() == reflect.Ptr {
			v = v.Elem()
		}

		if v.Kind() != reflect.Struct {
			return "", fmt.Errorf("data must be a slice of structs")
		}

		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			idx := indexOf(headers, headerName(t.Field(i)))
			if idx < 0 {
				continue // Skip fields not in the headers
			}
			row[idx] = QuoteField(fmt.Sprintf("%v", v.Field(i).Interface()))
		}

		lines = append(lines, strings.Join(row, ","))
	}

	return strings.Join(lines, "\n"), nil
}

func headerName(field reflect.StructField) string {
	if csvTag := field.Tag.Get("csv"); csvTag != "" {
		return csvTag
	}
	return field.Name
}

// indexOf returns the index of a string in a slice or -1 if not found
func indexOf(slice []string, item string) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
