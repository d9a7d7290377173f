package transform

import "strings"

// addressFields lists the address components in output order. The order is
// fixed; it is not alphabetical and not the input map's iteration order.
var addressFields = []string{"street", "suite", "city", "zipcode"}

// NormalizeName returns the trimmed, upper-cased form of a name value.
// Missing, null, or non-string values yield the empty string.
func NormalizeName(candidate any) string {
	name, ok := candidate.(string)
	if !ok {
		return ""
	}

	return strings.ToUpper(strings.TrimSpace(name))
}

// FullAddress joins the non-empty address components with ", " in fixed
// order: street, suite, city, zipcode. Each component is trimmed first.
// A missing, null, or non-map address yields the empty string, as does an
// address whose every component is empty.
func FullAddress(candidate any) string {
	address, ok := candidate.(map[string]any)
	if !ok {
		return ""
	}

	var components []string

	for _, field := range addressFields {
		value, _ := address[field].(string)

		value = strings.TrimSpace(value)
		if value != "" {
			components = append(components, value)
		}
	}

	return strings.Join(components, ", ")
}
