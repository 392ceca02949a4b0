package yamarkup

import (
	"slices"
	"strings"
)

// sortedKeys returns the map keys in lexicographic order. Go map iteration
// order is randomised, so rendering has to impose its own order to keep the
// output stable between runs.
func sortedKeys(context map[string]string) []string {
	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

func formatContext(context map[string]string, escape func(string) string) string {
	if len(context) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, key := range sortedKeys(context) {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(escape(key))
		sb.WriteString(": ")
		sb.WriteString(escape(context[key]))
	}

	return sb.String()
}

func formatContextAsJSON(context map[string]string, escape func(string) string) string {
	if len(context) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteByte('{')

	for i, key := range sortedKeys(context) {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteByte('"')
		sb.WriteString(escape(key))
		sb.WriteString(`": "`)
		sb.WriteString(escape(context[key]))
		sb.WriteByte('"')
	}

	sb.WriteByte('}')

	return sb.String()
}
