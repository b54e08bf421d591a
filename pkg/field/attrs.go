package field

import (
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"
)

// Attributes renders props as an HTML attribute string with a leading space
// per attribute, e.g. ` id="email" required`. Keys are sorted.
//
// nil values are skipped. For aria-* and data-* keys booleans render as
// "true"/"false"; for every other key true renders a bare boolean attribute
// and false omits it. Keys that are not valid attribute names are dropped.
func Attributes(props Props) string {
	if len(props) == 0 {
		return ""
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		if validAttrName(key) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	var builder strings.Builder
	for _, key := range keys {
		value := props[key]
		if value == nil {
			continue
		}
		if flag, ok := value.(bool); ok && !enumeratedBool(key) {
			if flag {
				builder.WriteByte(' ')
				builder.WriteString(key)
			}
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(key)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(formatValue(value)))
		builder.WriteByte('"')
	}
	return builder.String()
}

func enumeratedBool(key string) bool {
	return strings.HasPrefix(key, "aria-") || strings.HasPrefix(key, "data-")
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case r == '"', r == '\'', r == '>', r == '<', r == '/', r == '=':
			return false
		}
	}
	return true
}
