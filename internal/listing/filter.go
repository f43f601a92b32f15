package listing

import (
	"strconv"
	"strings"
)

// Filter keys understood by the shops endpoints.
const (
	KeyInVacations   = "inVacations"
	KeyCreatedAfter  = "createdAfter"
	KeyCreatedBefore = "createdBefore"
)

// FilterParams is the parsed form of a filter string.
type FilterParams struct {
	InVacations   *bool
	CreatedAfter  string
	CreatedBefore string
}

// ParseFilters parses an ampersand-joined list of key=value pairs. The format
// is not query-string escaped. inVacations is true only for the literal
// "true"; the date bounds are kept as opaque strings. Unknown keys and empty
// pairs are ignored.
func ParseFilters(s string) FilterParams {
	var fp FilterParams
	if s == "" {
		return fp
	}
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, "=")
		key := parts[0]
		value, hasValue := "", len(parts) > 1
		if hasValue {
			value = parts[1]
		}
		switch key {
		case KeyInVacations:
			b := value == "true"
			fp.InVacations = &b
		case KeyCreatedAfter:
			fp.CreatedAfter = value
		case KeyCreatedBefore:
			fp.CreatedBefore = value
		}
	}
	return fp
}

// IsZero reports whether no filter is set.
func (fp FilterParams) IsZero() bool {
	return fp.InVacations == nil && fp.CreatedAfter == "" && fp.CreatedBefore == ""
}

// String renders the params back into the raw filter format, each pair
// prefixed with '&' so it can be appended to a listing query.
func (fp FilterParams) String() string {
	var b strings.Builder
	if fp.InVacations != nil {
		b.WriteString("&" + KeyInVacations + "=" + strconv.FormatBool(*fp.InVacations))
	}
	if fp.CreatedAfter != "" {
		b.WriteString("&" + KeyCreatedAfter + "=" + fp.CreatedAfter)
	}
	if fp.CreatedBefore != "" {
		b.WriteString("&" + KeyCreatedBefore + "=" + fp.CreatedBefore)
	}
	return b.String()
}
