package permission

import (
	"regexp"
	"strings"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	datePattern  = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/\d{4}$`)
	// Date-time fields additionally pin the year to 2020 or later.
	dateTimePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/(20[2-9][0-9]) ([01][0-9]|2[0-3]):([0-5][0-9])$`)
)

// Validate reports whether value is acceptable for the named field. Rules are
// keyed on field semantics, not storage types; unknown fields are rejected.
// No rule looks at more than one field: cross-field consistency (start < end,
// remaining ≤ total) is out of scope here.
func Validate(field string, value any) bool {
	switch {
	case field == "name" || field == "company" || field == "event_title" ||
		field == "location" || field == "note":
		s, ok := value.(string)
		return ok && s != ""

	case strings.HasSuffix(field, "_id") || field == "attendees" ||
		field == "total_cost" || field == "remaining_to_pay":
		n, ok := asNonNegativeInt(value)
		return ok && n >= 0

	case field == "email":
		s, ok := value.(string)
		return ok && emailPattern.MatchString(s)

	case field == "phone":
		s, ok := value.(string)
		return ok && s != "" && isDigits(s)

	case field == "password":
		s, ok := value.(string)
		return ok && len(s) >= 6

	case field == "date":
		s, ok := value.(string)
		return ok && datePattern.MatchString(s)

	case field == "event_start" || field == "event_end":
		s, ok := value.(string)
		return ok && dateTimePattern.MatchString(s)

	case field == "status":
		_, ok := value.(bool)
		return ok

	case field == "role":
		s, ok := value.(string)
		return ok && domain.ValidRole(s)

	default:
		return false
	}
}

// asNonNegativeInt accepts native ints and the float64 values JSON decoding
// produces, as long as they carry an integral, non-negative value.
func asNonNegativeInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), v >= 0
	case int64:
		return v, v >= 0
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		return int64(v), v >= 0
	default:
		return 0, false
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
