package domain

import "regexp"

var (
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidUUID reports whether s is a canonical 8-4-4-4-12 hexadecimal
// identifier, case-insensitive.
func IsValidUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// IsValidDateFormat reports whether s looks like YYYY-MM-DD. The check is
// purely syntactic; impossible calendar dates such as 2024-02-30 still pass.
func IsValidDateFormat(s string) bool {
	return datePattern.MatchString(s)
}

// IsValidUnit reports whether s is a recognised weight unit.
func IsValidUnit(s string) bool {
	return s == UnitKg || s == UnitLb
}
