package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Employee codes are free-form on the grid but an explicit create requires
// at least one printable non-space character.
func IsValidEmployeeCode(code string) bool {
	return !IsEmpty(code)
}

// Shift validation: "HH:MM - HH:MM"
var shiftRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9] - ([01][0-9]|2[0-3]):[0-5][0-9]$`)

func IsValidShift(shift string) bool {
	return shiftRegex.MatchString(shift)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsValidMonth reports whether a 1-12 month number is in range.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidYear bounds the year to something a timesheet could plausibly cover.
func IsValidYear(year int) bool {
	return year >= 2000 && year <= 2100
}

// ParseMonthParam parses year and month query/path parameters.
func ParseMonthParam(yearStr, monthStr string) (int, time.Month, bool) {
	year, err := strconv.Atoi(yearStr)
	if err != nil || !IsValidYear(year) {
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || !IsValidMonth(month) {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
