package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted format for birth dates on the command line.
const DateLayout = "2006-01-02"

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// ParseBirthDate parses a YYYY-MM-DD date and rejects dates after asOf.
func ParseBirthDate(value string, asOf time.Time) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("birth date must be YYYY-MM-DD: %w", err)
	}
	if d.After(asOf) {
		return time.Time{}, fmt.Errorf("birth date %s is in the future", d.Format(DateLayout))
	}
	return d, nil
}

// AgeFromBirthDate parses value and returns the age reached at asOf.
func AgeFromBirthDate(value string, asOf time.Time) (int, error) {
	d, err := ParseBirthDate(value, asOf)
	if err != nil {
		return 0, err
	}
	return Age(d, asOf), nil
}
