package model

import (
	"database/sql/driver"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxCategoryLen = 50

var ErrInvalidCategory = errors.New("category must be 1-50 characters of letters, digits, spaces or hyphens")

// Category is a normalized category slug such as "emergency-fund".
// Free-form input is resolved once by ParseCategory; everything past the
// request boundary handles the typed value only.
type Category string

// CategoryUncategorized is used when a transaction arrives without one.
const CategoryUncategorized Category = "uncategorized"

// ParseCategory trims, lower-cases and hyphenates raw input.
func ParseCategory(raw string) (Category, error) {
	fields := strings.Fields(strings.ToLower(raw))
	slug := strings.Join(fields, "-")
	if slug == "" || len(slug) > maxCategoryLen {
		return "", ErrInvalidCategory
	}
	for _, r := range slug {
		isLetter := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit && r != '-' {
			return "", ErrInvalidCategory
		}
	}
	return Category(slug), nil
}

func (c Category) String() string {
	return string(c)
}

// Label is the display form: "emergency-fund" -> "Emergency Fund".
func (c Category) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "-", " "))
}

func (c Category) Value() (driver.Value, error) {
	return string(c), nil
}
