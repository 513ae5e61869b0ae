// Package quotes holds the quote catalog: an ordered, id-keyed store of
// quotes, the category index derived from it, and random selection over a
// category-filtered view.
package quotes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
)

// Quote is a single text/category record.
type Quote struct {
	ID       int64  `json:"id" yaml:"id" toml:"id"`
	Text     string `json:"text" yaml:"text" toml:"text"`
	Category string `json:"category" yaml:"category" toml:"category"`
}

// String returns a one-line rendering of the quote.
func (q Quote) String() string {
	return fmt.Sprintf("%q (%s)", q.Text, q.Category)
}

// InCategory reports whether the quote belongs to the filtered view for
// category. AllCategories matches every quote.
func (q Quote) InCategory(category string) bool {
	return category == constants.AllCategories || q.Category == category
}

// Normalize trims surrounding whitespace and applies Unicode NFC so that
// visually equal strings compare equal.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Normalized returns a copy with text and category normalized.
func (q Quote) Normalized() Quote {
	q.Text = Normalize(q.Text)
	q.Category = Normalize(q.Category)
	return q
}

// Validate checks that text and category are present after trimming.
func (q Quote) Validate() error {
	if err := validateField("text", q.Text, constants.MaxQuoteLength); err != nil {
		return err
	}
	return validateField("category", q.Category, constants.MaxCategoryLength)
}

func validateField(name, value string, limit int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.NewValidationError(name, value, "must not be empty")
	}
	if utf8.RuneCountInString(value) > limit {
		return errors.NewValidationError(name, value, fmt.Sprintf("must be at most %d characters", limit))
	}
	return nil
}
