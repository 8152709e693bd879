// Package filter applies query parameter filters to transaction lists.
package filter

import (
	"strings"
	"time"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"

	"github.com/ledgerline/backend/internal/models"
)

// Filter holds the recognized transaction query parameters.
//
// All filters are conjunctive: a transaction matches when it passes every
// filter whose parameter is present. The reconciled filter compares the
// explicit strings "true" and "false", any other value means no filter.
type Filter struct {
	Type       string    `form:"type"`                                         // Exact match on the transaction type
	Account    string    `form:"account"`                                      // Exact match on the account label
	CategoryID string    `form:"categoryId"`                                   // Exact match on the category
	Tag        string    `form:"tag"`                                          // Transaction tag set contains this tag
	Reconciled string    `form:"reconciled"`                                   // "true" or "false"
	From       time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`   // Date at or after this day
	To         time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`     // Date at or before this day
	Search     string    `form:"q"`                                            // Case-insensitive free text search
}

// Apply filters the transaction list.
func (f Filter) Apply(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))

	for _, t := range transactions {
		if f.matches(t) {
			out = append(out, t)
		}
	}

	return out
}

func (f Filter) matches(t models.Transaction) bool {
	if f.Type != "" && string(t.Type) != f.Type {
		return false
	}

	if f.Account != "" && t.Account != f.Account {
		return false
	}

	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}

	if f.Tag != "" && !slices.Contains(t.Tags, f.Tag) {
		return false
	}

	if f.Reconciled == "true" && !t.Reconciled {
		return false
	}

	if f.Reconciled == "false" && t.Reconciled {
		return false
	}

	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}

	if !f.To.IsZero() && t.Date.After(endOfDay(f.To)) {
		return false
	}

	if f.Search != "" && !f.searchMatches(t) {
		return false
	}

	return true
}

// searchMatches reports whether the search term appears in any of the
// notes, vendor, client or the joined tags.
func (f Filter) searchMatches(t models.Transaction) bool {
	term := strings.ToLower(f.Search)

	for _, field := range []string{t.Notes, t.Vendor, t.Client, strings.Join(t.Tags, " ")} {
		if containsTerm(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// containsTerm matches the term as a literal substring. go-glob treats
// every asterisk as a wildcard and has no escape syntax, so terms
// containing one are matched with a plain substring search instead.
func containsTerm(s, term string) bool {
	if strings.Contains(term, "*") {
		return strings.Contains(s, term)
	}

	return glob.Glob("*"+term+"*", s)
}

// endOfDay returns the last nanosecond of the day so that the upper date
// bound is inclusive for the whole day.
func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
