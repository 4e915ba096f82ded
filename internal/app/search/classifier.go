// Package search maps free-text explorer queries to the page that shows them.
package search

import (
	"errors"
	"regexp"
	"strings"
)

// Category is the semantic kind of a search query.
type Category string

const (
	CategoryTransaction Category = "transaction"
	CategoryAddress     Category = "address"
	CategoryBlock       Category = "block"
	CategoryBatch       Category = "batch"
	CategoryName        Category = "name"
	CategoryUnknown     Category = "unknown"
)

var (
	txHashPattern     = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
	addressPattern    = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	blockPattern      = regexp.MustCompile(`^\d+$`)
	batchPattern      = regexp.MustCompile(`(?i)^batch:\d+$`)
	dottedNamePattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)
	simpleNamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Order matters: the first matching rule wins.
var rules = []struct {
	category Category
	matches  func(string) bool
}{
	{CategoryTransaction, txHashPattern.MatchString},
	{CategoryAddress, addressPattern.MatchString},
	{CategoryBlock, blockPattern.MatchString},
	{CategoryBatch, batchPattern.MatchString},
	{CategoryName, func(s string) bool { return dottedNamePattern.MatchString(s) && strings.Contains(s, ".") }},
	{CategoryName, simpleNamePattern.MatchString},
}

// Classify returns the category of an already trimmed query. It never fails.
func Classify(input string) Category {
	for _, rule := range rules {
		if rule.matches(input) {
			return rule.category
		}
	}
	return CategoryUnknown
}

// IsTransactionHash reports whether s is 0x followed by 64 hex characters.
func IsTransactionHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// IsAddress reports whether s is 0x followed by 40 hex characters.
func IsAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// IsBlockNumber reports whether s is a non-empty run of decimal digits.
func IsBlockNumber(s string) bool {
	return blockPattern.MatchString(s)
}

// BatchNumber strips an optional case-insensitive "batch:" prefix.
// ok is false when the rest is not a decimal number.
func BatchNumber(s string) (number string, ok bool) {
	if batchPattern.MatchString(s) {
		return s[len("batch:"):], true
	}
	if blockPattern.MatchString(s) {
		return s, true
	}
	return "", false
}

var (
	// ErrEmptyQuery is returned for blank input.
	ErrEmptyQuery = errors.New("Please enter a search term")
	// ErrUnrecognizedQuery is returned when no rule matches.
	ErrUnrecognizedQuery = errors.New("Invalid search format. Try an address, transaction hash, block number, or name.")
)

// Target is where a query navigates to.
type Target struct {
	Query    string   `json:"query"`
	Category Category `json:"category"`
	Path     string   `json:"target"`
}

// Resolve trims the raw query once, classifies it and builds the route.
func Resolve(rawQuery string) (Target, error) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return Target{Category: CategoryUnknown}, ErrEmptyQuery
	}

	category := Classify(query)
	target := Target{Query: query, Category: category}

	switch category {
	case CategoryTransaction:
		target.Path = "/tx/" + query
	case CategoryAddress:
		target.Path = "/address/" + query
	case CategoryBlock:
		target.Path = "/block/" + query
	case CategoryBatch:
		number, _ := BatchNumber(query)
		target.Path = "/batch/" + number
	case CategoryName:
		target.Path = "/name/" + query
	default:
		return target, ErrUnrecognizedQuery
	}
	return target, nil
}

// Suggestion is an example query shown under the search box.
type Suggestion struct {
	Type    string
	Example string
}

// Suggestions returns the example queries, one per searchable kind.
func Suggestions() []Suggestion {
	return []Suggestion{
		{Type: "Address", Example: "0x742d35Cc6634C0532925a3b8D4C9db96c4b4d8b"},
		{Type: "Transaction", Example: "0x1234567890abcdef..."},
		{Type: "Block", Example: "12345"},
		{Type: "Batch", Example: "batch:123"},
		{Type: "Name", Example: "alice"},
	}
}
