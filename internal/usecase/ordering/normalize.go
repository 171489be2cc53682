package ordering

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"mcbot/internal/domain/entities"
)

var (
	punctuation = regexp.MustCompile(`[^\w\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, turns punctuation into spaces and collapses whitespace.
func Normalize(text string) string {
	s := punctuation.ReplaceAllString(strings.ToLower(text), " ")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// foldKey is the case and whitespace insensitive key used by alias tables.
func foldKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Total sums item prices rounded to cents.
func Total(items []entities.Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price
	}
	return roundMoney(total)
}

// FormatCart renders the cart the way every handler shows it.
func FormatCart(items []entities.Item) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, "Current items:")
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %s: $%.2f", it.Name, it.Price))
	}
	return strings.Join(lines, "\n")
}

// InlineCart renders the cart on one line for LLM instructions.
func InlineCart(items []entities.Item) string {
	if len(items) == 0 {
		return "nothing yet"
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s for $%.2f", it.Name, it.Price))
	}
	return strings.Join(parts, ", ")
}
