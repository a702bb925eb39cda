package cssom

import (
	"sort"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/selector"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// Selector paths of rules are expected to be parsed already and are
// treated as immutable.
//
// See interface StyleSheet.
type Rule interface {
	Selector() selector.Path     // the selector path of the rule
	Priority() int               // higher priorities are applied later
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// SortByPriority returns the rules ordered by ascending priority. The sort
// is stable: rules of equal priority keep their order from the style sheet.
// The input slice is not modified.
func SortByPriority(rules []Rule) []Rule {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return sorted
}
