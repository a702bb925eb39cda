/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Declaration blocks of rules are parsed with package douceur. Selectors are
not parsed from text, rules are created from pre-parsed selector paths:

    r, err := douceuradapter.NewRule(
        selector.P(selector.ID("main"), selector.Child(), selector.Class("bar")),
        10,
        "color: red; padding: 1em 2em !important")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/selector"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	path     selector.Path
	priority int
	decl     []*css.Declaration
}

// NewRule creates a rule from a selector path, a priority and a CSS
// declaration block, without the surrounding braces. Compound properties like
// "padding" are split up into their individual components.
func NewRule(path selector.Path, priority int, block string) (*Rule, error) {
	// douceur drops the value of a final declaration without a terminating ';'
	if block = strings.TrimSpace(block); block != "" && !strings.HasSuffix(block, ";") {
		block += ";"
	}
	decl, err := parser.ParseDeclarations(block)
	if err != nil {
		return nil, fmt.Errorf("declarations for %s: %w", path, err)
	}
	r := &Rule{path: path, priority: priority}
	for _, d := range decl {
		if !style.IsCompound(d.Property) {
			r.decl = append(r.decl, d)
			continue
		}
		kv, err := style.SplitCompoundProperty(d.Property, style.Property(d.Value))
		if err != nil {
			return nil, fmt.Errorf("declarations for %s: %w", path, err)
		}
		for _, p := range kv {
			r.decl = append(r.decl, &css.Declaration{
				Property:  p.Key,
				Value:     p.Value.String(),
				Important: d.Important,
			})
		}
	}
	tracer().Debugf("rule %s with %d declarations", path, len(r.decl))
	return r, nil
}

// Selector returns the selector path of the rule.
func (r *Rule) Selector() selector.Path {
	return r.path
}

// Priority returns the priority of the rule.
func (r *Rule) Priority() int {
	return r.priority
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r *Rule) Properties() []string {
	props := make([]string, 0, len(r.decl))
	for _, d := range r.decl {
		props = append(props, d.Property)
	}
	return props
}

// Declarations returns the declarations of the rule in source order,
// including keys declared more than once.
func (r *Rule) Declarations() []style.KeyValue {
	kv := make([]style.KeyValue, len(r.decl))
	for i, d := range r.decl {
		kv[i] = style.KeyValue{Key: d.Property, Value: style.Property(d.Value)}
	}
	return kv
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r *Rule) Value(key string) style.Property {
	if d := r.find(key); d != nil {
		return style.Property(d.Value)
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r *Rule) IsImportant(key string) bool {
	if d := r.find(key); d != nil {
		return d.Important
	}
	return false
}

func (r *Rule) find(key string) *css.Declaration {
	for i := len(r.decl) - 1; i >= 0; i-- {
		if r.decl[i].Property == key {
			return r.decl[i]
		}
	}
	return nil
}

func (r *Rule) String() string {
	s := r.path.String() + " {"
	for _, d := range r.decl {
		s += " " + d.String()
	}
	return s + " }"
}

var _ cssom.Rule = &Rule{}

// Sheet is an adapter for interface cssom.StyleSheet.
// The zero value is an empty style sheet.
type Sheet struct {
	rules []cssom.Rule
}

// NewSheet creates a style sheet from rules.
func NewSheet(rules ...*Rule) *Sheet {
	sheet := &Sheet{}
	for _, r := range rules {
		sheet.rules = append(sheet.rules, r)
	}
	return sheet
}

// Add creates a rule and appends it to the style sheet.
func (sheet *Sheet) Add(path selector.Path, priority int, block string) error {
	r, err := NewRule(path, priority, block)
	if err != nil {
		return err
	}
	sheet.rules = append(sheet.rules, r)
	return nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *Sheet) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.rules))
	copy(rules, sheet.rules)
	return rules
}

var _ cssom.StyleSheet = &Sheet{}
