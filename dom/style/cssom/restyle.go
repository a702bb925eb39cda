package cssom

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/css"
	"github.com/npillmayer/cascade/dom/style/selector"
	"golang.org/x/sync/errgroup"
)

// ErrNilStyleSheet is flagged if Restyle is called without a style sheet.
var ErrNilStyleSheet = errors.New("style sheet is nil")

// ErrNilTree is flagged if Restyle is called without a tree.
var ErrNilTree = errors.New("tree to style is nil")

type config struct {
	workers int
	matcher css.Matcher
}

// Option is a type to help configuring a restyle pass.
type Option func(config) config

// Workers sets the maximum number of goroutines matching nodes in parallel.
// n ≤ 0 selects the default, which is GOMAXPROCS.
func Workers(n int) Option {
	return func(c config) config {
		c.workers = n
		return c
	}
}

// WithMatcher sets the matcher to use, e.g. one with css.LegacyNthParity.
func WithMatcher(m css.Matcher) Option {
	return func(c config) config {
		c.matcher = m
		return c
	}
}

// Styling is the result of a restyle pass: for each node and each
// interaction state, the rules applying to the node.
type Styling struct {
	info  css.CascadeInfoMap
	rules [][len(selector.States)][]Rule
}

// Len returns the number of nodes styled.
func (s *Styling) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// CascadeInfo returns the cascade info computed for the styled tree.
func (s *Styling) CascadeInfo() css.CascadeInfoMap {
	if s == nil {
		return nil
	}
	return s.info
}

// Rules returns the rules matching node n in interaction state state, in
// ascending priority. Unknown nodes and states return nil.
func (s *Styling) Rules(n dom.NodeID, state selector.Pseudo) []Rule {
	i := stateIndex(state)
	if s == nil || i < 0 || int(n) >= len(s.rules) {
		return nil
	}
	return s.rules[n][i]
}

// declarer is implemented by rules able to list their declarations in source
// order, repeated keys included.
type declarer interface {
	Declarations() []style.KeyValue
}

// Declarations returns the declarations of all the rules matching node n in
// interaction state state. Declarations are concatenated in rule order,
// properties set more than once occur more than once.
func (s *Styling) Declarations(n dom.NodeID, state selector.Pseudo) []style.KeyValue {
	var decls []style.KeyValue
	for _, r := range s.Rules(n, state) {
		decls = append(decls, RuleDeclarations(r)...)
	}
	return decls
}

// RuleDeclarations lists the declarations of a rule. Rules which cannot tell
// repeated keys apart report every key once, with its effective value.
func RuleDeclarations(r Rule) []style.KeyValue {
	if d, ok := r.(declarer); ok {
		return d.Declarations()
	}
	var decls []style.KeyValue
	seen := make(map[string]bool)
	for _, key := range r.Properties() {
		if seen[key] {
			continue
		}
		seen[key] = true
		decls = append(decls, style.KeyValue{Key: key, Value: r.Value(key)})
	}
	return decls
}

func stateIndex(state selector.Pseudo) int {
	for i, st := range selector.States {
		if st == state {
			return i
		}
	}
	return -1
}

// Restyle matches all the rules of a style sheet against all the nodes of a
// tree, for each interaction state in selector.States.
//
// Restyle computes the cascade info for the tree, thus it will always reflect
// the current structure of tree. Nodes are matched in parallel, tree must not
// be modified until Restyle returns. If ctx is cancelled, Restyle stops
// matching and returns the context's error.
func Restyle(ctx context.Context, tree *dom.Tree, sheet StyleSheet, opts ...Option) (*Styling, error) {
	if sheet == nil {
		return nil, ErrNilStyleSheet
	}
	if tree == nil {
		return nil, ErrNilTree
	}
	c := config{}
	for _, option := range opts {
		c = option(c)
	}
	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	// pre-filter rules by the interaction state of their rightmost group
	rules := SortByPriority(sheet.Rules())
	var candidates [len(selector.States)][]Rule
	for i, state := range selector.States {
		for _, r := range rules {
			if css.EndsWith(r.Selector(), state) {
				candidates[i] = append(candidates[i], r)
			}
		}
	}
	s := &Styling{
		info:  css.ComputeCascadeInfo(tree),
		rules: make([][len(selector.States)][]Rule, tree.Len()),
	}
	tracer().Debugf("restyle: %d nodes, %d rules, %d workers", tree.Len(), len(rules), c.workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := 0; i < tree.Len(); i++ {
		if gctx.Err() != nil {
			break
		}
		n := dom.NodeID(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j, state := range selector.States {
				for _, r := range candidates[j] {
					ok, err := c.matcher.Match(r.Selector(), n, tree, s.info, state)
					if err != nil {
						return fmt.Errorf("restyle of node %s: %w", n, err)
					}
					if ok {
						s.rules[n][j] = append(s.rules[n][j], r)
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		tracer().Errorf("restyle: %v", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil { // cancelled before any node failed
		return nil, err
	}
	return s, nil
}
