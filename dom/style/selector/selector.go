package selector

import (
	"errors"
	"fmt"
)

// Kind is an enum type for selector tokens.
type Kind uint8

// Enum values for type Kind
const (
	KindGlobal         Kind = iota // `*`
	KindType                       // e.g. `div`
	KindClass                      // e.g. `.foo`
	KindID                         // e.g. `#main`
	KindPseudo                     // e.g. `:first-child`
	KindChildren                   // descendant combinator ` `
	KindDirectChildren             // child combinator `>`
)

// Selector is a token of a selector path: either a simple selector or a
// combinator. Selector is a closed variant; Name is used by KindType, KindClass
// and KindID, Pseudo by KindPseudo only.
//
// Selectors are comparable with ==.
type Selector struct {
	Kind   Kind
	Name   string
	Pseudo Pseudo
}

// Global creates the universal selector `*`.
func Global() Selector {
	return Selector{Kind: KindGlobal}
}

// Type creates a type selector, e.g. `div`.
func Type(t string) Selector {
	return Selector{Kind: KindType, Name: t}
}

// Class creates a class selector, e.g. `.foo`.
func Class(c string) Selector {
	return Selector{Kind: KindClass, Name: c}
}

// ID creates an id selector, e.g. `#main`.
func ID(id string) Selector {
	return Selector{Kind: KindID, Name: id}
}

// PseudoClass creates a pseudo-class constraint, e.g. `:hover`.
func PseudoClass(p Pseudo) Selector {
	return Selector{Kind: KindPseudo, Pseudo: p}
}

// Descendant creates a descendant combinator (`div p`).
func Descendant() Selector {
	return Selector{Kind: KindChildren}
}

// Child creates a direct-child combinator (`div > p`).
func Child() Selector {
	return Selector{Kind: KindDirectChildren}
}

// IsCombinator is a predicate for combinator tokens.
func (s Selector) IsCombinator() bool {
	return s.Kind == KindChildren || s.Kind == KindDirectChildren
}

// IsInteraction is a predicate for interaction-state pseudo-classes,
// i.e. :hover, :active and :focus.
func (s Selector) IsInteraction() bool {
	return s.Kind == KindPseudo && s.Pseudo.IsInteraction()
}

func (s Selector) String() string {
	switch s.Kind {
	case KindGlobal:
		return "*"
	case KindType:
		return s.Name
	case KindClass:
		return "." + s.Name
	case KindID:
		return "#" + s.Name
	case KindPseudo:
		return s.Pseudo.String()
	case KindChildren:
		return " "
	case KindDirectChildren:
		return " > "
	}
	return fmt.Sprintf("<?%d>", s.Kind)
}

// --- Paths -----------------------------------------------------------------

// Path is a selector path: simple selectors interleaved with combinators,
// ordered from the outermost ancestor to the subject of the rule.
type Path []Selector

// P is a convenience constructor for paths.
func P(tokens ...Selector) Path {
	return Path(tokens)
}

func (p Path) String() string {
	s := ""
	for _, sel := range p {
		s += sel.String()
	}
	return s
}

// Errors flagged by Validate.
var (
	ErrEmptyPath          = errors.New("selector path is empty")
	ErrBoundaryCombinator = errors.New("selector path starts or ends with a combinator")
	ErrAdjacentCombinator = errors.New("selector path contains adjacent combinators")
	ErrMisplacedState     = errors.New("interaction pseudo-class outside of the last selector group")
)

// Validate checks a path for well-formedness. Matching does not require
// validated paths (malformed paths simply never match), but rule repositories
// may use Validate to reject rules early.
//
// Interaction pseudo-classes in groups other than the rightmost one are
// reported, as they will never match.
func (p Path) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if p[0].IsCombinator() || p[len(p)-1].IsCombinator() {
		tracer().Debugf("selector path %q has a combinator at its boundary", p)
		return ErrBoundaryCombinator
	}
	lastGroup := true
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].IsCombinator() {
			if p[i-1].IsCombinator() { // i > 0, as p[0] is not a combinator
				return ErrAdjacentCombinator
			}
			lastGroup = false
		} else if p[i].IsInteraction() && !lastGroup {
			tracer().Debugf("selector path %q has pseudo-class %s in a non-final group", p, p[i])
			return fmt.Errorf("%w: %s", ErrMisplacedState, p[i])
		}
	}
	return nil
}

// LastGroup returns the rightmost group of simple selectors of a path, i.e. the
// group which has to match the subject of a rule.
func (p Path) LastGroup() Group {
	it := NewGroupIterator(p)
	g, _, _ := it.Next()
	return g
}
