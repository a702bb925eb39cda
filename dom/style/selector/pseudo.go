package selector

import "fmt"

// PseudoKind is an enum type for pseudo-class constraints.
type PseudoKind uint8

// Enum values for type PseudoKind
const (
	NoPseudo PseudoKind = iota // no constraint, used for "no interaction state"
	PseudoFirst                // :first-child
	PseudoLast                 // :last-child
	PseudoNthChild             // :nth-child(…)
	PseudoHover                // :hover
	PseudoActive               // :active
	PseudoFocus                // :focus
)

// Pseudo is a pseudo-class constraint. Nth is used by PseudoNthChild only.
//
// Pseudos are comparable with ==.
type Pseudo struct {
	Kind PseudoKind
	Nth  NthChild
}

// Pre-built pseudo-classes without arguments. None is the zero value and
// denotes "no constraint", e.g. when a node is in no interaction state.
var (
	None   = Pseudo{}
	First  = Pseudo{Kind: PseudoFirst}
	Last   = Pseudo{Kind: PseudoLast}
	Hover  = Pseudo{Kind: PseudoHover}
	Active = Pseudo{Kind: PseudoActive}
	Focus  = Pseudo{Kind: PseudoFocus}
)

// Nth creates an :nth-child(…) pseudo-class.
func Nth(n NthChild) Pseudo {
	return Pseudo{Kind: PseudoNthChild, Nth: n}
}

// IsInteraction is a predicate for :hover, :active and :focus.
func (p Pseudo) IsInteraction() bool {
	return p.Kind == PseudoHover || p.Kind == PseudoActive || p.Kind == PseudoFocus
}

// States lists the interaction states a node may be styled for, including
// None for "no interaction".
var States = [...]Pseudo{None, Hover, Active, Focus}

func (p Pseudo) String() string {
	switch p.Kind {
	case NoPseudo:
		return ""
	case PseudoFirst:
		return ":first-child"
	case PseudoLast:
		return ":last-child"
	case PseudoNthChild:
		return ":nth-child(" + p.Nth.String() + ")"
	case PseudoHover:
		return ":hover"
	case PseudoActive:
		return ":active"
	case PseudoFocus:
		return ":focus"
	}
	return fmt.Sprintf(":<?%d>", p.Kind)
}

// --- nth-child -------------------------------------------------------------

// NthKind is an enum type for :nth-child(…) arguments.
type NthKind uint8

// Enum values for type NthKind
const (
	NthNumber  NthKind = iota // :nth-child(3)
	NthEven                   // :nth-child(even)
	NthOdd                    // :nth-child(odd)
	NthPattern                // :nth-child(3n+1)
)

// NthChild is the argument of an :nth-child(…) pseudo-class. Positions are
// 1-based. Number is used by NthNumber, Repeat and Offset by NthPattern.
type NthChild struct {
	Kind   NthKind
	Number uint32
	Repeat uint32
	Offset uint32
}

// Number creates :nth-child(n).
func Number(n uint32) NthChild {
	return NthChild{Kind: NthNumber, Number: n}
}

// Even creates :nth-child(even).
func Even() NthChild {
	return NthChild{Kind: NthEven}
}

// Odd creates :nth-child(odd).
func Odd() NthChild {
	return NthChild{Kind: NthOdd}
}

// Pattern creates :nth-child(<repeat>n+<offset>).
func Pattern(repeat, offset uint32) NthChild {
	return NthChild{Kind: NthPattern, Repeat: repeat, Offset: offset}
}

func (n NthChild) String() string {
	switch n.Kind {
	case NthNumber:
		return fmt.Sprintf("%d", n.Number)
	case NthEven:
		return "even"
	case NthOdd:
		return "odd"
	case NthPattern:
		return fmt.Sprintf("%dn+%d", n.Repeat, n.Offset)
	}
	return "?"
}
