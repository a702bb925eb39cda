package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.cssom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. Matching does not interpret property
// values, they are handed through to clients of the cascade as is.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// IsCompound returns true for shortcut properties which SplitCompoundProperty
// is able to split up.
func IsCompound(key string) bool {
	switch key {
	case "margin", "margins", "padding", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
//
// "margins" is accepted as an alias for "margin".
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin", "margins":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	tracer().Debugf("not a compound property: %s", key)
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s, have %d", p(pre, suf, "*"), l)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	switch l {
	case 1: // all four
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	case 2: // vertical | horizontal
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
	case 3: // top | horizontal | bottom
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
	case 4:
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
