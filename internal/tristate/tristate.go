// Package tristate provides an optional boolean used by column filter records.
//
// A [Bool] is either [True] (forced include), [False] (forced exclude) or
// [Unset] (no preference). The zero value is [Unset], so a missing map entry and
// an entry explicitly holding [Unset] read the same way.
package tristate

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Bool is a boolean that may be left unset.
type Bool uint8

const (
	// Unset means no preference.
	Unset Bool = iota
	// True forces the option on.
	True
	// False forces the option off.
	False
)

// Of converts a plain bool into a defined Bool.
func Of(b bool) Bool {
	if b {
		return True
	}
	return False
}

// FromPtr converts a *bool, treating nil as Unset.
func FromPtr(b *bool) Bool {
	if b == nil {
		return Unset
	}
	return Of(*b)
}

// Defined reports whether the value is True or False.
func (b Bool) Defined() bool {
	return b == True || b == False
}

// Value returns the boolean and whether it is defined.
func (b Bool) Value() (value bool, ok bool) {
	switch b {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// Is reports whether the value is defined and equal to v.
func (b Bool) Is(v bool) bool {
	got, ok := b.Value()
	return ok && got == v
}

// Ptr returns a pointer to the boolean, or nil when unset.
func (b Bool) Ptr() *bool {
	v, ok := b.Value()
	if !ok {
		return nil
	}
	return &v
}

// Not flips a defined value. Unset stays Unset.
func (b Bool) Not() Bool {
	switch b {
	case True:
		return False
	case False:
		return True
	default:
		return Unset
	}
}

// String returns "true", "false" or "unset".
func (b Bool) String() string {
	switch b {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// MarshalJSON encodes Unset as null.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Ptr())
}

// UnmarshalJSON accepts true, false or null.
func (b *Bool) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("tristate: %w", err)
	}
	*b = FromPtr(v)
	return nil
}

// MarshalYAML encodes Unset as null.
func (b Bool) MarshalYAML() (any, error) {
	return b.Ptr(), nil
}

// UnmarshalYAML accepts true, false, null or an empty value.
func (b *Bool) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" || node.Value == "" {
		*b = Unset
		return nil
	}
	var v bool
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("tristate: line %d: %w", node.Line, err)
	}
	*b = Of(v)
	return nil
}
