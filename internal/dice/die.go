package dice

import "fmt"

// DieSpec pairs a die's display name with its number of sides.
type DieSpec struct {
	Name  string
	Sides int
}

func (d DieSpec) String() string {
	return d.Name
}

// standardSet is the fixed die set, ascending by side count.
var standardSet = [...]DieSpec{
	{Name: "d2", Sides: 2},
	{Name: "d4", Sides: 4},
	{Name: "d6", Sides: 6},
	{Name: "d8", Sides: 8},
	{Name: "d10", Sides: 10},
	{Name: "d12", Sides: 12},
	{Name: "d20", Sides: 20},
	{Name: "d100", Sides: 100},
}

// All returns the die set in display order. The returned slice is a copy.
func All() []DieSpec {
	out := make([]DieSpec, len(standardSet))
	copy(out, standardSet[:])
	return out
}

// Names returns the die names in display order.
func Names() []string {
	names := make([]string, len(standardSet))
	for i, d := range standardSet {
		names[i] = d.Name
	}
	return names
}

// Lookup resolves a die by name.
func Lookup(name string) (DieSpec, bool) {
	for _, d := range standardSet {
		if d.Name == name {
			return d, true
		}
	}
	return DieSpec{}, false
}

// MustLookup resolves a die by name and panics if the name is not part of
// the die set. Callers that take names from user input should use Lookup.
func MustLookup(name string) DieSpec {
	d, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("dice: unknown die %q", name))
	}
	return d
}

// BySides resolves a die by its side count.
func BySides(sides int) (DieSpec, bool) {
	for _, d := range standardSet {
		if d.Sides == sides {
			return d, true
		}
	}
	return DieSpec{}, false
}
