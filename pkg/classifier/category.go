package classifier

import "strings"

// Category is a set of address categories. Categories overlap: a P2SH
// address is both NestedSegWit and SegWitV0.
type Category uint8

const (
	Legacy Category = 1 << iota
	NestedSegWit
	SegWitNative
	SegWitV0
	SegWitV1
	Taproot
)

var categoryNames = []struct {
	cat  Category
	name string
}{
	{Legacy, "legacy"},
	{NestedSegWit, "nested-segwit"},
	{SegWitNative, "segwit-native"},
	{SegWitV0, "segwit-v0"},
	{SegWitV1, "segwit-v1"},
	{Taproot, "taproot"},
}

// Has reports whether every category in other is set.
func (c Category) Has(other Category) bool {
	return c&other == other
}

// Names returns the names of the set categories.
func (c Category) Names() []string {
	var names []string
	for _, cn := range categoryNames {
		if c.Has(cn.cat) {
			names = append(names, cn.name)
		}
	}
	return names
}

// String joins the category names with '|', or returns "none".
func (c Category) String() string {
	if c == 0 {
		return "none"
	}
	return strings.Join(c.Names(), "|")
}

// Categories evaluates all six category predicates at once.
func (c *Classifier) Categories(address string) Category {
	var cat Category
	if c.IsLegacy(address) {
		cat |= Legacy
	}
	if c.IsNestedSegWit(address) {
		cat |= NestedSegWit
	}
	if c.IsSegWitNative(address) {
		cat |= SegWitNative
	}
	if c.IsSegWitV0(address) {
		cat |= SegWitV0
	}
	if c.IsSegWitV1(address) {
		cat |= SegWitV1
	}
	if c.IsTaproot(address) {
		cat |= Taproot
	}
	return cat
}

// Categories evaluates all six category predicates with the default table.
func Categories(address string) Category { return Default().Categories(address) }
