package classifier

import "sync"

// Classifier evaluates addresses against an immutable shape table.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	table  Table
	byType map[AddressType]Table
}

// New builds a classifier from the given table. The table is copied, so later
// changes by the caller have no effect.
func New(table Table) (*Classifier, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	t := table.Clone()
	byType := make(map[AddressType]Table, len(AddressTypes))
	for _, r := range t {
		byType[r.Type] = append(byType[r.Type], r)
	}

	return &Classifier{table: t, byType: byType}, nil
}

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
)

// Default returns the shared classifier built from DefaultTable.
func Default() *Classifier {
	defaultOnce.Do(func() {
		c, err := New(DefaultTable())
		if err != nil {
			panic("classifier: default table: " + err.Error())
		}
		defaultClassifier = c
	})
	return defaultClassifier
}

// Table returns a copy of the rules the classifier was built from.
func (c *Classifier) Table() Table {
	return c.table.Clone()
}

// Is reports whether address has the shape of typ on any configured network.
func (c *Classifier) Is(address string, typ AddressType) bool {
	for _, r := range c.byType[typ] {
		if r.matches(address) {
			return true
		}
	}
	return false
}

// IsP2PKH reports a Pay-to-Pubkey-Hash shape.
func (c *Classifier) IsP2PKH(address string) bool { return c.Is(address, P2PKH) }

// IsP2SH reports a Pay-to-Script-Hash shape.
func (c *Classifier) IsP2SH(address string) bool { return c.Is(address, P2SH) }

// CouldBeP2SHP2WPKH reports whether address could be a P2WPKH program
// wrapped in P2SH. The wrapped script is invisible in the text, so this is
// the P2SH shape.
func (c *Classifier) CouldBeP2SHP2WPKH(address string) bool { return c.IsP2SH(address) }

// CouldBeP2SHP2WSH reports whether address could be a P2WSH program wrapped
// in P2SH. Like CouldBeP2SHP2WPKH it cannot be told apart from plain P2SH.
func (c *Classifier) CouldBeP2SHP2WSH(address string) bool { return c.IsP2SH(address) }

// IsP2WPKH reports a Pay-to-Witness-Pubkey-Hash shape.
func (c *Classifier) IsP2WPKH(address string) bool { return c.Is(address, P2WPKH) }

// IsP2WSH reports a Pay-to-Witness-Script-Hash shape. It shares its prefixes
// with P2WPKH and differs only in length.
func (c *Classifier) IsP2WSH(address string) bool { return c.Is(address, P2WSH) }

// IsP2TR reports a Pay-to-Taproot shape.
func (c *Classifier) IsP2TR(address string) bool { return c.Is(address, P2TR) }

// IsLegacy reports whether address looks like a legacy (P2PKH) address.
func (c *Classifier) IsLegacy(address string) bool {
	return c.IsP2PKH(address)
}

// IsNestedSegWit reports whether address looks like a P2SH address, which is
// how wrapped segwit outputs appear.
func (c *Classifier) IsNestedSegWit(address string) bool {
	return c.IsP2SH(address)
}

// IsWrappedSegWit is an alias of IsNestedSegWit.
func (c *Classifier) IsWrappedSegWit(address string) bool {
	return c.IsNestedSegWit(address)
}

// IsSegWitNative reports a native segwit v0 shape (P2WPKH or P2WSH).
func (c *Classifier) IsSegWitNative(address string) bool {
	return c.IsP2WPKH(address) || c.IsP2WSH(address)
}

// IsSegWitV0 reports native segwit v0 or P2SH, since wrapped segwit
// addresses are P2SH addresses in text form.
func (c *Classifier) IsSegWitV0(address string) bool {
	return c.IsSegWitNative(address) || c.IsP2SH(address)
}

// IsSegWitV1 is an alias of IsTaproot.
func (c *Classifier) IsSegWitV1(address string) bool {
	return c.IsTaproot(address)
}

// IsTaproot reports a taproot (P2TR) shape.
func (c *Classifier) IsTaproot(address string) bool {
	return c.IsP2TR(address)
}

// Types returns every address type whose shape address matches.
func (c *Classifier) Types(address string) []AddressType {
	var types []AddressType
	for _, typ := range AddressTypes {
		if c.Is(address, typ) {
			types = append(types, typ)
		}
	}
	return types
}

// Network returns the network of the first rule address matches.
func (c *Classifier) Network(address string) (Network, bool) {
	for _, r := range c.table {
		if r.matches(address) {
			return r.Network, true
		}
	}
	return 0, false
}

// IsLegacy reports whether address looks like a legacy (P2PKH) address.
func IsLegacy(address string) bool { return Default().IsLegacy(address) }

// IsNestedSegWit reports whether address looks like a P2SH address.
func IsNestedSegWit(address string) bool { return Default().IsNestedSegWit(address) }

// IsWrappedSegWit is an alias of IsNestedSegWit.
func IsWrappedSegWit(address string) bool { return Default().IsWrappedSegWit(address) }

// IsSegWitNative reports a native segwit v0 shape (P2WPKH or P2WSH).
func IsSegWitNative(address string) bool { return Default().IsSegWitNative(address) }

// IsSegWitV0 reports native segwit v0 or P2SH.
func IsSegWitV0(address string) bool { return Default().IsSegWitV0(address) }

// IsSegWitV1 is an alias of IsTaproot.
func IsSegWitV1(address string) bool { return Default().IsSegWitV1(address) }

// IsTaproot reports a taproot (P2TR) shape.
func IsTaproot(address string) bool { return Default().IsTaproot(address) }
