package classifier

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidRule is returned by New when a table row cannot match anything
// meaningful.
var ErrInvalidRule = errors.New("invalid classifier rule")

// Rule is one row of the shape table: an address has the shape of Type on
// Network when its character count is one of Lengths and it starts with one
// of Prefixes.
type Rule struct {
	Type     AddressType
	Network  Network
	Lengths  []int
	Prefixes []string
}

// Table is an ordered list of rules.
type Table []Rule

// Base58Check lengths are heuristics: leading zero bytes compress to a
// single '1' each, so real addresses can occasionally fall outside them.
var (
	p2pkhLengths = []int{33, 34}
	p2shLengths  = []int{34, 35}
)

// DefaultTable returns a fresh copy of the mainnet and testnet shape table.
func DefaultTable() Table {
	return Table{
		{Type: P2PKH, Network: Mainnet, Lengths: p2pkhLengths, Prefixes: []string{"1"}},
		{Type: P2PKH, Network: Testnet, Lengths: p2pkhLengths, Prefixes: []string{"m", "n"}},
		{Type: P2SH, Network: Mainnet, Lengths: p2shLengths, Prefixes: []string{"3"}},
		{Type: P2SH, Network: Testnet, Lengths: p2shLengths, Prefixes: []string{"2"}},
		{Type: P2WPKH, Network: Mainnet, Lengths: []int{42}, Prefixes: []string{"bc1q"}},
		{Type: P2WPKH, Network: Testnet, Lengths: []int{42}, Prefixes: []string{"tb1q"}},
		{Type: P2WSH, Network: Mainnet, Lengths: []int{62}, Prefixes: []string{"bc1q"}},
		{Type: P2WSH, Network: Testnet, Lengths: []int{62}, Prefixes: []string{"tb1q"}},
		{Type: P2TR, Network: Mainnet, Lengths: []int{62}, Prefixes: []string{"bc1p"}},
		{Type: P2TR, Network: Testnet, Lengths: []int{62}, Prefixes: []string{"tb1p"}},
	}.Clone()
}

// RegtestRules returns the regtest segwit rows. Regtest Base58 addresses
// share the testnet prefixes and are already covered by DefaultTable.
func RegtestRules() Table {
	return Table{
		{Type: P2WPKH, Network: Regtest, Lengths: []int{44}, Prefixes: []string{"bcrt1q"}},
		{Type: P2WSH, Network: Regtest, Lengths: []int{64}, Prefixes: []string{"bcrt1q"}},
		{Type: P2TR, Network: Regtest, Lengths: []int{64}, Prefixes: []string{"bcrt1p"}},
	}.Clone()
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, r := range t {
		out[i] = Rule{
			Type:     r.Type,
			Network:  r.Network,
			Lengths:  append([]int(nil), r.Lengths...),
			Prefixes: append([]string(nil), r.Prefixes...),
		}
	}
	return out
}

// WithLengths returns a copy of the table where every rule of type typ
// accepts exactly the given lengths.
func (t Table) WithLengths(typ AddressType, lengths ...int) Table {
	out := t.Clone()
	for i := range out {
		if out[i].Type == typ {
			out[i].Lengths = append([]int(nil), lengths...)
		}
	}
	return out
}

// Validate checks every rule in the table.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvalidRule)
	}
	for i, r := range t {
		if err := r.validate(); err != nil {
			return fmt.Errorf("rule %d (%s/%s): %w", i, r.Type, r.Network, err)
		}
	}
	return nil
}

func (r Rule) validate() error {
	if !r.Type.valid() {
		return fmt.Errorf("%w: unknown address type %d", ErrInvalidRule, int(r.Type))
	}
	if !r.Network.valid() {
		return fmt.Errorf("%w: unknown network %d", ErrInvalidRule, int(r.Network))
	}
	if len(r.Lengths) == 0 {
		return fmt.Errorf("%w: no lengths", ErrInvalidRule)
	}
	for _, n := range r.Lengths {
		if n <= 0 {
			return fmt.Errorf("%w: length %d must be positive", ErrInvalidRule, n)
		}
	}
	if len(r.Prefixes) == 0 {
		return fmt.Errorf("%w: no prefixes", ErrInvalidRule)
	}
	for _, p := range r.Prefixes {
		if p == "" {
			return fmt.Errorf("%w: empty prefix", ErrInvalidRule)
		}
	}
	return nil
}

// matches reports whether address has this rule's shape. The length check
// runs first since it is the cheaper filter.
func (r Rule) matches(address string) bool {
	lengthOK := false
	for _, n := range r.Lengths {
		if hasCharacterCount(address, n) {
			lengthOK = true
			break
		}
	}
	if !lengthOK {
		return false
	}
	for _, p := range r.Prefixes {
		if strings.HasPrefix(address, p) {
			return true
		}
	}
	return false
}

// hasCharacterCount reports whether address holds exactly n Unicode scalar
// values. A rune takes one to four bytes in UTF-8, which bounds the byte
// length before counting.
func hasCharacterCount(address string, n int) bool {
	if len(address) < n || len(address) > utf8.UTFMax*n {
		return false
	}
	return utf8.RuneCountInString(address) == n
}
