// Package classifier categorizes Bitcoin addresses by their surface form.
// Only the character count and the leading characters are inspected: no
// Base58Check or Bech32/Bech32m decoding and no checksum verification.
// A match means "if valid, this address has the shape of that type".
package classifier

// AddressType represents a Bitcoin output script family as seen from its address.
type AddressType int

const (
	P2PKH  AddressType = iota + 1 // Pay-to-Pubkey-Hash - Legacy (1..., m..., n...)
	P2SH                          // Pay-to-Script-Hash - Nested SegWit (3..., 2...)
	P2WPKH                        // Pay-to-Witness-Pubkey-Hash - Native SegWit v0 (bc1q..., 42 chars)
	P2WSH                         // Pay-to-Witness-Script-Hash - Native SegWit v0 (bc1q..., 62 chars)
	P2TR                          // Pay-to-Taproot - SegWit v1 (bc1p...)
)

// AddressTypes lists every known type in table order.
var AddressTypes = []AddressType{P2PKH, P2SH, P2WPKH, P2WSH, P2TR}

// String returns the address type name.
func (a AddressType) String() string {
	switch a {
	case P2PKH:
		return "P2PKH"
	case P2SH:
		return "P2SH"
	case P2WPKH:
		return "P2WPKH"
	case P2WSH:
		return "P2WSH"
	case P2TR:
		return "P2TR"
	default:
		return "Unknown"
	}
}

// Description returns a human-readable description of an address type.
func (a AddressType) Description() string {
	switch a {
	case P2PKH:
		return "Legacy (1...)"
	case P2SH:
		return "Nested SegWit (3...)"
	case P2WPKH:
		return "Native SegWit pubkey hash (bc1q..., 42)"
	case P2WSH:
		return "Native SegWit script hash (bc1q..., 62)"
	case P2TR:
		return "Taproot (bc1p...)"
	default:
		return "Unknown"
	}
}

// IsBech32 returns true if the address type uses Bech32/Bech32m encoding.
func (a AddressType) IsBech32() bool {
	return a == P2WPKH || a == P2WSH || a == P2TR
}

// IsBase58 returns true if the address type uses Base58Check encoding.
func (a AddressType) IsBase58() bool {
	return a == P2PKH || a == P2SH
}

func (a AddressType) valid() bool {
	return a >= P2PKH && a <= P2TR
}

// Network represents the Bitcoin network an address prefix belongs to.
type Network int

const (
	Mainnet Network = iota + 1 // bc1, 1, 3
	Testnet                    // tb1, m, n, 2 (also signet)
	Regtest                    // bcrt1
)

// String returns the network name.
func (n Network) String() string {
	switch n {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Regtest:
		return "regtest"
	default:
		return "unknown"
	}
}

func (n Network) valid() bool {
	return n >= Mainnet && n <= Regtest
}
