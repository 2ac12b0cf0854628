// Package fixture derives real addresses from secp256k1 keys. Tests use it
// to check the classifier against genuine encodings instead of hand-picked
// strings, plus look-alike addresses from other chains.
package fixture

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/mr-tron/base58"

	"github.com/Amr-9/AddrScope/pkg/classifier"
)

// Base58Check version bytes.
const (
	mainnetPubKeyHash = 0x00
	mainnetScriptHash = 0x05
	testnetPubKeyHash = 0x6f
	testnetScriptHash = 0xc4
	tronMainnet       = 0x41
)

// hrp returns the Bech32 human-readable part for a network.
func hrp(net classifier.Network) (string, error) {
	switch net {
	case classifier.Mainnet:
		return "bc", nil
	case classifier.Testnet:
		return "tb", nil
	case classifier.Regtest:
		return "bcrt", nil
	default:
		return "", fmt.Errorf("unknown network %d", int(net))
	}
}

// DeriveAddress derives an address of the given type and network from a
// public key. P2SH addresses wrap a P2WPKH program, P2WSH addresses commit to
// a single-key OP_CHECKSIG script.
func DeriveAddress(pubKey *btcec.PublicKey, addrType classifier.AddressType, net classifier.Network) (string, error) {
	switch addrType {
	case classifier.P2PKH:
		version := byte(mainnetPubKeyHash)
		if net != classifier.Mainnet {
			version = testnetPubKeyHash
		}
		return Base58CheckEncode(version, hash160(pubKey.SerializeCompressed())), nil

	case classifier.P2SH:
		version := byte(mainnetScriptHash)
		if net != classifier.Mainnet {
			version = testnetScriptHash
		}
		return Base58CheckEncode(version, hash160(p2wpkhScript(pubKey))), nil

	case classifier.P2WPKH:
		return segwitAddress(net, 0, hash160(pubKey.SerializeCompressed()))

	case classifier.P2WSH:
		script := make([]byte, 0, 35)
		script = append(script, 0x21) // Push 33 bytes
		script = append(script, pubKey.SerializeCompressed()...)
		script = append(script, 0xac) // OP_CHECKSIG
		program := sha256.Sum256(script)
		return segwitAddress(net, 0, program[:])

	case classifier.P2TR:
		return segwitAddress(net, 1, taprootOutputKey(pubKey))

	default:
		return "", fmt.Errorf("unknown address type %d", int(addrType))
	}
}

// p2wpkhScript returns OP_0 <20-byte pubkey hash>.
func p2wpkhScript(pubKey *btcec.PublicKey) []byte {
	script := make([]byte, 22)
	script[0] = 0x00 // Witness version 0
	script[1] = 0x14 // Push 20 bytes
	copy(script[2:], hash160(pubKey.SerializeCompressed()))
	return script
}

// segwitAddress encodes a witness program. Version 0 uses Bech32, version 1+
// uses Bech32m.
func segwitAddress(net classifier.Network, version byte, program []byte) (string, error) {
	prefix, err := hrp(net)
	if err != nil {
		return "", err
	}

	data, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	data = append([]byte{version}, data...)

	if version == 0 {
		return bech32.Encode(prefix, data)
	}
	return bech32.EncodeM(prefix, data)
}

// taprootOutputKey returns the BIP-341 key-path-only output key:
// x(P + TaggedHash("TapTweak", x(P))*G).
func taprootOutputKey(pubKey *btcec.PublicKey) []byte {
	xOnly := schnorr.SerializePubKey(pubKey)

	tagHash := sha256.Sum256([]byte("TapTweak"))
	h := sha256.New()
	h.Write(tagHash[:])
	h.Write(tagHash[:])
	h.Write(xOnly)
	tweak := h.Sum(nil)

	var tweakScalar btcec.ModNScalar
	tweakScalar.SetByteSlice(tweak)

	var result btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&tweakScalar, &result)

	// BIP-341 tweaks the even-Y lift of the x-only key.
	evenKey, err := schnorr.ParsePubKey(xOnly)
	if err != nil {
		return xOnly
	}
	var internalKey btcec.JacobianPoint
	evenKey.AsJacobian(&internalKey)

	btcec.AddNonConst(&internalKey, &result, &result)
	result.ToAffine()

	return schnorr.SerializePubKey(btcec.NewPublicKey(&result.X, &result.Y))
}

// Base58CheckEncode encodes version || payload with a 4-byte double-SHA256
// checksum.
func Base58CheckEncode(version byte, payload []byte) string {
	data := make([]byte, 0, 1+len(payload)+4)
	data = append(data, version)
	data = append(data, payload...)

	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])

	return base58.Encode(append(data, second[:4]...))
}

// EthereumAddress returns the 0x-prefixed hex Ethereum address of a key.
// At 42 characters it has the length of a P2WPKH address.
func EthereumAddress(pubKey *btcec.PublicKey) string {
	return "0x" + hex.EncodeToString(keccakAddress(pubKey))
}

// TronAddress returns the Base58Check Tron address of a key. All Tron
// addresses start with 'T' and are 34 characters, like many Bitcoin
// Base58 addresses.
func TronAddress(pubKey *btcec.PublicKey) string {
	return Base58CheckEncode(tronMainnet, keccakAddress(pubKey))
}
