package fixture

import (
	"crypto/rand"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"
)

// GenerateKeyPair generates a new random secp256k1 key pair.
func GenerateKeyPair() (*btcec.PrivateKey, *btcec.PublicKey, error) {
	var privKeyBytes [32]byte
	if _, err := rand.Read(privKeyBytes[:]); err != nil {
		return nil, nil, err
	}

	privKey, pubKey := btcec.PrivKeyFromBytes(privKeyBytes[:])
	return privKey, pubKey, nil
}

// hash160 computes RIPEMD160(SHA256(data))
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	return ripemd.Sum(nil)
}

// keccakAddress returns the last 20 bytes of Keccak256 over the uncompressed
// public key without its 0x04 marker. Ethereum and Tron share this hash.
func keccakAddress(pubKey *btcec.PublicKey) []byte {
	hash := crypto.Keccak256(pubKey.SerializeUncompressed()[1:])
	return hash[len(hash)-20:]
}
