// internal/tron/signer.go
package tron

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Signer signs transactions with a secp256k1 key. TRON shares
// Ethereum's curve and account derivation, so go-ethereum's crypto
// primitives apply directly; only the txid hash differs (sha256 of the
// raw transaction bytes instead of keccak).
type Signer struct {
	key *ecdsa.PrivateKey
}

func NewSigner(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return &Signer{key: key}, nil
}

// Address returns the base58check account derived from the key.
func (s *Signer) Address() string {
	return FromAccount(crypto.PubkeyToAddress(s.key.PublicKey))
}

// SignRawData hashes raw transaction bytes with sha256 and returns the
// 65-byte recoverable signature as hex.
func (s *Signer) SignRawData(rawDataHex string) (string, error) {
	raw, err := hex.DecodeString(rawDataHex)
	if err != nil {
		return "", fmt.Errorf("decode raw_data_hex: %w", err)
	}
	digest := sha256.Sum256(raw)
	sig, err := crypto.Sign(digest[:], s.key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}
	return hex.EncodeToString(sig), nil
}
