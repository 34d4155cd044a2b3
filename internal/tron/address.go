// internal/tron/address.go
package tron

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
)

// AddressPrefix is the byte every mainnet TRON address starts with
// (the leading "T" in base58check form).
const AddressPrefix = 0x41

// rawAddressLen is prefix byte + 20-byte account.
const rawAddressLen = 21

// DecodeAddress decodes a base58check TRON address into its 21 raw
// bytes and verifies prefix and checksum.
func DecodeAddress(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("decode base58: %w", err)
	}
	if len(raw) != rawAddressLen+4 {
		return nil, fmt.Errorf("address must decode to %d bytes, got %d", rawAddressLen+4, len(raw))
	}
	payload, checksum := raw[:rawAddressLen], raw[rawAddressLen:]
	if payload[0] != AddressPrefix {
		return nil, fmt.Errorf("address prefix must be 0x%02x, got 0x%02x", AddressPrefix, payload[0])
	}
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(checksum, second[:4]) {
		return nil, errors.New("address checksum mismatch")
	}
	return payload, nil
}

// EncodeAddress encodes 21 raw address bytes as base58check.
func EncodeAddress(raw []byte) string {
	first := sha256.Sum256(raw)
	second := sha256.Sum256(first[:])
	return base58.Encode(append(raw, second[:4]...))
}

// AddressToHex converts a base58check address into the 21-byte hex
// form the node API expects.
func AddressToHex(address string) (string, error) {
	raw, err := DecodeAddress(address)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// AccountOf returns the 20-byte account part of an address, which is
// what ABI parameter encoding uses.
func AccountOf(address string) (common.Address, error) {
	raw, err := DecodeAddress(address)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(raw[1:]), nil
}

// FromAccount converts a 20-byte account into a base58check address.
func FromAccount(account common.Address) string {
	raw := make([]byte, 0, rawAddressLen)
	raw = append(raw, AddressPrefix)
	raw = append(raw, account.Bytes()...)
	return EncodeAddress(raw)
}
