package tron

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000001"

func TestNewSigner(t *testing.T) {
	signer, err := NewSigner(testKeyHex)
	require.NoError(t, err)
	require.NotNil(t, signer)

	// 0x prefix is tolerated.
	prefixed, err := NewSigner("0x" + testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), prefixed.Address())
}

func TestNewSigner_Invalid(t *testing.T) {
	_, err := NewSigner("not-a-key")
	assert.Error(t, err)

	_, err = NewSigner("")
	assert.Error(t, err)
}

func TestSigner_Address(t *testing.T) {
	signer, err := NewSigner(testKeyHex)
	require.NoError(t, err)

	address := signer.Address()

	// The derived address must be a valid base58check address whose
	// account part matches the key's secp256k1 account.
	raw, err := DecodeAddress(address)
	require.NoError(t, err)
	assert.Equal(t, byte(AddressPrefix), raw[0])

	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Bytes(), raw[1:])
}

func TestSigner_SignRawData(t *testing.T) {
	signer, err := NewSigner(testKeyHex)
	require.NoError(t, err)

	rawData := []byte("raw transaction bytes")
	sigHex, err := signer.SignRawData(hex.EncodeToString(rawData))
	require.NoError(t, err)

	sig, err := hex.DecodeString(sigHex)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	// The signature must recover to the signing key's public key.
	digest := sha256.Sum256(rawData)
	pub, err := crypto.SigToPub(digest[:], sig)
	require.NoError(t, err)

	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(*pub))
}

func TestSigner_SignRawData_BadHex(t *testing.T) {
	signer, err := NewSigner(testKeyHex)
	require.NoError(t, err)

	_, err = signer.SignRawData("zz")
	assert.Error(t, err)
}
