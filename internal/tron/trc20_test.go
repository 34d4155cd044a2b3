package tron

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackTransfer(t *testing.T) {
	param, err := packTransfer(usdtAddress, big.NewInt(1_000_000))
	require.NoError(t, err)

	// ABI encoding: address left-padded to 32 bytes, then uint256.
	assert.Equal(t,
		"000000000000000000000000a614f803b6fd780986a42c78ec9c7f77e6ded13c"+
			"00000000000000000000000000000000000000000000000000000000000f4240",
		param)
}

func TestPackTransfer_InvalidAddress(t *testing.T) {
	_, err := packTransfer("not-an-address", big.NewInt(1))
	assert.Error(t, err)
}

func TestPackBalanceOf(t *testing.T) {
	param, err := packBalanceOf(usdtAddress)
	require.NoError(t, err)

	assert.Equal(t,
		"000000000000000000000000a614f803b6fd780986a42c78ec9c7f77e6ded13c",
		param)
}
