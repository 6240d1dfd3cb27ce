package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMessageNonce(t *testing.T) {
	var nonce Nonce
	nonce[0] = 0x42

	receipts := []Receipt{
		{Type: ReceiptTypeCall},
		{Type: ReceiptTypeMessageOut, Nonce: nonce, Amount: 100},
		{Type: ReceiptTypeScriptResult, Result: ScriptResultSuccess},
	}

	got, ok := ExtractMessageNonce(receipts)
	require.True(t, ok)
	assert.Equal(t, nonce, got)
}

func TestExtractMessageNonce_Absent(t *testing.T) {
	receipts := []Receipt{
		{Type: ReceiptTypeCall},
		{Type: ReceiptTypeScriptResult, Result: ScriptResultSuccess},
	}

	_, ok := ExtractMessageNonce(receipts)
	assert.False(t, ok)
}

func TestScriptResult(t *testing.T) {
	receipts := []Receipt{
		{Type: ReceiptTypeTransfer, Amount: 5},
		{Type: ReceiptTypeScriptResult, Result: ScriptResultRevert, GasUsed: 77},
	}

	r, ok := ScriptResult(receipts)
	require.True(t, ok)
	assert.Equal(t, ScriptResultRevert, r.Result)
	assert.Equal(t, uint64(77), r.GasUsed)

	_, ok = ScriptResult(nil)
	assert.False(t, ok)
}

func TestParseHexPrimitives(t *testing.T) {
	a, err := AddressFromHex("0x" + addr(0xab).Hex())
	require.NoError(t, err)
	assert.Equal(t, addr(0xab), a)

	_, err = AddressFromHex("abcd")
	assert.ErrorIs(t, err, ErrInvalidHex)

	_, err = AssetIDFromHex("zz")
	assert.ErrorIs(t, err, ErrInvalidHex)
}
