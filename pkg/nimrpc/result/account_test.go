package result

import (
	"encoding/json"
	"testing"

	"github.com/nimiq-community/nimiq-go/pkg/nimrpc"
	"github.com/stretchr/testify/require"
)

const (
	basicAccountJSON = `{
		"id": "ad25610feb43d75307763d3f010822a757027429",
		"address": "NQ07 0000 0000 0000 0000 0000 0000 0000 0000",
		"balance": 1200000,
		"type": 0
	}`

	vestingAccountJSON = `{
		"id": "ebcbf0de7dae6a42d1c12967db9b2287bf2f7f0f",
		"address": "NQ09 VF5Y 1PKV MRM4 5LE1 55KV P6R2 GXYJ XYQF",
		"balance": 52500000000000,
		"type": 1,
		"owner": "fd34ab7265a0e48c454ccbf4c9c61dfdf68f9a22",
		"ownerAddress": "NQ62 YLSA NUK5 L3J8 QXTP 6Y4T KXTW 5Q51 XKT4",
		"vestingStart": 1,
		"vestingStepBlocks": 259200,
		"vestingStepAmount": 2625000000000,
		"vestingTotalAmount": 52500000000000
	}`

	htlcAccountJSON = `{
		"id": "4974636bd6d34d52b7d4a2ee4425dc2be72a2b4e",
		"address": "NQ46 NTNU QX94 MVD0 BBT0 GXAR QUHK VGNF 39ET",
		"balance": 1000000000,
		"type": 2,
		"sender": "d62d519b3478c63bdd729cf2ccb863c431ccf0be",
		"senderAddress": "NQ53 SQNM 36RL F333 PPBJ KKRC RE33 2X06 1HJA",
		"recipient": "f5ad55071730d3b9f05989481eefbda7f66fc574",
		"recipientAddress": "NQ41 XNNM A1QP 639T UR3C G5XK H9XJ XLF0 NQ1R",
		"hashRoot": "df331b3c8f8a889703092ea05503779058b7f44e71bc57176378adde424ce922",
		"hashAlgorithm": 1,
		"hashCount": 1,
		"timeout": 1105605,
		"totalAmount": 1000000000
	}`
)

func TestAccountVariants(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		var acc Account
		require.NoError(t, json.Unmarshal([]byte(basicAccountJSON), &acc))
		require.NotNil(t, acc.Basic)
		require.Nil(t, acc.Vesting)
		require.Nil(t, acc.HTLC)
		require.Equal(t, AccountBasic, acc.Basic.Type)
		require.Equal(t, uint64(1200000), acc.Basic.Balance)
	})
	t.Run("vesting", func(t *testing.T) {
		var acc Account
		require.NoError(t, json.Unmarshal([]byte(vestingAccountJSON), &acc))
		require.NotNil(t, acc.Vesting)
		require.Nil(t, acc.Basic)
		require.Nil(t, acc.HTLC)
		require.Equal(t, uint32(259200), acc.Vesting.VestingStepBlocks)
		require.Equal(t, uint64(2625000000000), acc.Vesting.VestingStepAmount)
		require.Equal(t, "NQ62 YLSA NUK5 L3J8 QXTP 6Y4T KXTW 5Q51 XKT4", acc.Vesting.OwnerAddress)
	})
	t.Run("htlc", func(t *testing.T) {
		var acc Account
		require.NoError(t, json.Unmarshal([]byte(htlcAccountJSON), &acc))
		require.NotNil(t, acc.HTLC)
		require.Nil(t, acc.Basic)
		require.Nil(t, acc.Vesting)
		require.Equal(t, uint8(1), acc.HTLC.HashCount)
		require.Equal(t, uint32(1105605), acc.HTLC.Timeout)
	})
}

// A payload satisfying the required fields of several variants must decode
// to the earliest-declared one.
func TestAccountVariantPrecedence(t *testing.T) {
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(vestingAccountJSON), &fields))
	var htlcFields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(htlcAccountJSON), &htlcFields))
	for k, v := range htlcFields {
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	require.NoError(t, err)

	var acc Account
	require.NoError(t, json.Unmarshal(merged, &acc))
	require.NotNil(t, acc.HTLC, "HTLC is declared before Vesting and must win")
	require.Nil(t, acc.Vesting)
	require.Nil(t, acc.Basic)
}

func TestAccountDecodeFailures(t *testing.T) {
	cases := map[string]string{
		"not an object":     `42`,
		"missing balance":   `{"id":"00","address":"NQ07","type":0}`,
		"mistyped balance":  `{"id":"00","address":"NQ07","balance":"many","type":0}`,
		"negative balance":  `{"id":"00","address":"NQ07","balance":-5,"type":0}`,
		"type out of range": `{"id":"00","address":"NQ07","balance":1,"type":300}`,
		"null balance":      `{"id":"00","address":"NQ07","balance":null,"type":0}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			var acc Account
			err := json.Unmarshal([]byte(payload), &acc)
			require.Error(t, err)
			var de *nimrpc.DecodeError
			require.ErrorAs(t, err, &de)
		})
	}
}

// When no variant fits, the error carries the underlying unmarshal
// failure of the last attempted variant so the offending field is named.
func TestAccountDecodeFailureCause(t *testing.T) {
	payload := `{"id":"00","address":"NQ07","balance":"many","type":0}`
	var acc Account
	err := json.Unmarshal([]byte(payload), &acc)
	var de *nimrpc.DecodeError
	require.ErrorAs(t, err, &de)
	require.ErrorContains(t, err, "balance")
}

// A vesting payload with one mistyped vesting-only field still satisfies
// the basic required set with compatible values, so decoding falls through
// to Basic rather than failing. No field of the true variant is dropped
// silently: the fallthrough only happens when the more specific variant is
// not satisfiable.
func TestAccountFallthrough(t *testing.T) {
	payload := `{
		"id":"00","address":"NQ07","balance":1,"type":1,
		"owner":"aa","ownerAddress":"NQ62","vestingStart":"soon","vestingStepBlocks":2,
		"vestingStepAmount":3,"vestingTotalAmount":4
	}`
	var acc Account
	require.NoError(t, json.Unmarshal([]byte(payload), &acc))
	require.NotNil(t, acc.Basic)
}

// A null variant-only field disqualifies that variant instead of decoding
// it with a fabricated zero value.
func TestAccountNullVariantField(t *testing.T) {
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(vestingAccountJSON), &fields))
	fields["owner"] = json.RawMessage(`null`)
	patched, err := json.Marshal(fields)
	require.NoError(t, err)

	var acc Account
	require.NoError(t, json.Unmarshal(patched, &acc))
	require.Nil(t, acc.Vesting)
	require.NotNil(t, acc.Basic)
}

func TestAccountList(t *testing.T) {
	payload := `[` + basicAccountJSON + `,` + vestingAccountJSON + `,` + htlcAccountJSON + `]`
	var accs []Account
	require.NoError(t, json.Unmarshal([]byte(payload), &accs))
	require.Len(t, accs, 3)
	require.NotNil(t, accs[0].Basic)
	require.NotNil(t, accs[1].Vesting)
	require.NotNil(t, accs[2].HTLC)
	for _, a := range accs {
		require.NotNil(t, a.Common())
	}
}
