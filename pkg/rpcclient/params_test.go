package rpcclient

import (
	"context"
	"math"
	"testing"

	"github.com/nimiq-community/nimiq-go/pkg/nimrpc"
	"github.com/stretchr/testify/require"
)

func TestEncodeParamsPositive(t *testing.T) {
	ms := catalog[OpGetBlockByNumber]
	out, err := encodeParams(ms, []any{uint32(882418), true})
	require.NoError(t, err)
	require.Equal(t, []any{uint64(882418), true}, out)
}

func TestEncodeParamsOrder(t *testing.T) {
	ms := catalog[OpSetPeerState]
	out, err := encodeParams(ms, []any{"wss://seed1.example.com:8443/b990", "ban"})
	require.NoError(t, err)
	require.Equal(t, []any{"wss://seed1.example.com:8443/b990", "ban"}, out)
}

func TestEncodeParamsArityMismatch(t *testing.T) {
	ms := catalog[OpGetBlockByHash]
	for _, args := range [][]any{
		nil,
		{"hash"},
		{"hash", true, "extra"},
	} {
		_, err := encodeParams(ms, args)
		var ee *EncodingError
		require.ErrorAs(t, err, &ee)
		require.Equal(t, -1, ee.Index)
		require.Equal(t, "getBlockByHash", ee.Method)
	}
}

func TestEncodeParamsRejections(t *testing.T) {
	cases := []struct {
		name  string
		op    Op
		args  []any
		index int
	}{
		{"wrong kind for string", OpGetAccount, []any{42}, 0},
		{"wrong kind for bool", OpGetBlockByHash, []any{"hash", "yes"}, 1},
		{"wrong kind for integer", OpGetBlockByNumber, []any{"882418", true}, 0},
		{"negative height", OpGetBlockByNumber, []any{-1, true}, 0},
		{"uint16 overflow", OpSetMinerThreads, []any{70000}, 0},
		{"uint32 overflow", OpSetMinFeePerByte, []any{uint64(math.MaxUint32) + 1}, 0},
		{"nil transaction", OpSendTransaction, []any{(*nimrpc.OutgoingTransaction)(nil)}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := encodeParams(catalog[tc.op], tc.args)
			var ee *EncodingError
			require.ErrorAs(t, err, &ee)
			require.Equal(t, tc.index, ee.Index)
		})
	}
}

func TestEncodeUintWidths(t *testing.T) {
	u, err := encodeUint(uint16(math.MaxUint16), math.MaxUint16)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint16), u)

	_, err = encodeUint(math.MaxUint16+1, math.MaxUint16)
	require.Error(t, err)

	u, err = encodeUint(int64(12), math.MaxUint64)
	require.NoError(t, err)
	require.Equal(t, uint64(12), u)

	_, err = encodeUint(int8(-1), math.MaxUint64)
	require.Error(t, err)

	_, err = encodeUint(3.14, math.MaxUint64)
	require.Error(t, err)
}

// An argument rejected by the encoder must never reach the transport.
func TestEncodingErrorsSkipTransport(t *testing.T) {
	c, err := New(context.Background(), "http://localhost:10332", Options{})
	require.NoError(t, err)

	var calls int
	c.requestF = func(r *nimrpc.Request) (*nimrpc.Response, error) {
		calls++
		return nil, nil
	}

	err = c.performCall(OpGetBlockByNumber, []any{-5, true}, nil)
	var ee *EncodingError
	require.ErrorAs(t, err, &ee)

	err = c.performCall(OpGetBlockByHash, []any{"hash"}, nil)
	require.ErrorAs(t, err, &ee)

	require.Zero(t, calls)
}
