package result

import (
	"encoding/json"
	"testing"

	"github.com/nimiq-community/nimiq-go/pkg/nimrpc"
	"github.com/stretchr/testify/require"
)

const blockTxJSON = `{
	"hash": "465a63b73aa0b9b54b777be9a585ea00b367a17898ad520e1f22cb2c986ff554",
	"blockHash": "dfe7d166f2c86bd10fa4b1f29cd06c13228f893167ce9826137c85758645572f",
	"blockNumber": 76415,
	"timestamp": 1528297445,
	"confirmations": 151281,
	"transactionIndex": 20,
	"from": "355b4fe2304a9c818b9f0c3c1aaaf4ad4f6a0279",
	"fromAddress": "NQ16 6MDL YQHG 9AE8 32UY 1GX1 MAPL MM7N L0KR",
	"to": "4f61c06feeb7552eb96c6e649a4b8b98f0ab7109",
	"toAddress": "NQ69 9VF1 0XXV 5DAL TBBC DSJ9 MJQQ Q3RB 6S89",
	"value": 9286543536,
	"fee": 138,
	"data": null,
	"flags": 0
}`

func blockJSON(transactions string) string {
	return `{
		"number": 882418,
		"hash": "a9284b441b56e93de62f557414cc9b850bad2bd30cf84b013cfe2ef6e11b6da6",
		"pow": "00000000185b8fc2ab677d4d28e2eb90a2f57cbbf62e21e13b2580a7bec6ad79",
		"parentHash": "c89fb671a8c8b1e0dc9dcf693de13cdfef2a1fd58e06b9a28a74ebd3cc8c8b74",
		"nonce": 2157462835,
		"bodyHash": "8abb1443e02e2ac2bcba4876717230521251a941918c1c8f13d476a74e69d1ee",
		"accountsHash": "2b274e93b574091ecad1bde55dcdcf2d14f24fae10d486bf7c5a5c2fcef736f0",
		"miner": "e881a96dd5c8d7b8fda12cdc8bd0d7a13b17b3bb",
		"minerAddress": "NQ20 X20S JTEN S3BT Q7V1 5KE8 QM6N L8XH NEXT",
		"difficulty": "905094.965841907",
		"extraData": "",
		"size": 1330,
		"timestamp": 1544469936,
		"transactions": ` + transactions + `
	}`
}

func TestBlockHashSequence(t *testing.T) {
	var b Block
	payload := blockJSON(`["h1", "h2"]`)
	require.NoError(t, json.Unmarshal([]byte(payload), &b))
	require.Equal(t, uint32(882418), b.Number)
	require.Equal(t, []string{"h1", "h2"}, b.Transactions.Hashes)
	require.Nil(t, b.Transactions.Transactions)
	require.Equal(t, 2, b.Transactions.Len())
}

func TestBlockFullSequence(t *testing.T) {
	var b Block
	payload := blockJSON(`[` + blockTxJSON + `]`)
	require.NoError(t, json.Unmarshal([]byte(payload), &b))
	require.Nil(t, b.Transactions.Hashes)
	require.Len(t, b.Transactions.Transactions, 1)
	require.Equal(t, 1, b.Transactions.Len())

	tx := b.Transactions.Transactions[0]
	require.Equal(t, uint32(76415), tx.BlockNumber)
	require.NotNil(t, tx.TransactionIndex)
	require.Equal(t, uint16(20), *tx.TransactionIndex)
	require.Nil(t, tx.Data)
}

func TestBlockEmptySequence(t *testing.T) {
	var b Block
	require.NoError(t, json.Unmarshal([]byte(blockJSON(`[]`)), &b))
	require.NotNil(t, b.Transactions.Hashes)
	require.Equal(t, 0, b.Transactions.Len())
}

func TestSequenceMixedElements(t *testing.T) {
	var b Block
	err := json.Unmarshal([]byte(blockJSON(`["h1", `+blockTxJSON+`]`)), &b)
	require.Error(t, err)
	var de *nimrpc.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "transaction sequence", de.Type)

	err = json.Unmarshal([]byte(blockJSON(`[`+blockTxJSON+`, "h1"]`)), &b)
	require.ErrorAs(t, err, &de)
}

func TestSequenceBadElementKind(t *testing.T) {
	var s TransactionSequence
	err := json.Unmarshal([]byte(`[1, 2]`), &s)
	var de *nimrpc.DecodeError
	require.ErrorAs(t, err, &de)
}

func TestBlockMissingRequiredField(t *testing.T) {
	payload := `{"number": 882418, "hash": "a9"}`
	var b Block
	err := json.Unmarshal([]byte(payload), &b)
	var de *nimrpc.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "block", de.Type)
}

// A nested sequence failure must surface the sequence's own error, not a
// generic block one.
func TestBlockNestedSequenceError(t *testing.T) {
	var b Block
	err := json.Unmarshal([]byte(blockJSON(`"notanarray"`)), &b)
	var de *nimrpc.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "transaction sequence", de.Type)
}

func TestBlockHeightOverflow(t *testing.T) {
	payload := blockJSON(`[]`)
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &fields))
	fields["number"] = json.RawMessage(`4294967296`)
	raw, err := json.Marshal(fields)
	require.NoError(t, err)

	var b Block
	err = json.Unmarshal(raw, &b)
	var de *nimrpc.DecodeError
	require.ErrorAs(t, err, &de)
}
