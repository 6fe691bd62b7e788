package result

import (
	"encoding/json"
)

// Transaction is a confirmed transaction as it appears inside a block
// (getBlock* with full transactions, getTransactionByBlock*AndIndex).
// TransactionIndex and Data are optional on the wire and stay nil when the
// node omits them.
type Transaction struct {
	Hash             string  `json:"hash"`
	BlockHash        string  `json:"blockHash"`
	BlockNumber      uint32  `json:"blockNumber"`
	Timestamp        uint64  `json:"timestamp"`
	Confirmations    uint32  `json:"confirmations"`
	TransactionIndex *uint16 `json:"transactionIndex,omitempty"`
	From             string  `json:"from"`
	FromAddress      string  `json:"fromAddress"`
	To               string  `json:"to"`
	ToAddress        string  `json:"toAddress"`
	Value            uint64  `json:"value"`
	Fee              uint64  `json:"fee"`
	Data             *string `json:"data,omitempty"`
	Flags            uint8   `json:"flags"`
}

// transactionFields lists the required transaction fields, shared with
// TransactionDetails which differs only in its optional fields.
var transactionFields = []string{
	"hash", "blockHash", "blockNumber", "timestamp", "confirmations",
	"from", "fromAddress", "to", "toAddress", "value", "fee", "flags",
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "transaction")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "transaction", transactionFields); err != nil {
		return err
	}
	type alias Transaction
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("transaction", err)
	}
	*t = Transaction(aux)
	return nil
}

// TransactionDetails is the transaction shape returned by the hash- and
// address-based lookups (getTransactionByHash, getTransactionsByAddress).
// It matches Transaction except that the node includes an inclusion Proof
// instead of the in-block index.
type TransactionDetails struct {
	Hash          string  `json:"hash"`
	BlockHash     string  `json:"blockHash"`
	BlockNumber   uint32  `json:"blockNumber"`
	Timestamp     uint64  `json:"timestamp"`
	Confirmations uint32  `json:"confirmations"`
	From          string  `json:"from"`
	FromAddress   string  `json:"fromAddress"`
	To            string  `json:"to"`
	ToAddress     string  `json:"toAddress"`
	Value         uint64  `json:"value"`
	Fee           uint64  `json:"fee"`
	Data          *string `json:"data,omitempty"`
	Flags         uint8   `json:"flags"`
	Proof         *string `json:"proof,omitempty"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *TransactionDetails) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "transaction details")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "transaction details", transactionFields); err != nil {
		return err
	}
	type alias TransactionDetails
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("transaction details", err)
	}
	*t = TransactionDetails(aux)
	return nil
}

// TransactionReceipt proves the inclusion of a transaction in a block. It
// is not available for pending transactions.
type TransactionReceipt struct {
	TransactionHash  string `json:"transactionHash"`
	TransactionIndex uint16 `json:"transactionIndex"`
	BlockNumber      uint32 `json:"blockNumber"`
	BlockHash        string `json:"blockHash"`
	Confirmations    uint32 `json:"confirmations"`
	Timestamp        uint64 `json:"timestamp"`
}

var transactionReceiptFields = []string{
	"transactionHash", "transactionIndex", "blockNumber", "blockHash",
	"confirmations", "timestamp",
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (r *TransactionReceipt) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "transaction receipt")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "transaction receipt", transactionReceiptFields); err != nil {
		return err
	}
	type alias TransactionReceipt
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("transaction receipt", err)
	}
	*r = TransactionReceipt(aux)
	return nil
}
