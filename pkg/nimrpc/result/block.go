package result

import (
	"encoding/json"
	"errors"
)

// Block is the result of the getBlockByHash and getBlockByNumber calls.
// The Transactions field comes in one of two wire forms selected by the
// request's fullTransactions flag, see TransactionSequence.
type Block struct {
	Number       uint32              `json:"number"`
	Hash         string              `json:"hash"`
	Pow          string              `json:"pow"`
	ParentHash   string              `json:"parentHash"`
	Nonce        uint64              `json:"nonce"`
	BodyHash     string              `json:"bodyHash"`
	AccountsHash string              `json:"accountsHash"`
	Miner        string              `json:"miner"`
	MinerAddress string              `json:"minerAddress"`
	Difficulty   string              `json:"difficulty"`
	ExtraData    string              `json:"extraData"`
	Size         uint32              `json:"size"`
	Timestamp    uint64              `json:"timestamp"`
	Transactions TransactionSequence `json:"transactions"`
}

var blockFields = []string{
	"number", "hash", "pow", "parentHash", "nonce", "bodyHash",
	"accountsHash", "miner", "minerAddress", "difficulty", "extraData",
	"size", "timestamp", "transactions",
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *Block) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "block")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "block", blockFields); err != nil {
		return err
	}
	type alias Block
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("block", err)
	}
	*b = Block(aux)
	return nil
}

// TransactionSequence is a block's transaction list in one of two wire
// forms: a sequence of bare hash strings or a sequence of full transaction
// objects. There is no discriminator, the form is recovered from the
// element shape; a sequence mixing both kinds is rejected. An empty
// sequence decodes as the hash form of length 0. Exactly one of the two
// fields is non-nil after a successful decode of a non-empty sequence.
type TransactionSequence struct {
	Hashes       []string
	Transactions []Transaction
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *TransactionSequence) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return wrapDecode("transaction sequence", err)
	}
	*s = TransactionSequence{}
	if len(elems) == 0 {
		s.Hashes = []string{}
		return nil
	}
	kind := jsonKind(elems[0])
	if kind != '"' && kind != '{' {
		return wrapDecode("transaction sequence", errors.New("element is neither a hash nor a transaction"))
	}
	for _, e := range elems {
		if jsonKind(e) != kind {
			return wrapDecode("transaction sequence", errors.New("mixed hash and transaction elements"))
		}
	}
	if kind == '"' {
		if err := json.Unmarshal(data, &s.Hashes); err != nil {
			return wrapDecode("transaction sequence", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, &s.Transactions); err != nil {
		return wrapDecode("transaction sequence", err)
	}
	return nil
}

// Len returns the number of transactions in the sequence regardless of its
// wire form.
func (s *TransactionSequence) Len() int {
	if s.Hashes != nil {
		return len(s.Hashes)
	}
	return len(s.Transactions)
}
