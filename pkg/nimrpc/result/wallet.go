package result

import (
	"encoding/json"
)

// Wallet describes an account whose key is held in the node's store, as
// returned by createAccount.
type Wallet struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

var walletFields = []string{"id", "address", "publicKey"}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (w *Wallet) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "wallet")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "wallet", walletFields); err != nil {
		return err
	}
	type alias Wallet
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("wallet", err)
	}
	*w = Wallet(aux)
	return nil
}

// Work is the result of the getWork call: instructions to mine the next
// block. Data is the block prefix to hash over, Suffix has to be appended
// to a solution before it is submitted.
type Work struct {
	Data      string `json:"data"`
	Suffix    string `json:"suffix"`
	Target    uint64 `json:"target"`
	Algorithm string `json:"algorithm"`
}

var workFields = []string{"data", "suffix", "target", "algorithm"}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (w *Work) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "work")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "work", workFields); err != nil {
		return err
	}
	type alias Work
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("work", err)
	}
	*w = Work(aux)
	return nil
}
