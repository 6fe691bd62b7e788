package result

import (
	"encoding/json"
	"errors"
)

// AccountType is the numeric account type code shared by all account
// variants.
type AccountType uint8

// Possible account type codes.
const (
	AccountBasic   AccountType = 0
	AccountVesting AccountType = 1
	AccountHTLC    AccountType = 2
)

// BasicAccount is a plain balance-holding account. Its fields are shared by
// every account variant.
type BasicAccount struct {
	ID      string      `json:"id"`
	Address string      `json:"address"`
	Balance uint64      `json:"balance"`
	Type    AccountType `json:"type"`
}

// VestingAccount is a vesting contract releasing its balance to the owner
// in steps.
type VestingAccount struct {
	BasicAccount
	Owner              string `json:"owner"`
	OwnerAddress       string `json:"ownerAddress"`
	VestingStart       uint32 `json:"vestingStart"`
	VestingStepBlocks  uint32 `json:"vestingStepBlocks"`
	VestingStepAmount  uint64 `json:"vestingStepAmount"`
	VestingTotalAmount uint64 `json:"vestingTotalAmount"`
}

// HTLCAccount is a hashed time-locked contract between a sender and a
// recipient.
type HTLCAccount struct {
	BasicAccount
	Sender           string `json:"sender"`
	SenderAddress    string `json:"senderAddress"`
	Recipient        string `json:"recipient"`
	RecipientAddress string `json:"recipientAddress"`
	HashRoot         string `json:"hashRoot"`
	HashAlgorithm    uint8  `json:"hashAlgorithm"`
	HashCount        uint8  `json:"hashCount"`
	Timeout          uint32 `json:"timeout"`
	TotalAmount      uint64 `json:"totalAmount"`
}

// Account is the polymorphic result of the getAccount and accounts calls.
// The wire payload carries no discriminator, the variant is recovered from
// which fields are present: candidates are tried in the declared order
// HTLC, Vesting, Basic and the first one whose required field set is
// satisfied with compatible values is selected. The order goes from most
// specific to most general because the basic field set is a subset of both
// contract variants and would shadow them if tried first. Exactly one of
// the variant fields is non-nil after a successful decode.
type Account struct {
	Basic   *BasicAccount
	Vesting *VestingAccount
	HTLC    *HTLCAccount
}

var (
	basicAccountFields = []string{"id", "address", "balance", "type"}

	vestingAccountFields = []string{
		"id", "address", "balance", "type",
		"owner", "ownerAddress", "vestingStart", "vestingStepBlocks",
		"vestingStepAmount", "vestingTotalAmount",
	}

	htlcAccountFields = []string{
		"id", "address", "balance", "type",
		"sender", "senderAddress", "recipient", "recipientAddress",
		"hashRoot", "hashAlgorithm", "hashCount", "timeout", "totalAmount",
	}
)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Account) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "account")
	if err != nil {
		return err
	}
	// lastErr keeps the most recent per-variant failure so an unmatched
	// payload reports what actually went wrong, not just that nothing fit.
	var lastErr error
	if hasAll(fields, htlcAccountFields) {
		var h HTLCAccount
		lastErr = json.Unmarshal(data, &h)
		if lastErr == nil {
			*a = Account{HTLC: &h}
			return nil
		}
	}
	if hasAll(fields, vestingAccountFields) {
		var v VestingAccount
		lastErr = json.Unmarshal(data, &v)
		if lastErr == nil {
			*a = Account{Vesting: &v}
			return nil
		}
	}
	if hasAll(fields, basicAccountFields) {
		var b BasicAccount
		lastErr = json.Unmarshal(data, &b)
		if lastErr == nil {
			*a = Account{Basic: &b}
			return nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("payload matches no account variant")
	}
	return wrapDecode("account", lastErr)
}

// Common returns the fields shared by all account variants or nil for a
// zero Account.
func (a *Account) Common() *BasicAccount {
	switch {
	case a.Basic != nil:
		return a.Basic
	case a.Vesting != nil:
		return &a.Vesting.BasicAccount
	case a.HTLC != nil:
		return &a.HTLC.BasicAccount
	}
	return nil
}
