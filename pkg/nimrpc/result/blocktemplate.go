package result

import (
	"encoding/json"
)

// BlockTemplate is the result of the getBlockTemplate call: everything a
// miner needs to assemble the next block. When connected to a pool the
// node fills it with the pool's instructions.
type BlockTemplate struct {
	Header    TemplateHeader `json:"header"`
	Interlink string         `json:"interlink"`
	Target    uint64         `json:"target"`
	Body      TemplateBody   `json:"body"`
}

// TemplateHeader is the header part of a block template.
type TemplateHeader struct {
	Version       uint32 `json:"version"`
	PrevHash      string `json:"prevHash"`
	InterlinkHash string `json:"interlinkHash"`
	AccountsHash  string `json:"accountsHash"`
	NBits         uint32 `json:"nBits"`
	Height        uint32 `json:"height"`
}

// TemplateBody is the body part of a block template.
type TemplateBody struct {
	Hash           string   `json:"hash"`
	MinerAddr      string   `json:"minerAddr"`
	ExtraData      string   `json:"extraData"`
	Transactions   []string `json:"transactions"`
	MerkleHashes   []string `json:"merkleHashes"`
	PrunedAccounts []string `json:"prunedAccounts"`
}

var (
	blockTemplateFields  = []string{"header", "interlink", "target", "body"}
	templateHeaderFields = []string{"version", "prevHash", "interlinkHash", "accountsHash", "nBits", "height"}
	templateBodyFields   = []string{"hash", "minerAddr", "extraData", "transactions", "merkleHashes", "prunedAccounts"}
)

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *BlockTemplate) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "block template")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "block template", blockTemplateFields); err != nil {
		return err
	}
	type alias BlockTemplate
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("block template", err)
	}
	*t = BlockTemplate(aux)
	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (h *TemplateHeader) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "template header")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "template header", templateHeaderFields); err != nil {
		return err
	}
	type alias TemplateHeader
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("template header", err)
	}
	*h = TemplateHeader(aux)
	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *TemplateBody) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "template body")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "template body", templateBodyFields); err != nil {
		return err
	}
	type alias TemplateBody
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("template body", err)
	}
	*b = TemplateBody(aux)
	return nil
}
