package result

import (
	"encoding/json"
)

// Peer is one entry of the peerList result. Everything past the address
// state is only known for peers the node has actually talked to and stays
// nil otherwise.
type Peer struct {
	ID              string  `json:"id"`
	Address         string  `json:"address"`
	AddressState    uint8   `json:"addressState"`
	ConnectionState *uint8  `json:"connectionState,omitempty"`
	Version         *uint32 `json:"version,omitempty"`
	TimeOffset      *int64  `json:"timeOffset,omitempty"`
	HeadHash        *string `json:"headHash,omitempty"`
	Latency         *uint64 `json:"latency,omitempty"`
	RX              *uint64 `json:"rx,omitempty"`
	TX              *uint64 `json:"tx,omitempty"`
}

var peerFields = []string{"id", "address", "addressState"}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Peer) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "peer")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "peer", peerFields); err != nil {
		return err
	}
	type alias Peer
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("peer", err)
	}
	*p = Peer(aux)
	return nil
}

// PeerState is the result of the peerState call (with or without the state
// update parameter).
type PeerState struct {
	ID           string `json:"id"`
	Address      string `json:"address"`
	AddressState uint8  `json:"addressState"`
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *PeerState) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data, "peer state")
	if err != nil {
		return err
	}
	if err := checkRequired(fields, "peer state", peerFields); err != nil {
		return err
	}
	type alias PeerState
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return wrapDecode("peer state", err)
	}
	*p = PeerState(aux)
	return nil
}
