/*
Package nimrpc contains a set of types used for JSON-RPC communication with
Nimiq nodes. It defines basic request/response types as well as the errors
a call can produce.
*/
package nimrpc

import (
	"encoding/json"
)

const (
	// JSONRPCVersion is the only JSON-RPC protocol version supported.
	JSONRPCVersion = "2.0"
)

type (
	// Request represents a JSON-RPC request. It's generic enough to be used
	// in many JSON-RPC communication scenarios, yet at the same time it's
	// tailored for the needs of the Nimiq RPC client.
	Request struct {
		// JSONRPC is the protocol version, only valid when it contains JSONRPCVersion.
		JSONRPC string `json:"jsonrpc"`
		// Method is the method being called.
		Method string `json:"method"`
		// Params is a set of method-specific parameters passed to the call.
		// All Nimiq calls expect params to be an array with positional
		// (order-sensitive) values.
		Params []any `json:"params"`
		// ID is an identifier associated with this request. JSON-RPC allows
		// strings to be used for it as well, but this client uses numeric
		// identifiers.
		ID uint64 `json:"id"`
	}

	// Header is a generic JSON-RPC 2.0 response header (ID and JSON-RPC version).
	Header struct {
		ID      json.RawMessage `json:"id"`
		JSONRPC string          `json:"jsonrpc"`
	}

	// HeaderAndError adds an Error (that can be empty) to the Header, it's used
	// to construct type-specific responses.
	HeaderAndError struct {
		Header
		Error *Error `json:"error,omitempty"`
	}

	// Response represents a standard raw JSON-RPC 2.0
	// response: http://www.jsonrpc.org/specification#response_object.
	Response struct {
		HeaderAndError
		Result json.RawMessage `json:"result,omitempty"`
	}
)

// OutgoingTransaction is a transaction yet to be signed by the node, passed
// as the single parameter of the createRawTransaction and sendTransaction
// calls. Value is denominated in the smallest unit (luna), Fee is given per
// whole transaction.
type OutgoingTransaction struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value uint64 `json:"value"`
	Fee   uint32 `json:"fee"`
}
