/*
Package result contains typed results of the Nimiq JSON-RPC calls. Every
type decodes itself from the raw result payload, validating that required
fields are present with compatible values; several types are untagged
unions recovered structurally from the payload shape.
*/
package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nimiq-community/nimiq-go/pkg/nimrpc"
)

// objectFields splits a JSON object payload into its top-level fields.
func objectFields(data []byte, typ string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nimrpc.NewDecodeError(typ, err)
	}
	return fields, nil
}

// checkRequired verifies that every named field is present in the payload
// with a non-null value. A null would silently decode to the field's zero
// value, which is indistinguishable from real data. Optional fields are
// never listed here, they stay nil when absent.
func checkRequired(fields map[string]json.RawMessage, typ string, names []string) error {
	for _, n := range names {
		v, ok := fields[n]
		if !ok {
			return nimrpc.NewDecodeError(typ, fmt.Errorf("required field %q is missing", n))
		}
		if jsonKind(v) == 'n' {
			return nimrpc.NewDecodeError(typ, fmt.Errorf("required field %q is null", n))
		}
	}
	return nil
}

// hasAll reports whether every named field is present with a non-null
// value.
func hasAll(fields map[string]json.RawMessage, names []string) bool {
	for _, n := range names {
		v, ok := fields[n]
		if !ok || jsonKind(v) == 'n' {
			return false
		}
	}
	return true
}

// wrapDecode converts err into a DecodeError for typ unless it already is
// one (a nested type reported the failure with more context).
func wrapDecode(typ string, err error) error {
	var de *nimrpc.DecodeError
	if errors.As(err, &de) {
		return err
	}
	return nimrpc.NewDecodeError(typ, err)
}

// jsonKind returns the leading token kind of a JSON value: '"' for strings,
// '{' for objects, '[' for arrays, 't'/'f' for booleans, 'n' for null and
// '0' for numbers.
func jsonKind(data []byte) byte {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return 0
	}
	switch c := data[0]; c {
	case '"', '{', '[', 'n':
		return c
	case 't', 'f':
		return c
	default:
		return '0'
	}
}
