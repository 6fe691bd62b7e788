package rpcclient

import (
	"fmt"
	"math"

	"github.com/nimiq-community/nimiq-go/pkg/nimrpc"
)

// EncodingError is returned when a call argument cannot be represented in
// its declared wire parameter type. No transport activity happens once one
// is produced.
type EncodingError struct {
	// Method is the wire method the arguments were encoded for.
	Method string
	// Index is the zero-based position of the offending argument, or -1
	// for an arity mismatch.
	Index  int
	Reason string
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("encoding params for %s: %s", e.Method, e.Reason)
	}
	return fmt.Sprintf("encoding param %d for %s: %s", e.Index, e.Method, e.Reason)
}

// encodeParams converts typed arguments into the positional wire parameter
// list declared by the catalog entry. Order is preserved, arity and
// numeric widths are enforced.
func encodeParams(ms methodSpec, args []any) ([]any, error) {
	if len(args) != len(ms.params) {
		return nil, &EncodingError{
			Method: ms.method,
			Index:  -1,
			Reason: fmt.Sprintf("expected %d parameters, got %d", len(ms.params), len(args)),
		}
	}
	out := make([]any, len(args))
	for i, arg := range args {
		v, err := encodeParam(ms.params[i], arg)
		if err != nil {
			return nil, &EncodingError{Method: ms.method, Index: i, Reason: err.Error()}
		}
		out[i] = v
	}
	return out, nil
}

func encodeParam(pt paramType, arg any) (any, error) {
	switch pt {
	case paramString:
		s, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", arg)
		}
		return s, nil
	case paramBool:
		b, ok := arg.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", arg)
		}
		return b, nil
	case paramUint16:
		return encodeUint(arg, math.MaxUint16)
	case paramUint32:
		return encodeUint(arg, math.MaxUint32)
	case paramUint64:
		return encodeUint(arg, math.MaxUint64)
	case paramTransaction:
		tx, ok := arg.(*nimrpc.OutgoingTransaction)
		if !ok || tx == nil {
			return nil, fmt.Errorf("expected *nimrpc.OutgoingTransaction, got %T", arg)
		}
		return tx, nil
	}
	return nil, fmt.Errorf("unknown parameter type %d", pt)
}

// encodeUint accepts any Go integer kind and rejects values outside
// [0, max] instead of letting them truncate on the wire.
func encodeUint(arg any, max uint64) (uint64, error) {
	var u uint64
	switch v := arg.(type) {
	case uint8:
		u = uint64(v)
	case uint16:
		u = uint64(v)
	case uint32:
		u = uint64(v)
	case uint64:
		u = v
	case uint:
		u = uint64(v)
	case int8:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d", v)
		}
		u = uint64(v)
	case int16:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d", v)
		}
		u = uint64(v)
	case int32:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d", v)
		}
		u = uint64(v)
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d", v)
		}
		u = uint64(v)
	case int:
		if v < 0 {
			return 0, fmt.Errorf("negative value %d", v)
		}
		u = uint64(v)
	default:
		return 0, fmt.Errorf("expected integer, got %T", arg)
	}
	if u > max {
		return 0, fmt.Errorf("value %d overflows the declared parameter width (max %d)", u, max)
	}
	return u, nil
}
