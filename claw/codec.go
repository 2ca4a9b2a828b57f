package claw

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// The codec turns a single command-line token into a typed value. Lookup
// order: a decoder registered with RegisterDecoder wins, then an
// encoding.TextUnmarshaler implementation, then the built-in fast paths,
// and finally a generic fmt.Fscan extraction. Whatever path is taken, the
// token must be consumed completely; trailing garbage is a ConversionError.

var (
	decoderMu sync.RWMutex
	decoders  = make(map[reflect.Type]any)
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterDecoder installs a custom decoder for T, taking precedence over
// every built-in path. This is the customization point for types whose
// textual form the engine cannot know about.
func RegisterDecoder[T any](fn func(string) (T, error)) {
	decoderMu.Lock()
	decoders[typeOf[T]()] = fn
	decoderMu.Unlock()
}

func lookupDecoder[T any]() (func(string) (T, error), bool) {
	decoderMu.RLock()
	raw, ok := decoders[typeOf[T]()]
	decoderMu.RUnlock()
	if !ok {
		return nil, false
	}
	fn, ok := raw.(func(string) (T, error))
	return fn, ok
}

// Decode converts text into a T. There is no partial success: either the
// whole token decodes or the result is a *ConversionError.
func Decode[T any](text string) (T, error) {
	var zero T

	if fn, ok := lookupDecoder[T](); ok {
		v, err := fn(text)
		if err != nil {
			return zero, &ConversionError{Text: text, TypeName: typeOf[T]().String(), Err: err}
		}
		return v, nil
	}

	if um, ok := any(&zero).(encoding.TextUnmarshaler); ok {
		if err := um.UnmarshalText([]byte(text)); err != nil {
			return zero, &ConversionError{Text: text, TypeName: typeOf[T]().String(), Err: err}
		}
		return zero, nil
	}

	if ok, err := decodeBuiltin(any(&zero), text); ok {
		if err != nil {
			return zero, &ConversionError{Text: text, TypeName: typeOf[T]().String(), Err: err}
		}
		return zero, nil
	}

	return zero, decodeScan(&zero, text)
}

// decodeBuiltin handles the common scalar types without reflection.
// Integer parsing uses base 0 so hex (0xFF) and octal (0o17) forms work
// transparently.
//
//nolint:gocyclo // one case per supported scalar type
func decodeBuiltin(dst any, text string) (handled bool, err error) {
	switch v := dst.(type) {
	case *string:
		*v = text
	case *bool:
		*v, err = strconv.ParseBool(text)
	case *time.Duration:
		*v, err = time.ParseDuration(text)
	case *int:
		var n int64
		n, err = strconv.ParseInt(text, 0, strconv.IntSize)
		*v = int(n)
	case *int8:
		var n int64
		n, err = strconv.ParseInt(text, 0, 8)
		*v = int8(n)
	case *int16:
		var n int64
		n, err = strconv.ParseInt(text, 0, 16)
		*v = int16(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(text, 0, 32)
		*v = int32(n)
	case *int64:
		*v, err = strconv.ParseInt(text, 0, 64)
	case *uint:
		var n uint64
		n, err = strconv.ParseUint(text, 0, strconv.IntSize)
		*v = uint(n)
	case *uint8:
		var n uint64
		n, err = strconv.ParseUint(text, 0, 8)
		*v = uint8(n)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(text, 0, 16)
		*v = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(text, 0, 32)
		*v = uint32(n)
	case *uint64:
		*v, err = strconv.ParseUint(text, 0, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		*v = float32(f)
	case *float64:
		*v, err = strconv.ParseFloat(text, 64)
	default:
		return false, nil
	}
	return true, err
}

// decodeScan is the generic textual-stream fallback: extract one value with
// fmt.Fscan and require the reader to be drained afterwards.
func decodeScan[T any](dst *T, text string) error {
	r := strings.NewReader(text)
	if _, err := fmt.Fscan(r, dst); err != nil {
		return &ConversionError{Text: text, TypeName: typeOf[T]().String(), Err: err}
	}
	if r.Len() > 0 {
		return &ConversionError{Text: text, TypeName: typeOf[T]().String()}
	}
	return nil
}
