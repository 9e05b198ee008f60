package schema

import (
	"fmt"
	"math"

	"github.com/arloliu/colfile/errs"
	"github.com/arloliu/colfile/format"
)

// Numeric bounds for the integer logical types.
const (
	MinInt32 = math.MinInt32
	MaxInt32 = math.MaxInt32
	MinInt64 = math.MinInt64
	MaxInt64 = math.MaxInt64
)

// ValidateValue checks that val matches the declared logical type and is
// within its representable range. col and row identify the originating
// cell and are attached to every failure.
func ValidateValue(val any, typ format.LogicalType, col string, row int) error {
	_, err := Canonical(val, typ, col, row)
	return err
}

// Canonical validates val against the declared logical type and returns it
// coerced to the canonical Go representation the encoders consume:
// int32, int64, float32, float64, bool or []byte.
//
// Accepted inputs per type:
//   - INT32/INT64: int, int32, int64, or an integral float64
//   - FLOAT/DOUBLE: any of int, int32, int64, float32, float64
//   - BOOLEAN: bool
//   - BYTE_ARRAY: string or []byte
//
// Returns:
//   - any: the coerced value
//   - error: a *errs.ValidationError wrapping errs.ErrType, errs.ErrValue
//     or errs.ErrRange
func Canonical(val any, typ format.LogicalType, col string, row int) (any, error) {
	switch typ {
	case format.TypeInt32:
		n, err := integralValue(val, col, row)
		if err != nil {
			return nil, err
		}
		if n < MinInt32 || n > MaxInt32 {
			return nil, errs.NewValidationError(errs.ErrRange, col, row,
				fmt.Sprintf("value %d outside INT32 bounds [%d, %d]", n, MinInt32, MaxInt32))
		}

		return int32(n), nil

	case format.TypeInt64:
		n, err := integralValue(val, col, row)
		if err != nil {
			return nil, err
		}

		return n, nil

	case format.TypeFloat:
		f, err := floatValue(val, col, row)
		if err != nil {
			return nil, err
		}

		return float32(f), nil

	case format.TypeDouble:
		f, err := floatValue(val, col, row)
		if err != nil {
			return nil, err
		}

		return f, nil

	case format.TypeBoolean:
		b, ok := val.(bool)
		if !ok {
			return nil, errs.NewValidationError(errs.ErrType, col, row,
				fmt.Sprintf("expected bool, got %T", val))
		}

		return b, nil

	case format.TypeByteArray:
		switch v := val.(type) {
		case string:
			return []byte(v), nil
		case []byte:
			return v, nil
		default:
			return nil, errs.NewValidationError(errs.ErrType, col, row,
				fmt.Sprintf("expected string or []byte, got %T", val))
		}

	default:
		return nil, errs.NewValidationError(errs.ErrUnsupportedFeature, col, row,
			fmt.Sprintf("logical type %d is not supported", int32(typ)))
	}
}

// integralValue coerces val to int64, rejecting non-integer kinds and
// fractional or unrepresentable floats.
func integralValue(val any, col string, row int) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Trunc(v) != v {
			return 0, errs.NewValidationError(errs.ErrValue, col, row,
				fmt.Sprintf("integer column requires an integral value, got %v", v))
		}
		// float64(MaxInt64) rounds to 2^63, one past MaxInt64, so >= is the
		// correct upper-bound test here.
		if v >= float64(math.MaxInt64) || v < float64(math.MinInt64) {
			return 0, errs.NewValidationError(errs.ErrRange, col, row,
				fmt.Sprintf("value %v outside INT64 bounds", v))
		}

		return int64(v), nil
	default:
		return 0, errs.NewValidationError(errs.ErrType, col, row,
			fmt.Sprintf("expected integer, got %T", val))
	}
}

// floatValue coerces val to float64, accepting any Go numeric kind.
func floatValue(val any, col string, row int) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errs.NewValidationError(errs.ErrType, col, row,
			fmt.Sprintf("expected number, got %T", val))
	}
}
