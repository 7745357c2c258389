package params

import (
	"fmt"
	"math"
	"strconv"
)

// NA is the literal ichorCNA writes for an unestimated value.
const NA = "NA"

// Value is an optional float. The zero Value is missing.
type Value struct {
	Float float64
	Valid bool
}

// Some returns a present Value. NaN is folded into missing.
func Some(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{Float: f, Valid: true}
}

// Text is an optional string. The zero Text is missing.
type Text struct {
	String string
	Valid  bool
}

// ParseValue converts a trimmed field into a Value; "NA" and an empty field
// are missing.
func ParseValue(raw string) (Value, error) {
	if raw == NA || raw == "" {
		return Value{}, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q", raw)
	}
	return Some(f), nil
}

func parseText(raw string) Text {
	if raw == NA || raw == "" {
		return Text{}
	}
	return Text{String: raw, Valid: true}
}
