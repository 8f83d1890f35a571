package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Scalar holds a dimension or quantity that is either a literal number or a
// formula string to be resolved against the variable table at pricing time.
// In model JSON both forms are accepted: `"width"` and `450` are both valid.
type Scalar struct {
	Formula string
	Value   float64
	Literal bool
}

// Num returns a Scalar holding a literal number.
func Num(v float64) Scalar {
	return Scalar{Value: v, Literal: true}
}

// Expr returns a Scalar holding a formula string.
func Expr(formula string) Scalar {
	return Scalar{Formula: formula}
}

// IsZero reports whether the scalar was never set.
func (s Scalar) IsZero() bool {
	return !s.Literal && s.Formula == ""
}

// String renders the scalar as it would appear in a model definition.
func (s Scalar) String() string {
	if s.Literal {
		return strconv.FormatFloat(s.Value, 'f', -1, 64)
	}
	return s.Formula
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Scalar{Value: num, Literal: true}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Scalar{Formula: str}
		return nil
	}
	return fmt.Errorf("scalar must be a number or a formula string, got %s", data)
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.Literal {
		return json.Marshal(s.Value)
	}
	return json.Marshal(s.Formula)
}
