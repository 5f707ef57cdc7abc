package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric is a request-body number that also accepts its quoted form
// ("5000"), matching how the frontend submits form values. Anything that
// does not parse as a number fails the bind with a 400.
type Numeric float64

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%q is not a number", s)
	}
	*n = Numeric(f)
	return nil
}

func (n Numeric) Float64() float64 { return float64(n) }

func (n Numeric) Int() int { return int(n) }
