package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Number is a float64 that survives JSON encoding when it is not finite.
// Finite values encode as JSON numbers; ±Inf and NaN encode as the strings
// "+Inf", "-Inf" and "NaN", the same text the CLI prints.
type Number float64

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("number must be a JSON number or one of \"+Inf\", \"-Inf\", \"NaN\": %s", data)
	}
	switch s {
	case "+Inf":
		*n = Number(math.Inf(1))
	case "-Inf":
		*n = Number(math.Inf(-1))
	case "NaN":
		*n = Number(math.NaN())
	default:
		return fmt.Errorf("invalid number %q", s)
	}
	return nil
}
