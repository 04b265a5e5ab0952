package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary value in the store currency. It marshals as a plain
// JSON number but unmarshals from either a number or a formatted string,
// since older documents in the remote store carry prices like "$49.99".
type Amount float64

// ParseAmount extracts the numeric value from a possibly formatted price
// string. Currency symbols, thousands separators, and surrounding noise are
// stripped; the digits, a single dot, and a leading minus survive.
func ParseAmount(s string) (Amount, error) {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "-" {
		return 0, fmt.Errorf("amount: no numeric value in %q", s)
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("amount: parse %q: %w", s, err)
	}
	return Amount(f), nil
}

// Round2 rounds to two decimal places.
func (a Amount) Round2() Amount {
	return Amount(math.Round(float64(a)*100) / 100)
}

// Format renders the amount with the given currency symbol and two decimals.
func (a Amount) Format(symbol string) string {
	return symbol + strconv.FormatFloat(float64(a), 'f', 2, 64)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("amount: expected number or string, got %s", data)
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
