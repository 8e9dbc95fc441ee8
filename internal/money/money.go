package money

import (
	"errors"
	"strconv"
	"strings"
)

// Amount is a whole-rupiah value. IDR has no minor unit in practice,
// so all totals, discounts and tenders are plain integers.
type Amount int64

var ErrInvalidAmount = errors.New("invalid amount")

// Format renders an amount as "Rp1.234.567" with thousand separators.
func Format(a Amount) string {
	neg := a < 0
	if neg {
		a = -a
	}

	digits := strconv.FormatInt(int64(a), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("Rp")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}

	return b.String()
}

// Parse reads user-entered amounts, tolerating thousand separators
// ("15.000", "15,000") and an optional "Rp" prefix.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrInvalidAmount
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return Amount(n), nil
}
