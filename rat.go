package boon

import (
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat is an exact decimal number. Instances and schema keywords arrive as
// json.Number strings; carrying them as big.Rat keeps enough precision to
// tell integers from non-integers and to decide multipleOf and the numeric
// bounds without floating-point error.
type Rat struct {
	*big.Rat
}

// NewRat converts a decoded json value to an exact decimal, or returns nil
// when the value is not numeric.
func NewRat(v any) *Rat {
	rat := new(big.Rat)
	switch v := v.(type) {
	case json.Number:
		if _, ok := rat.SetString(string(v)); !ok {
			return nil
		}
	case float64:
		rat.SetFloat64(v)
	case float32:
		rat.SetFloat64(float64(v))
	case int:
		rat.SetInt64(int64(v))
	case int8:
		rat.SetInt64(int64(v))
	case int16:
		rat.SetInt64(int64(v))
	case int32:
		rat.SetInt64(int64(v))
	case int64:
		rat.SetInt64(v)
	case uint:
		rat.SetUint64(uint64(v))
	case uint8:
		rat.SetUint64(uint64(v))
	case uint16:
		rat.SetUint64(uint64(v))
	case uint32:
		rat.SetUint64(uint64(v))
	case uint64:
		rat.SetUint64(v)
	default:
		return nil
	}
	return &Rat{rat}
}

// Decimal renders the exact decimal form of the number, for error messages.
//
// A fraction in lowest terms has a finite decimal expansion iff its
// denominator is of the form 2^a * 5^b; every number parsed from a json
// document is of that form, since json syntax can only spell finite
// decimals. The expansion is computed exactly from the factored
// denominator, so no precision cap or zero-trimming is needed. Values
// constructed another way (a host handing in a literal 1/3) fall back to
// big.Rat's num/den notation.
func (r *Rat) Decimal() string {
	if r == nil {
		return "null"
	}
	if r.IsInt() {
		return r.Num().String()
	}

	den := new(big.Int).Set(r.Denom())
	twos := 0
	for den.Bit(0) == 0 {
		den.Rsh(den, 1)
		twos++
	}
	five := big.NewInt(5)
	rem := new(big.Int)
	fives := 0
	for {
		q, m := new(big.Int).QuoRem(den, five, rem)
		if m.Sign() != 0 {
			break
		}
		den = q
		fives++
	}
	if den.Cmp(big.NewInt(1)) != 0 {
		return r.RatString()
	}

	// scale numerator to digits over 10^max(twos,fives)
	scale := twos
	if fives > scale {
		scale = fives
	}
	digits := new(big.Int).Abs(r.Num())
	digits.Mul(digits, new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(scale-twos)), nil))
	digits.Mul(digits, new(big.Int).Exp(five, big.NewInt(int64(scale-fives)), nil))

	text := digits.String()
	if len(text) <= scale {
		text = strings.Repeat("0", scale-len(text)+1) + text
	}
	dot := len(text) - scale
	out := text[:dot] + "." + text[dot:]
	if r.Sign() < 0 {
		out = "-" + out
	}
	return out
}
