package symsolve

import (
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/njchilds90/gosymbol"

	"geomlab/internal/geomerr"
)

// ParseForm parses a linear form such as "2x+9y", "-7x - 6y", "3/2*x + y" or "0.5y".
// Terms are a rational coefficient, a symbol, or a coefficient followed by a symbol.
func ParseForm(s string) (gosymbol.Expr, error) {
	const op = "symsolve.parse"
	src := strings.Join(strings.Fields(s), "")
	if src == "" {
		return nil, geomerr.Invalid(op, "empty expression")
	}

	var terms []gosymbol.Expr
	for pos := 0; pos < len(src); {
		sign := int64(1)
		signed := false
		for pos < len(src) && (src[pos] == '+' || src[pos] == '-') {
			if src[pos] == '-' {
				sign = -sign
			}
			signed = true
			pos++
		}
		if len(terms) > 0 && !signed {
			return nil, geomerr.Invalid(op, "%q: missing operator at offset %d", s, pos)
		}
		start := pos
		for pos < len(src) && (isDigit(src[pos]) || src[pos] == '.' || src[pos] == '/') {
			pos++
		}
		coefText := src[start:pos]
		star := pos < len(src) && src[pos] == '*'
		if star {
			if coefText == "" {
				return nil, geomerr.Invalid(op, "%q: '*' without a coefficient", s)
			}
			pos++
		}
		symStart := pos
		for pos < len(src) {
			r, w := utf8.DecodeRuneInString(src[pos:])
			if !unicode.IsLetter(r) {
				break
			}
			pos += w
		}
		name := src[symStart:pos]
		if star && name == "" {
			return nil, geomerr.Invalid(op, "%q: '*' without a symbol", s)
		}
		if coefText == "" && name == "" {
			if pos >= len(src) {
				return nil, geomerr.Invalid(op, "%q: dangling operator", s)
			}
			r, _ := utf8.DecodeRuneInString(src[pos:])
			return nil, geomerr.Invalid(op, "%q: unexpected %q at offset %d", s, r, pos)
		}

		coef := new(big.Rat).SetInt64(sign)
		if coefText != "" {
			r, ok := new(big.Rat).SetString(coefText)
			if !ok {
				return nil, geomerr.Invalid(op, "%q: bad coefficient %q", s, coefText)
			}
			coef.Mul(coef, r)
		}
		num, err := ratNum(op, coef)
		if err != nil {
			return nil, err
		}
		if name == "" {
			terms = append(terms, num)
		} else {
			terms = append(terms, gosymbol.MulOf(num, gosymbol.S(name)))
		}
	}
	return gosymbol.AddOf(terms...), nil
}

// Rat converts an exact rational to a symbolic constant.
func Rat(r *big.Rat) (gosymbol.Expr, error) {
	return ratNum("symsolve.rat", r)
}

func ratNum(op string, r *big.Rat) (*gosymbol.Num, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return nil, geomerr.Invalid(op, "coefficient %s out of range", r.RatString())
	}
	return gosymbol.F(r.Num().Int64(), r.Denom().Int64()), nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
