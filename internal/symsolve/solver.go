// Package symsolve finds the scalar coefficients that express one vector as a
// linear combination of others. Vectors are linear forms over the basis symbols
// x and y; the unknown coefficients are T and L. Arithmetic stays exact
// (rational) until a Solution is formatted.
package symsolve

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/njchilds90/gosymbol"

	"geomlab/internal/geomerr"
)

// Basis symbols and unknowns.
const (
	SymX     = "x"
	SymY     = "y"
	UnknownT = "T"
	UnknownL = "L"
)

// Row is one coefficient equation: A·T + B·L = C.
type Row struct {
	A, B, C *big.Rat
}

func (r Row) String() string {
	return fmt.Sprintf("%s*T + %s*L = %s", r.A.RatString(), r.B.RatString(), r.C.RatString())
}

// Solution holds the exact coefficients and the system they solve.
type Solution struct {
	T, L   *big.Rat
	System [2]Row // coefficient-of-x row, coefficient-of-y row
}

// Float converts the exact values for reporting.
func (s Solution) Float() (t, l float64) {
	t, _ = s.T.Float64()
	l, _ = s.L.Float64()
	return t, l
}

// String formats the solution to 3 decimal places.
func (s Solution) String() string {
	t, l := s.Float()
	return fmt.Sprintf("T = %.3f, L = %.3f", t, l)
}

// Exact formats the solution as reduced fractions.
func (s Solution) Exact() string {
	return fmt.Sprintf("T = %s, L = %s", s.T.RatString(), s.L.RatString())
}

// SolveAffine finds T, L with a = c + T·u + L·v.
func SolveAffine(a, c, u, v gosymbol.Expr) (Solution, error) {
	const op = "symsolve.affine"
	if err := checkForms(op, map[string]gosymbol.Expr{"a": a, "c": c, "u": u, "v": v}); err != nil {
		return Solution{}, err
	}
	rhs := gosymbol.AddOf(
		c,
		gosymbol.MulOf(gosymbol.S(UnknownT), u),
		gosymbol.MulOf(gosymbol.S(UnknownL), v),
	)
	return solve(op, gosymbol.Eq(a, rhs))
}

// SolveComposed builds a = c + k1·u - k2·v and finds T, L with a = T·x + L·y.
func SolveComposed(c, u, v, k1, k2 gosymbol.Expr) (Solution, error) {
	const op = "symsolve.composed"
	if err := checkForms(op, map[string]gosymbol.Expr{"c": c, "u": u, "v": v}); err != nil {
		return Solution{}, err
	}
	for name, k := range map[string]gosymbol.Expr{"k1": k1, "k2": k2} {
		if k == nil {
			return Solution{}, geomerr.Invalid(op, "%s is missing", name)
		}
		if _, ok := k.Eval(); !ok {
			return Solution{}, geomerr.Invalid(op, "%s = %s is not a constant", name, k)
		}
	}
	a := gosymbol.AddOf(
		c,
		gosymbol.MulOf(k1, u),
		gosymbol.MulOf(gosymbol.N(-1), k2, v),
	)
	rhs := gosymbol.AddOf(
		gosymbol.MulOf(gosymbol.S(UnknownT), gosymbol.S(SymX)),
		gosymbol.MulOf(gosymbol.S(UnknownL), gosymbol.S(SymY)),
	)
	return solve(op, gosymbol.Eq(a, rhs))
}

// checkForms rejects missing inputs and inputs that use symbols other than x and y.
func checkForms(op string, forms map[string]gosymbol.Expr) error {
	names := make([]string, 0, len(forms))
	for name := range forms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e := forms[name]
		if e == nil {
			return geomerr.Invalid(op, "%s is missing", name)
		}
		for sym := range gosymbol.FreeSymbols(e) {
			if sym != SymX && sym != SymY {
				return geomerr.Invalid(op, "%s = %s uses symbol %q; only %s and %s are allowed", name, e, sym, SymX, SymY)
			}
		}
	}
	return nil
}

// solve equates the x and y coefficients of both sides of eq and solves the
// resulting 2×2 system in T and L.
func solve(op string, eq *gosymbol.Equation) (Solution, error) {
	residual := gosymbol.Expand(eq.Residual())

	byX, err := linearCoeffs(op, residual, SymX)
	if err != nil {
		return Solution{}, err
	}
	byY, err := linearCoeffs(op, coeff(byX, 0), SymY)
	if err != nil {
		return Solution{}, err
	}

	if constant := coeff(byY, 0); !isZero(constant) {
		if _, ok := constant.Eval(); ok {
			return Solution{}, geomerr.Unsolvable(op, "constant residual %s cannot vanish", constant)
		}
		return Solution{}, geomerr.Invalid(op, "constant term %s depends on the unknowns", constant)
	}

	var sol Solution
	for i, e := range []gosymbol.Expr{coeff(byX, 1), coeff(byY, 1)} {
		row, err := unknownRow(op, e)
		if err != nil {
			return Solution{}, err
		}
		sol.System[i] = row
	}

	nums := make([]gosymbol.Expr, 0, 6)
	for _, r := range sol.System {
		for _, q := range []*big.Rat{r.A, r.B, r.C} {
			n, err := Rat(q)
			if err != nil {
				return Solution{}, err
			}
			nums = append(nums, n)
		}
	}
	tExpr, lExpr, err := gosymbol.SolveLinearSystem2x2(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
	if err != nil {
		return Solution{}, geomerr.Unsolvable(op, "%s; %s: %v", sol.System[0], sol.System[1], err)
	}

	if sol.T, err = exact(op, tExpr); err != nil {
		return Solution{}, err
	}
	if sol.L, err = exact(op, lExpr); err != nil {
		return Solution{}, err
	}
	return sol, nil
}

// linearCoeffs splits e into its degree-0 and degree-1 parts in sym.
func linearCoeffs(op string, e gosymbol.Expr, sym string) (gosymbol.PolyCoeffsResult, error) {
	pc := gosymbol.PolyCoeffs(e, sym)
	for deg, c := range pc {
		if (deg < 0 || deg > 1) && !isZero(c) {
			return nil, geomerr.Invalid(op, "term %s^%d is not linear", sym, deg)
		}
	}
	return pc, nil
}

// unknownRow reads e = A·T + B·L + K as the row A·T + B·L = -K.
func unknownRow(op string, e gosymbol.Expr) (Row, error) {
	if bad := foreignSymbols(e, UnknownT, UnknownL); bad != "" {
		return Row{}, geomerr.Invalid(op, "coefficient %s mixes basis symbols (%s)", e, bad)
	}
	byT, err := linearCoeffs(op, e, UnknownT)
	if err != nil {
		return Row{}, err
	}
	byL, err := linearCoeffs(op, coeff(byT, 0), UnknownL)
	if err != nil {
		return Row{}, err
	}

	var row Row
	for _, p := range []struct {
		dst **big.Rat
		e   gosymbol.Expr
	}{
		{&row.A, coeff(byT, 1)},
		{&row.B, coeff(byL, 1)},
		{&row.C, coeff(byL, 0)},
	} {
		n, ok := p.e.Eval()
		if !ok {
			return Row{}, geomerr.Invalid(op, "coefficient %s is not linear in %s and %s", p.e, UnknownT, UnknownL)
		}
		*p.dst = n.Rat()
	}
	row.C.Neg(row.C)
	return row, nil
}

func exact(op string, e gosymbol.Expr) (*big.Rat, error) {
	n, ok := e.Eval()
	if !ok {
		return nil, geomerr.Invalid(op, "solution %s is not numeric", e)
	}
	return n.Rat(), nil
}

func coeff(pc gosymbol.PolyCoeffsResult, deg int) gosymbol.Expr {
	if c, ok := pc[deg]; ok {
		return c
	}
	return gosymbol.N(0)
}

func isZero(e gosymbol.Expr) bool {
	n, ok := e.Simplify().Eval()
	return ok && n.IsZero()
}

// foreignSymbols lists the free symbols of e not in allowed.
func foreignSymbols(e gosymbol.Expr, allowed ...string) string {
	var out []string
	for sym := range gosymbol.FreeSymbols(e) {
		ok := false
		for _, a := range allowed {
			if sym == a {
				ok = true
			}
		}
		if !ok {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
