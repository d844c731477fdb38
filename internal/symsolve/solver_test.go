package symsolve

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/njchilds90/gosymbol"

	"geomlab/internal/geomerr"
)

func mustForm(t *testing.T, s string) gosymbol.Expr {
	t.Helper()
	e, err := ParseForm(s)
	if err != nil {
		t.Fatalf("ParseForm(%q): %v", s, err)
	}
	return e
}

func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rat " + s)
	}
	return r
}

func TestSolveAffineReference(t *testing.T) {
	u := mustForm(t, "2x+9y")
	v := mustForm(t, "6x+6y")
	c := mustForm(t, "-7x-6y")
	a := mustForm(t, "6x+5y")

	sol, err := SolveAffine(a, c, u, v)
	if err != nil {
		t.Fatalf("SolveAffine: %v", err)
	}
	if sol.T.Cmp(rat("-2/7")) != 0 || sol.L.Cmp(rat("95/42")) != 0 {
		t.Fatalf("SolveAffine exact\nhave %s\nwant T = -2/7, L = 95/42", sol.Exact())
	}
	if s := sol.String(); s != "T = -0.286, L = 2.262" {
		t.Fatalf("SolveAffine\nhave %q\nwant %q", s, "T = -0.286, L = 2.262")
	}
	// x row: -2T - 6L + 13 = 0
	if r := sol.System[0]; r.A.Cmp(rat("-2")) != 0 || r.B.Cmp(rat("-6")) != 0 || r.C.Cmp(rat("-13")) != 0 {
		t.Fatalf("x row\nhave %s\nwant -2*T + -6*L = -13", r)
	}
}

func TestSolveComposedReference(t *testing.T) {
	u := mustForm(t, "5x+y")
	v := mustForm(t, "2x+2y")
	c := mustForm(t, "6x+4y")

	sol, err := SolveComposed(c, u, v, gosymbol.N(7), gosymbol.N(1))
	if err != nil {
		t.Fatalf("SolveComposed: %v", err)
	}
	// a = c + 7u - v = 39x + 9y
	if sol.T.Cmp(rat("39")) != 0 || sol.L.Cmp(rat("9")) != 0 {
		t.Fatalf("SolveComposed\nhave %s\nwant T = 39, L = 9", sol.Exact())
	}
	if s := sol.String(); s != "T = 39.000, L = 9.000" {
		t.Fatalf("SolveComposed\nhave %q", s)
	}
}

func TestSolveAffineRoundTrip(t *testing.T) {
	// Build a from known coefficients and recover them.
	cases := []struct {
		u, v, c string
		T, L    string
	}{
		{"x", "y", "0", "3", "-4"},
		{"3x-y", "x+2y", "x", "1/2", "5/3"},
		{"-4x+7y", "2x", "-x-y", "-2", "9"},
	}
	for _, tc := range cases {
		u, v, c := mustForm(t, tc.u), mustForm(t, tc.v), mustForm(t, tc.c)
		T, err := Rat(rat(tc.T))
		if err != nil {
			t.Fatal(err)
		}
		L, err := Rat(rat(tc.L))
		if err != nil {
			t.Fatal(err)
		}
		a := gosymbol.Expand(gosymbol.AddOf(c, gosymbol.MulOf(T, u), gosymbol.MulOf(L, v)))

		sol, err := SolveAffine(a, c, u, v)
		if err != nil {
			t.Fatalf("SolveAffine(u=%s, v=%s): %v", tc.u, tc.v, err)
		}
		if sol.T.Cmp(rat(tc.T)) != 0 || sol.L.Cmp(rat(tc.L)) != 0 {
			t.Fatalf("SolveAffine(u=%s, v=%s)\nhave %s\nwant T = %s, L = %s", tc.u, tc.v, sol.Exact(), tc.T, tc.L)
		}
	}
}

func TestSingularSystem(t *testing.T) {
	cases := []struct{ u, v string }{
		{"x+2y", "2x+4y"},
		{"3x-6y", "-x+2y"},
		{"x", "5x"},
		{"0", "x+y"},
	}
	for _, tc := range cases {
		_, err := SolveAffine(mustForm(t, "x+y"), mustForm(t, "0"), mustForm(t, tc.u), mustForm(t, tc.v))
		if !errors.Is(err, geomerr.ErrUnsolvable) {
			t.Fatalf("SolveAffine(u=%s, v=%s)\nhave %v\nwant ErrUnsolvable", tc.u, tc.v, err)
		}
	}
}

func TestInconsistentConstant(t *testing.T) {
	_, err := SolveAffine(mustForm(t, "x+1"), mustForm(t, "x"), mustForm(t, "x"), mustForm(t, "y"))
	if !errors.Is(err, geomerr.ErrUnsolvable) {
		t.Fatalf("constant residual\nhave %v\nwant ErrUnsolvable", err)
	}
	_, err = SolveAffine(mustForm(t, "x"), mustForm(t, "0"), mustForm(t, "x+1"), mustForm(t, "y"))
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("constant in u\nhave %v\nwant ErrInvalidInput", err)
	}
}

func TestForeignSymbolsRejected(t *testing.T) {
	_, err := SolveAffine(mustForm(t, "x+z"), mustForm(t, "0"), mustForm(t, "x"), mustForm(t, "y"))
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("symbol z\nhave %v\nwant ErrInvalidInput", err)
	}
	_, err = SolveAffine(mustForm(t, "x"), mustForm(t, "0"), mustForm(t, "T"), mustForm(t, "y"))
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("unknown used as input\nhave %v\nwant ErrInvalidInput", err)
	}
	_, err = SolveComposed(mustForm(t, "x"), mustForm(t, "x"), mustForm(t, "y"), gosymbol.S("k"), gosymbol.N(1))
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("symbolic k1\nhave %v\nwant ErrInvalidInput", err)
	}
	_, err = SolveAffine(nil, mustForm(t, "0"), mustForm(t, "x"), mustForm(t, "y"))
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("nil input\nhave %v\nwant ErrInvalidInput", err)
	}
}

func TestNonLinearRejected(t *testing.T) {
	xy := gosymbol.MulOf(gosymbol.S("x"), gosymbol.S("y"))
	_, err := SolveAffine(xy, mustForm(t, "0"), mustForm(t, "x"), mustForm(t, "y"))
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("x*y term\nhave %v\nwant ErrInvalidInput", err)
	}
	x2 := gosymbol.PowOf(gosymbol.S("x"), gosymbol.N(2))
	_, err = SolveAffine(x2, mustForm(t, "0"), mustForm(t, "x"), mustForm(t, "y"))
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("x^2 term\nhave %v\nwant ErrInvalidInput", err)
	}
}

func TestParseForm(t *testing.T) {
	cases := []struct {
		in   string
		x, y string
	}{
		{"2x+9y", "2", "9"},
		{"-7x - 6y", "-7", "-6"},
		{"3/2*x + y", "3/2", "1"},
		{"0.5y", "0", "1/2"},
		{"x - x + 4y", "0", "4"},
		{"- -x", "1", "0"},
	}
	for _, c := range cases {
		e := mustForm(t, c.in)
		byX := gosymbol.PolyCoeffs(gosymbol.Expand(e), "x")
		byY := gosymbol.PolyCoeffs(coeff(byX, 0), "y")
		for _, chk := range []struct {
			got  gosymbol.Expr
			want string
			sym  string
		}{{coeff(byX, 1), c.x, "x"}, {coeff(byY, 1), c.y, "y"}} {
			n, ok := chk.got.Eval()
			if !ok || n.Rat().Cmp(rat(chk.want)) != 0 {
				t.Fatalf("ParseForm(%q) coefficient of %s\nhave %v\nwant %s", c.in, chk.sym, chk.got, chk.want)
			}
		}
	}

	for _, bad := range []string{"", "   ", "2x+", "*x", "2*", "2x 3y", "3/0x", "1..2x"} {
		if _, err := ParseForm(bad); !errors.Is(err, geomerr.ErrInvalidInput) {
			t.Fatalf("ParseForm(%q)\nhave %v\nwant ErrInvalidInput", bad, err)
		}
	}
}

func TestParseFormUnicodeSymbols(t *testing.T) {
	e := mustForm(t, "3β - αx")
	for _, c := range []struct {
		sym  string
		want string
	}{{"β", "3"}, {"αx", "-1"}} {
		got := coeff(gosymbol.PolyCoeffs(gosymbol.Expand(e), c.sym), 1)
		n, ok := got.Eval()
		if !ok || n.Rat().Cmp(rat(c.want)) != 0 {
			t.Fatalf("coefficient of %s\nhave %v\nwant %s", c.sym, got, c.want)
		}
	}

	_, err := ParseForm("2x+€")
	if !errors.Is(err, geomerr.ErrInvalidInput) {
		t.Fatalf("have %v\nwant ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "unexpected '€'") {
		t.Fatalf("error should name the whole character: %v", err)
	}
}
