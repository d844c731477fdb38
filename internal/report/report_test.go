package report

import (
	"math/big"
	"testing"

	"geomlab/internal/camera"
	"geomlab/internal/mathutil"
	"geomlab/internal/symsolve"
)

func TestPlain(t *testing.T) {
	p, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if s := p.Pixel(camera.Pixel{X: 277.388297433255, Y: 214.9069976675806}); s != "Projected point: (277.39, 214.91)" {
		t.Fatalf("Pixel\nhave %q", s)
	}
	sol := symsolve.Solution{T: big.NewRat(-2, 7), L: big.NewRat(95, 42)}
	if s := p.Solution(sol); s != "T = -0.286, L = 2.262" {
		t.Fatalf("Solution\nhave %q", s)
	}
	n := mathutil.Vec3{-13, -34, 137}
	if s := p.Normal(n); s != "The normal vector of the triangle is: [-13 -34 137]" {
		t.Fatalf("Normal\nhave %q", s)
	}
	if s := p.Scaled(n.Scale(2), 2); s != "Multiplied by 2: [-26 -68 274]" {
		t.Fatalf("Scaled\nhave %q", s)
	}
	if s := p.Vec(mathutil.Vec3{0.5, -0.0, 1e-3}); s != "[0.5 0 0.001]" {
		t.Fatalf("Vec\nhave %q", s)
	}
}

func TestZeroPrinter(t *testing.T) {
	var p Printer
	if s := p.Pixel(camera.Pixel{X: 1.25, Y: 2}); s != "Projected point: (1.25, 2.00)" {
		t.Fatalf("Pixel\nhave %q", s)
	}
	if s := p.Num(1234.5); s != "1234.5" {
		t.Fatalf("Num\nhave %q", s)
	}
}

func TestLocale(t *testing.T) {
	p, err := New("pt-BR")
	if err != nil {
		t.Fatal(err)
	}
	if s := p.Pixel(camera.Pixel{X: 277.388297433255, Y: 214.9069976675806}); s != "Projected point: (277,39, 214,91)" {
		t.Fatalf("Pixel pt-BR\nhave %q", s)
	}
	if _, err := New("not a locale!"); err == nil {
		t.Fatal("expected error for malformed locale")
	}
}
