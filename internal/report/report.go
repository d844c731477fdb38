// Package report formats operation results as human-readable lines.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"geomlab/internal/camera"
	"geomlab/internal/mathutil"
	"geomlab/internal/symsolve"
)

// Printer formats numbers either plainly or for a locale.
// The zero Printer formats plainly.
type Printer struct {
	mp *message.Printer // nil: plain formatting
}

// New returns a Printer for locale (a BCP 47 tag such as "pt-BR").
// An empty locale selects plain, locale-independent output.
func New(locale string) (*Printer, error) {
	if locale == "" {
		return &Printer{}, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("report: locale %q: %w", locale, err)
	}
	return &Printer{mp: message.NewPrinter(tag)}, nil
}

func (p *Printer) Sprintf(format string, args ...any) string {
	if p.mp == nil {
		return fmt.Sprintf(format, args...)
	}
	return p.mp.Sprintf(format, args...)
}

// Pixel formats projected pixel coordinates to 2 decimal places.
func (p *Printer) Pixel(px camera.Pixel) string {
	return p.Sprintf("Projected point: (%.2f, %.2f)", px.X, px.Y)
}

// Solution formats solved coefficients to 3 decimal places.
func (p *Printer) Solution(s symsolve.Solution) string {
	t, l := s.Float()
	return p.Sprintf("T = %.3f, L = %.3f", t, l)
}

// Normal formats a triangle normal.
func (p *Printer) Normal(n mathutil.Vec3) string {
	return "The normal vector of the triangle is: " + p.Vec(n)
}

// Scaled formats a scaled normal.
func (p *Printer) Scaled(n mathutil.Vec3, scale float64) string {
	return "Multiplied by " + p.Num(scale) + ": " + p.Vec(n)
}

// Vec formats a vector as a raw numeric sequence: [-13 -34 137].
func (p *Printer) Vec(v mathutil.Vec3) string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = p.Num(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Num formats a number with the shortest exact representation.
func (p *Printer) Num(x float64) string {
	if x == 0 {
		x = 0 // drop the sign of -0
	}
	if p.mp == nil {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return p.mp.Sprint(x)
}
