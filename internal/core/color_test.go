package core

import "testing"

func TestANSIRoundTrip(t *testing.T) {
	for _, idx := range []uint8{0, 16, 196, 255} {
		got, ok := ANSI(idx).ANSIIndex()
		if !ok || got != idx {
			t.Errorf("ANSI(%d).ANSIIndex() = %d, %v", idx, got, ok)
		}
	}
}

func TestNamedColorsAreNotANSI(t *testing.T) {
	for _, c := range []Color{ColorDefault, ColorRed, ColorGray} {
		if _, ok := c.ANSIIndex(); ok {
			t.Errorf("named color %d should not report a palette index", c)
		}
	}
}
