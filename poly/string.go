package poly

import (
	"fmt"
	"strings"
)

// String renders the polynomial in human-readable form, e.g. "-1 + 3 * X**2"
// or "(1+3j) * X". Pure imaginary coefficients are rendered with a trailing
// "j" and the zero polynomial renders as "0".
func (p Polynomial) String() string {

	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder

	for i, c := range p.Coeffs {
		if c == 0 {
			continue
		}

		mult := 1.0
		addMulSign := true
		if sb.Len() != 0 {
			if real(c) <= 0 && imag(c) <= 0 {
				mult = -1
			}
			if mult == 1 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
		}

		re, im := mult*real(c), mult*imag(c)
		switch {
		case real(c) == 0:
			if imag(c) != 1 {
				fmt.Fprintf(&sb, "%g", im)
			}
			sb.WriteString("j")
		case im == 0:
			if re != 1 || i == 0 {
				fmt.Fprintf(&sb, "%g", re)
			} else {
				addMulSign = false
			}
		default:
			if i == 0 {
				fmt.Fprintf(&sb, "%g%+gj", re, im)
			} else {
				fmt.Fprintf(&sb, "(%g%+gj)", re, im)
			}
		}

		switch {
		case i == 1 && addMulSign:
			sb.WriteString(" * X")
		case i == 1:
			sb.WriteString("X")
		case i > 1 && addMulSign:
			fmt.Fprintf(&sb, " * X**%d", i)
		case i > 1:
			fmt.Fprintf(&sb, "X**%d", i)
		}
	}

	return sb.String()
}
