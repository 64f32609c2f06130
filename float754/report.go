package float754

import (
	"fmt"
	"io"
	"math"
)

// Fprint32 writes the decoded bit layout of v to w as a five-line
// report: the value at 9 significant digits (the minimum that
// round-trips binary32), the grouped bit string, and the sign, exponent
// and fraction fields in hex and decimal.
func Fprint32(w io.Writer, v float32) error {
	raw := uint64(math.Float32bits(v))
	fl := Binary32.Split(raw)
	_, err := fmt.Fprintf(w, "float = %.9g\nbits  = %s\nsign  = %d\nexp   = 0x%0*X (%d)\nfrac  = 0x%0*X (%d)\n",
		v, Binary32.BitString(raw),
		fl.Sign,
		Binary32.expHexDigits(), fl.Exp, fl.Exp,
		Binary32.fracHexDigits(), fl.Frac, fl.Frac)
	return err
}

// Fprint64 writes the decoded bit layout of v to w. Same shape as
// Fprint32, with the value at 17 significant digits and the fraction
// field in hex only.
func Fprint64(w io.Writer, v float64) error {
	raw := math.Float64bits(v)
	fl := Binary64.Split(raw)
	_, err := fmt.Fprintf(w, "double = %.17g\nbits   = %s\nsign   = %d\nexp    = 0x%0*X (%d)\nfrac   = 0x%0*X\n",
		v, Binary64.BitString(raw),
		fl.Sign,
		Binary64.expHexDigits(), fl.Exp, fl.Exp,
		Binary64.fracHexDigits(), fl.Frac)
	return err
}
