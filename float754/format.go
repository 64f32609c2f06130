// Package float754 decodes IEEE-754 binary32 and binary64 values into
// their sign, exponent and fraction fields.
//
// The package reports bit layout only: fields are extracted by mask and
// shift, never interpreted. NaN, infinities and subnormals pass through
// like any other bit pattern.
package float754

import "fmt"

// Format describes the bit layout of an IEEE-754 binary interchange
// format. Fields are ordered sign, biased exponent, fraction, most
// significant bit first.
type Format struct {
	Bits     int // total width of the format
	ExpBits  int // width of the biased exponent field
	FracBits int // width of the trailing significand field
}

var (
	Binary32 = Format{Bits: 32, ExpBits: 8, FracBits: 23}
	Binary64 = Format{Bits: 64, ExpBits: 11, FracBits: 52}
)

// Fields is the three-way partition of a raw bit pattern. The fields
// never overlap and together cover every bit of the pattern.
type Fields struct {
	Sign uint64
	Exp  uint64
	Frac uint64
}

// Split extracts the sign, exponent and fraction fields from a raw bit
// pattern. Patterns narrower than 64 bits occupy the low-order bits of
// raw.
func (f Format) Split(raw uint64) Fields {
	return Fields{
		Sign: raw >> (f.Bits - 1) & 1,
		Exp:  raw >> f.FracBits & (1<<f.ExpBits - 1),
		Frac: raw & (1<<f.FracBits - 1),
	}
}

// Join reassembles a raw bit pattern from its fields. It is the inverse
// of Split for any pattern of the format's width.
func (f Format) Join(fl Fields) uint64 {
	return fl.Sign<<(f.Bits-1) | fl.Exp<<f.FracBits | fl.Frac
}

// BitString renders raw as f.Bits binary digits, most significant bit
// first, with a single space after the sign bit and another after the
// exponent field.
func (f Format) BitString(raw uint64) string {
	bits := fmt.Sprintf("%0*b", f.Bits, raw)
	return bits[:1] + " " + bits[1:1+f.ExpBits] + " " + bits[1+f.ExpBits:]
}

// expHexDigits returns the number of hex digits needed to print a full
// exponent field.
func (f Format) expHexDigits() int { return (f.ExpBits + 3) / 4 }

// fracHexDigits returns the number of hex digits needed to print a full
// fraction field.
func (f Format) fracHexDigits() int { return (f.FracBits + 3) / 4 }
