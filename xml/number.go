package xml

import (
	"math"
	"strconv"
)

// FormatFloat returns the text form of v used for XML numbers. It is the
// shortest representation that parses back to v at the given bit size,
// written in exponent form below 1e-6 and from 1e21 up. NaN and the
// infinities are spelled NaN, +Inf and -Inf.
func FormatFloat(v float64, bits int) string {
	return string(encodeFloat(nil, v, bits))
}

func encodeFloat(dst []byte, v float64, bits int) []byte {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.AppendFloat(dst, v, 'g', -1, bits)
	}

	abs := math.Abs(v)
	fmt := byte('f')

	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}

	dst = strconv.AppendFloat(dst, v, fmt, -1, bits)

	if fmt == 'e' {
		// strconv pads negative exponents to two digits; trim one leading
		// zero so 1e-07 is written 1e-7.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}

	return dst
}
