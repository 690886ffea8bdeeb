package literal

// UTF-16 surrogate ranges.
const (
	surrHighStart = 0xD800
	surrHighEnd   = 0xDBFF
	surrLowStart  = 0xDC00
	surrLowEnd    = 0xDFFF
)

// IsHighSurrogate reports whether u is a UTF-16 high (leading) surrogate.
func IsHighSurrogate(u uint16) bool {
	return u >= surrHighStart && u <= surrHighEnd
}

// IsLowSurrogate reports whether u is a UTF-16 low (trailing) surrogate.
func IsLowSurrogate(u uint16) bool {
	return u >= surrLowStart && u <= surrLowEnd
}

// CombineSurrogates combines a high/low surrogate pair into the astral code
// point it encodes.
func CombineSurrogates(hi, lo uint16) rune {
	return 0x10000 + (rune(hi)-surrHighStart)<<10 + (rune(lo) - surrLowStart)
}

// SplitSurrogates splits an astral code point (above U+FFFF) into its UTF-16
// surrogate pair.
func SplitSurrogates(r rune) (hi, lo uint16) {
	r -= 0x10000
	return uint16(surrHighStart + (r >> 10)), uint16(surrLowStart + (r & 0x3FF))
}

// SafePrefixLen trims a candidate prefix length so the boundary does not
// split a surrogate pair: a prefix may not end on a high surrogate. Returns
// p, or p-1 when unit p-1 is a high surrogate.
func SafePrefixLen(sample Lit, p int) int {
	if p > 0 && p <= sample.Len() && IsHighSurrogate(sample[p-1]) {
		return p - 1
	}
	return p
}

// SafeSuffixLen trims a candidate suffix length so the boundary does not
// split a surrogate pair: a suffix may not begin on a low surrogate. Returns
// s, or s-1 when the suffix's first unit is a low surrogate.
func SafeSuffixLen(sample Lit, s int) int {
	if s > 0 && s <= sample.Len() && IsLowSurrogate(sample[sample.Len()-s]) {
		return s - 1
	}
	return s
}
