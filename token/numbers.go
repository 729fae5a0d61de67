package token

// Number scans a number literal at the start of d:
//
//	"-"? ("0" | [1-9][0-9]*) ("." [0-9]+)? ([eE] [+-]? [0-9]+)?
//
// It returns the length of the literal and whether it has a fraction or
// an exponent.  A literal followed directly by another number character,
// such as "1." or "01", is an error.
func Number(d []byte) (int, bool, error) {
	sign := 0
	if len(d) > 0 && d[0] == '-' {
		sign = 1
	}
	digits := asciiDigits(d[sign:])
	if digits == 0 {
		return sign, false, ErrNumber
	}
	if digits > 1 && d[sign] == '0' {
		return sign + digits, false, ErrNumberLeadingZero
	}
	i := sign + digits
	f := fract(d[i:])
	e := exp(d[i+f:])
	n := i + f + e
	if n < len(d) && IsNumberByte(d[n]) {
		return n, false, ErrNumber
	}
	return n, f+e != 0, nil
}

// ValidNumber reports whether lit is exactly one JSON number literal.
func ValidNumber(lit string) bool {
	n, _, err := Number([]byte(lit))
	return err == nil && n == len(lit)
}

// IsNumberByte reports whether c may occur in a number literal.
func IsNumberByte(c byte) bool {
	switch c {
	case '-', '+', '.', 'e', 'E':
		return true
	}
	return asciiDigit(c)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 7159
		return 0
	}
	return n + 1
}
