package token

// number returns the length of the JSON number at the start of d, following
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
//
// The returned bool reports whether the number has a fraction or exponent.
func number(d []byte) (int, bool, error) {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i + 1, false, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return i + f, false, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return i + e, false, err
	}
	i += e
	return i, f+e != 0, nil
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

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) {
		switch d[i] {
		case '+', '-':
			i++
		}
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		// exponent must have 1 or more digits
		return i, ErrNumber
	}
	return n + i, nil
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 8259
		return 1, ErrNumber
	}
	return n + 1, nil
}
