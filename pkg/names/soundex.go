package names

import "strings"

// EmptySoundex is the sentinel code for a name with no letters. Two
// empty components share it, so similarity checks must exclude it.
const EmptySoundex = "0000"

// Soundex encodes a name as a letter plus three digits: uppercase, strip
// non-letters, keep the first letter, map the rest through the standard
// six-class consonant table, collapse adjacent duplicate codes, and pad
// with zeros. Non-coded letters reset the adjacency tracking.
func Soundex(s string) string {
	var letters []byte
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, byte(r))
		}
	}
	if len(letters) == 0 {
		return EmptySoundex
	}

	code := make([]byte, 1, 4)
	code[0] = letters[0]
	prev := soundexClass(letters[0])

	for _, ch := range letters[1:] {
		if len(code) == 4 {
			break
		}
		class := soundexClass(ch)
		if class != '0' && class != prev {
			code = append(code, class)
		}
		prev = class
	}

	for len(code) < 4 {
		code = append(code, '0')
	}

	return string(code)
}

// soundexClass returns the consonant class digit for a letter, or '0'
// for vowels and the other non-coded letters.
func soundexClass(ch byte) byte {
	switch ch {
	case 'B', 'F', 'P', 'V':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	default:
		return '0'
	}
}
