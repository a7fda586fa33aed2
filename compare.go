package uapiversion

import "strings"

// Compare compares two version strings according to the UAPI version format
// specification.
//
// The result will be 0 if a == b, -1 if a < b, or +1 if a > b.
//
// Any pair of strings has a defined order: characters outside the valid set
// (ASCII letters, ASCII digits, and '~', '-', '^', '.') are skipped, the
// empty string sorts before everything except pre-releases, and the rest is
// decided segment by segment.
func Compare(a, b string) int {
	var i, j int

	for {
		// invalid characters are skipped wherever they occur
		for i < len(a) && !isValidVersionChar(a[i]) {
			i++
		}
		for j < len(b) && !isValidVersionChar(b[j]) {
			j++
		}

		aOK := i < len(a)
		bOK := j < len(b)

		// a '~' marks a pre-release, which sorts before anything else,
		// including the end of the string
		aTilde := aOK && a[i] == '~'
		bTilde := bOK && b[j] == '~'

		if aTilde || bTilde {
			if diff := compareMarker(aTilde, bTilde); diff != 0 {
				return diff
			}

			i++
			j++

			continue
		}

		// the string with content remaining sorts after the one without
		if !aOK || !bOK {
			if aOK {
				return +1
			}
			if bOK {
				return -1
			}

			return 0
		}

		// '-', '^', and '.' follow the same presence-before-absence rule
		// as '~', checked in decreasing order of precedence
		bothHold := false

		for _, marker := range [...]byte{'-', '^', '.'} {
			aHolds := a[i] == marker
			bHolds := b[j] == marker

			if !aHolds && !bHolds {
				continue
			}

			if diff := compareMarker(aHolds, bHolds); diff != 0 {
				return diff
			}

			bothHold = true

			break
		}

		if bothHold {
			i++
			j++

			continue
		}

		if isASCIIDigit(a[i]) || isASCIIDigit(b[j]) {
			// leading zeros carry no weight
			for i < len(a) && a[i] == '0' {
				i++
			}
			for j < len(b) && b[j] == '0' {
				j++
			}

			si, sj := i, j
			for i < len(a) && isASCIIDigit(a[i]) {
				i++
			}
			for j < len(b) && isASCIIDigit(b[j]) {
				j++
			}

			aDigits := a[si:i]
			bDigits := b[sj:j]

			// comparing lengths first gives numeric order over digit runs
			// of any size, without arbitrary-precision arithmetic
			if len(aDigits) != len(bDigits) {
				if len(aDigits) < len(bDigits) {
					return -1
				}

				return +1
			}

			if diff := strings.Compare(aDigits, bDigits); diff != 0 {
				return diff
			}
		} else {
			si, sj := i, j
			for i < len(a) && isASCIILetter(a[i]) {
				i++
			}
			for j < len(b) && isASCIILetter(b[j]) {
				j++
			}

			if diff := strings.Compare(a[si:i], b[sj:j]); diff != 0 {
				return diff
			}
		}
	}
}

// compareMarker resolves precedence for a single marker character: the side
// holding the marker sorts before the side that does not.
func compareMarker(aHolds, bHolds bool) int {
	if aHolds == bHolds {
		return 0
	}

	if aHolds {
		return -1
	}

	return +1
}

// isValidVersionChar reports whether c participates in comparison at all.
// Every other byte, including each byte of a multi-byte UTF-8 sequence, is
// skipped as if it were not there.
func isValidVersionChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '~' || c == '-' || c == '^' || c == '.'
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
