// Package scan classifies the tokens of a captured argument vector
// against a recognizer function. The grammar is presence-only: a token
// beginning with a dash must be a recognized flag, and any other token
// must immediately follow one, as its parameter.
package scan

import "strings"

// Recognizer reports whether a token is a known flag name.
type Recognizer func(token string) bool

// Contains reports whether token occurs in args by exact match.
func Contains(args []string, token string) bool {
	for _, arg := range args {
		if arg == token {
			return true
		}
	}

	return false
}

// Unknown returns the first offending token of the vector, scanning from
// index 1 (index 0 holds the program name). A dash-prefixed token offends
// when it is not recognized; any other token offends when the token
// before it is not recognized. When trailing is true the final token is
// exempt, allowing a free-form trailing parameter.
func Unknown(argv []string, recognized Recognizer, trailing bool) (string, bool) {
	end := len(argv)
	if trailing && end > 1 {
		end--
	}

	for i := 1; i < end; i++ {
		token := argv[i]

		if strings.HasPrefix(token, "-") {
			if !recognized(token) {
				return token, true
			}
		} else if !recognized(argv[i-1]) {
			return token, true
		}
	}

	return "", false
}

// Parameter returns the token following the first occurrence of name in
// argv, provided that token exists and is not itself a recognized flag.
func Parameter(argv []string, recognized Recognizer, name string) string {
	for i, token := range argv {
		if token != name {
			continue
		}

		if next := i + 1; next < len(argv) && !recognized(argv[next]) {
			return argv[next]
		}

		return ""
	}

	return ""
}
