package schema

// ValidName reports whether s is a well-formed command name segment:
// one or more runs of ASCII letters, digits, or underscores, separated
// by single hyphens. Equivalent to the pattern
//
//	[A-Za-z0-9_]+(-[A-Za-z0-9_]+)*
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	prevHyphen := true // also rejects a leading hyphen
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '-':
			if prevHyphen {
				return false
			}
			prevHyphen = true
		case isWordByte(c):
			prevHyphen = false
		default:
			return false
		}
	}
	return !prevHyphen
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
