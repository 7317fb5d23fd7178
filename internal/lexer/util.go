package lexer

// Identifiers follow [A-Za-z_][A-Za-z0-9_]*; the grammar is byte-oriented
// ASCII, so no rune decoding is needed.
func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isBin(b byte) bool { return b == '0' || b == '1' }
