package token

var keywords = map[string]Kind{
	"enum":   KwEnum,
	"struct": KwStruct,
	"union":  KwUnion,
	"using":  KwUsing,
}

// LookupKeyword returns the keyword kind for ident, if any. Keywords are
// case-sensitive: only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
