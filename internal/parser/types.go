package parser

import (
	"fmt"

	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/token"
)

// parseType parses a base type (builtin or user-declared name) followed by
// any number of array suffixes. Suffixes wrap outward: `uint32[10][]` is a
// dynamic array of `uint32[10]`.
func (p *Parser) parseType() (ast.TypeRef, bool) {
	tok := p.lx.Peek()
	if tok.Kind != token.Ident {
		if tok.Kind == token.Invalid {
			return ast.TypeRef{}, false
		}
		p.emit(diag.SynExpectType, tok.Span,
			fmt.Sprintf("expected type, found %s", tok.Kind))
		return ast.TypeRef{}, false
	}
	p.bump()

	var typ ast.TypeRef
	if builtin, ok := ast.LookupBuiltin(tok.Text); ok {
		typ = ast.BuiltinType(builtin)
	} else {
		typ = ast.NamedType(tok.Text)
	}

	for p.at(token.LBracket) {
		p.bump()
		if p.at(token.RBracket) {
			p.bump()
			typ = ast.DynamicArrayOf(typ)
			continue
		}
		sizeTok, ok := p.expect(token.IntLit)
		if !ok {
			return ast.TypeRef{}, false
		}
		size, ok := p.parseUint(sizeTok)
		if !ok {
			return ast.TypeRef{}, false
		}
		if _, ok = p.expect(token.RBracket); !ok {
			return ast.TypeRef{}, false
		}
		typ = ast.StaticArrayOf(typ, size)
	}
	return typ, true
}
