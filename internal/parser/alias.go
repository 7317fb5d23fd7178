package parser

import (
	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/token"
)

// parseAliasDecl parses `using NewName = type ;`.
func (p *Parser) parseAliasDecl() (ast.Decl, bool) {
	kw := p.bump() // 'using'

	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.Decl{}, false
	}
	if _, ok = p.expect(token.Assign); !ok {
		return ast.Decl{}, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.Decl{}, false
	}
	end, ok := p.expect(token.Semicolon)
	if !ok {
		return ast.Decl{}, false
	}

	return ast.Decl{
		Kind:     ast.DeclAlias,
		Name:     name.Text,
		NameSpan: name.Span,
		Span:     kw.Span.Cover(end.Span),
		Alias:    typ,
	}, true
}
