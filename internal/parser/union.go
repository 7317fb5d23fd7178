package parser

import (
	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/token"
)

// parseUnionDecl parses `union Name { field+ } ;` where each field is
// `uint => ident : type ;` or `uint .. uint => ident : type ;`.
func (p *Parser) parseUnionDecl() (ast.Decl, bool) {
	kw := p.bump() // 'union'

	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.Decl{}, false
	}
	if _, ok = p.expect(token.LBrace); !ok {
		return ast.Decl{}, false
	}

	decl := ast.Decl{
		Kind:     ast.DeclUnion,
		Name:     name.Text,
		NameSpan: name.Span,
	}

	for !p.at(token.RBrace) {
		field, fieldOK := p.parseUnionField()
		if !fieldOK {
			return ast.Decl{}, false
		}
		decl.UnionFields = append(decl.UnionFields, field)
	}
	if len(decl.UnionFields) == 0 {
		p.emit(diag.SynExpectField, p.lx.Peek().Span,
			"union must declare at least one field")
		return ast.Decl{}, false
	}

	if _, ok = p.expect(token.RBrace); !ok {
		return ast.Decl{}, false
	}
	end, ok := p.expect(token.Semicolon)
	if !ok {
		return ast.Decl{}, false
	}

	decl.Span = kw.Span.Cover(end.Span)
	return decl, true
}

func (p *Parser) parseUnionField() (ast.UnionField, bool) {
	loTok, ok := p.expect(token.IntLit)
	if !ok {
		return ast.UnionField{}, false
	}
	lo, ok := p.parseUint(loTok)
	if !ok {
		return ast.UnionField{}, false
	}

	field := ast.UnionField{
		Lo: lo,
		Hi: lo,
	}

	if p.at(token.DotDot) {
		p.bump()
		hiTok, hiOK := p.expect(token.IntLit)
		if !hiOK {
			return ast.UnionField{}, false
		}
		hi, hiOK := p.parseUint(hiTok)
		if !hiOK {
			return ast.UnionField{}, false
		}
		if hi < lo {
			p.emit(diag.SynBadRange, loTok.Span.Cover(hiTok.Span),
				"range end must not be smaller than range start")
			return ast.UnionField{}, false
		}
		field.Hi = hi
		field.IsRange = true
	}

	if _, ok = p.expect(token.FatArrow); !ok {
		return ast.UnionField{}, false
	}
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.UnionField{}, false
	}
	if _, ok = p.expect(token.Colon); !ok {
		return ast.UnionField{}, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.UnionField{}, false
	}
	end, ok := p.expect(token.Semicolon)
	if !ok {
		return ast.UnionField{}, false
	}

	field.Name = name.Text
	field.Type = typ
	field.Span = loTok.Span.Cover(end.Span)
	return field, true
}
