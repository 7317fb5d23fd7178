package parser

import (
	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/token"
)

// parseEnumDecl parses `enum Name { field+ } ;` where each field is
// `ident = uint ;` or `ident = uint .. uint ;`.
func (p *Parser) parseEnumDecl() (ast.Decl, bool) {
	kw := p.bump() // 'enum'

	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.Decl{}, false
	}
	if _, ok = p.expect(token.LBrace); !ok {
		return ast.Decl{}, false
	}

	decl := ast.Decl{
		Kind:     ast.DeclEnum,
		Name:     name.Text,
		NameSpan: name.Span,
	}

	for !p.at(token.RBrace) {
		field, fieldOK := p.parseEnumField()
		if !fieldOK {
			return ast.Decl{}, false
		}
		decl.EnumFields = append(decl.EnumFields, field)
	}
	if len(decl.EnumFields) == 0 {
		p.emit(diag.SynExpectField, p.lx.Peek().Span,
			"enumeration must declare at least one field")
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

func (p *Parser) parseEnumField() (ast.EnumField, bool) {
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.EnumField{}, false
	}
	if _, ok = p.expect(token.Assign); !ok {
		return ast.EnumField{}, false
	}
	loTok, ok := p.expect(token.IntLit)
	if !ok {
		return ast.EnumField{}, false
	}
	lo, ok := p.parseUint(loTok)
	if !ok {
		return ast.EnumField{}, false
	}

	field := ast.EnumField{
		Name: name.Text,
		Lo:   lo,
		Hi:   lo,
	}

	if p.at(token.DotDot) {
		p.bump()
		hiTok, hiOK := p.expect(token.IntLit)
		if !hiOK {
			return ast.EnumField{}, false
		}
		hi, hiOK := p.parseUint(hiTok)
		if !hiOK {
			return ast.EnumField{}, false
		}
		if hi < lo {
			p.emit(diag.SynBadRange, loTok.Span.Cover(hiTok.Span),
				"range end must not be smaller than range start")
			return ast.EnumField{}, false
		}
		field.Hi = hi
		field.IsRange = true
	}

	end, ok := p.expect(token.Semicolon)
	if !ok {
		return ast.EnumField{}, false
	}
	field.Span = name.Span.Cover(end.Span)
	return field, true
}
