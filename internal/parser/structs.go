package parser

import (
	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/token"
)

// parseStructDecl parses `struct Name { field+ } ;` where each field is
// `attributes? ident : type ;`.
func (p *Parser) parseStructDecl() (ast.Decl, bool) {
	kw := p.bump() // 'struct'

	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.Decl{}, false
	}
	if _, ok = p.expect(token.LBrace); !ok {
		return ast.Decl{}, false
	}

	decl := ast.Decl{
		Kind:     ast.DeclStruct,
		Name:     name.Text,
		NameSpan: name.Span,
	}

	for !p.at(token.RBrace) {
		field, fieldOK := p.parseStructField()
		if !fieldOK {
			return ast.Decl{}, false
		}
		decl.StructFields = append(decl.StructFields, field)
	}
	if len(decl.StructFields) == 0 {
		p.emit(diag.SynExpectField, p.lx.Peek().Span,
			"structure must declare at least one field")
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

func (p *Parser) parseStructField() (ast.StructField, bool) {
	var attrs []ast.Attr
	if p.at(token.LBracket) {
		var ok bool
		attrs, ok = p.parseAttrs()
		if !ok {
			return ast.StructField{}, false
		}
	}

	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.StructField{}, false
	}
	if _, ok = p.expect(token.Colon); !ok {
		return ast.StructField{}, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.StructField{}, false
	}
	end, ok := p.expect(token.Semicolon)
	if !ok {
		return ast.StructField{}, false
	}

	return ast.StructField{
		Name:  name.Text,
		Type:  typ,
		Attrs: attrs,
		Span:  name.Span.Cover(end.Span),
	}, true
}
