package parser

import (
	"fmt"

	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/token"
)

const (
	attrDiscriminatedBy = "discriminated_by"
	attrBits            = "bits"
	attrBytes           = "bytes"
)

// parseAttrs parses `[ attribute (, attribute)* ]`. The leading '[' is known
// to be present.
func (p *Parser) parseAttrs() ([]ast.Attr, bool) {
	p.bump() // '['

	var attrs []ast.Attr
	for {
		attr, ok := p.parseAttr()
		if !ok {
			return nil, false
		}
		attrs = append(attrs, attr)

		if p.at(token.Comma) {
			p.bump()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RBracket); !ok {
		return nil, false
	}
	return attrs, true
}

func (p *Parser) parseAttr() (ast.Attr, bool) {
	name, ok := p.expect(token.Ident)
	if !ok {
		return ast.Attr{}, false
	}
	if _, ok = p.expect(token.Assign); !ok {
		return ast.Attr{}, false
	}

	switch name.Text {
	case attrDiscriminatedBy:
		field, fieldOK := p.expect(token.Ident)
		if !fieldOK {
			return ast.Attr{}, false
		}
		return ast.Attr{
			Kind:  ast.AttrDiscriminatedBy,
			Field: field.Text,
			Span:  name.Span.Cover(field.Span),
		}, true

	case attrBits, attrBytes:
		sizeTok, sizeOK := p.expect(token.IntLit)
		if !sizeOK {
			return ast.Attr{}, false
		}
		size, sizeOK := p.parseUint(sizeTok)
		if !sizeOK {
			return ast.Attr{}, false
		}
		kind := ast.AttrBits
		if name.Text == attrBytes {
			kind = ast.AttrBytes
		}
		return ast.Attr{
			Kind: kind,
			Size: size,
			Span: name.Span.Cover(sizeTok.Span),
		}, true

	default:
		p.emit(diag.SynUnknownAttribute, name.Span,
			fmt.Sprintf("unknown attribute %q (expected 'discriminated_by', 'bits', or 'bytes')", name.Text))
		return ast.Attr{}, false
	}
}
