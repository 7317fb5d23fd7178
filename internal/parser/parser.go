package parser

import (
	"fmt"
	"strconv"

	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/lexer"
	"github.com/whiskeyo/meksmith/internal/source"
	"github.com/whiskeyo/meksmith/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Parser holds the state for one file. The parser does not recover: the
// first structural failure aborts the whole module.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	lastSpan source.Span // span of the last consumed token
}

// ParseModule is the entry point for one schema file. On failure the module
// is nil and the reporter has received exactly one syntax diagnostic (or a
// lexical one, already emitted by the lexer).
func ParseModule(lx *lexer.Lexer, opts Options) (*ast.Module, bool) {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	module := &ast.Module{}
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return module, true
		case token.Comment:
			// comments are legal only between top-level declarations
			p.lx.Next()
		default:
			decl, ok := p.parseDecl()
			if !ok {
				return nil, false
			}
			module.Decls = append(module.Decls, decl)
		}
	}
}

func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch tok := p.lx.Peek(); tok.Kind {
	case token.KwEnum:
		return p.parseEnumDecl()
	case token.KwStruct:
		return p.parseStructDecl()
	case token.KwUnion:
		return p.parseUnionDecl()
	case token.KwUsing:
		return p.parseAliasDecl()
	case token.Invalid:
		// the lexer already reported this token
		return ast.Decl{}, false
	default:
		p.emit(diag.SynExpectDeclaration, tok.Span,
			fmt.Sprintf("expected 'enum', 'struct', 'union', or 'using', found %s", tok.Kind))
		return ast.Decl{}, false
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// bump consumes the next token unconditionally.
func (p *Parser) bump() token.Token {
	tok := p.lx.Next()
	p.lastSpan = tok.Span
	return tok
}

// expect consumes the next token if it has the wanted kind, otherwise emits
// a diagnostic naming the expectation and fails.
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	tok := p.lx.Peek()
	if tok.Kind == k {
		return p.bump(), true
	}
	if tok.Kind == token.Invalid {
		return token.Token{}, false
	}
	if tok.Kind == token.Comment {
		p.emit(diag.SynCommentInDeclaration, tok.Span,
			"comments are not allowed inside declarations")
		return token.Token{}, false
	}
	p.emit(diag.SynUnexpectedToken, tok.Span,
		fmt.Sprintf("expected %s, found %s", k, tok.Kind))
	return token.Token{}, false
}

// parseUint converts an IntLit token, accepting decimal, 0x, and 0b forms.
// The base is fixed by the prefix the lexer matched; a bare leading zero is
// still decimal, never octal.
func (p *Parser) parseUint(tok token.Token) (uint64, bool) {
	text, base := tok.Text, 10
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			text, base = text[2:], 16
		case 'b', 'B':
			text, base = text[2:], 2
		}
	}
	v, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		p.emit(diag.LexBadNumber, tok.Span,
			fmt.Sprintf("integer literal %s out of range", tok.Text))
		return 0, false
	}
	return v, true
}

func (p *Parser) emit(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
