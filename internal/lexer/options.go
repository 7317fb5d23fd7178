package lexer

import (
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/source"
)

// Reporter is a thin interface so the lexer stays decoupled from diagnostic
// storage. diag.BagReporter satisfies it.
type Reporter interface {
	Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
