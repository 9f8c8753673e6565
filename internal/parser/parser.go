package parser

import (
	"errors"

	"rtlil/internal/diag"
	"rtlil/internal/ir"
	"rtlil/internal/lexer"
	"rtlil/internal/source"
	"rtlil/internal/token"
)

type Options struct {
	// MaxDepth bounds switch and concatenation nesting; 0 means unlimited.
	MaxDepth int
	// Reporter receives lexical diagnostics and, on failure, the parse error.
	Reporter diag.Reporter
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span последнего съеденного токена

	lexErrs map[uint32]diag.Diagnostic // лексические ошибки по началу span
	attrs   pendingAttrs
	decls   map[declKey]source.Span // имена в текущей области видимости
}

type declKey struct {
	category string
	name     ir.Ident
}

// ParseBytes parses src as a whole netlist named name.
func ParseBytes(name string, src []byte, opts Options) (*ir.Design, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return ParseFile(fs.Get(id), opts)
}

// ParseFile parses an already loaded file. Parsing is all-or-nothing: the
// first error aborts and no design is returned.
func ParseFile(file *source.File, opts Options) (*ir.Design, error) {
	p := &Parser{
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
		lexErrs:  make(map[uint32]diag.Diagnostic),
		decls:    make(map[declKey]source.Span),
	}
	p.lx = lexer.New(file, lexer.Options{Reporter: lexCapture{p: p}})

	d, err := p.parseDesign()
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) {
			diag.ReportDiagnostic(opts.Reporter, perr.Diagnostic())
		}
		return nil, err
	}
	return d, nil
}

// lexCapture remembers lexer diagnostics so an Invalid token can later be
// explained, and forwards them to the caller's reporter.
type lexCapture struct{ p *Parser }

func (c lexCapture) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if _, seen := c.p.lexErrs[primary.Start]; !seen {
		c.p.lexErrs[primary.Start] = diag.New(sev, code, primary, msg)
	}
	if r := c.p.opts.Reporter; r != nil {
		r.Report(code, sev, primary, msg, notes)
	}
}

// parseDesign: верхний уровень: [autoidx N] затем модули до EOF.
func (p *Parser) parseDesign() (*ir.Design, error) {
	d := &ir.Design{}

	if p.at(token.KwAutoidx) {
		p.advance()
		n, _, err := p.parseInt("autoidx value")
		if err != nil {
			return nil, err
		}
		d.AutoIdx = &n
	}

	for {
		switch p.peek().Kind {
		case token.EOF:
			if err := p.rejectPending("a module"); err != nil {
				return nil, err
			}
			return d, nil

		case token.KwAttribute:
			if err := p.parseAttribute(); err != nil {
				return nil, err
			}

		case token.KwModule:
			m, err := p.parseModule()
			if err != nil {
				return nil, err
			}
			d.Modules.Insert(m.Name, m)

		default:
			return nil, p.unexpected("'module' or 'attribute'")
		}
	}
}
