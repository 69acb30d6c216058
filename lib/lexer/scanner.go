// Package lexer implements a single-pass scanner that classifies a byte
// stream into identifier, keyword, literal, operator, separator, comment,
// preprocessor directive and invalid tokens.
package lexer

import (
	"bufio"
	"io"

	"github.com/tokscan/tokscan/lib/token"
)

type state int

const (
	stNone state = iota
	stIdentifier
	stLiteral
	stOperator
	stSeparator
	stComment
	stInvalid
	stDirective
)

func (st state) kind() token.Kind {
	switch st {
	case stIdentifier:
		return token.Identifier
	case stLiteral:
		return token.Literal
	case stOperator:
		return token.Operator
	case stSeparator:
		return token.Separator
	case stComment:
		return token.Comment
	case stInvalid:
		return token.Invalid
	case stDirective:
		return token.PreprocessorDirective
	}
	return token.None
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithAtomicIdents replaces the set of qualified names that are emitted as
// single identifiers without a reserved-word check.
func WithAtomicIdents(names []string) Option {
	return func(s *Scanner) {
		s.atomics = makeSet(names...)
	}
}

// WithKeywords reserves additional words on top of the built-in table.
func WithKeywords(words []string) Option {
	return func(s *Scanner) {
		for _, w := range words {
			s.extraKeywords[w] = struct{}{}
		}
	}
}

// Scanner drives one pass over a byte stream. The buffer holds the lexeme
// being accumulated; it is empty exactly when the state is stNone.
type Scanner struct {
	r   *bufio.Reader
	buf []byte
	st  state

	// inString marks the double-quoted sub-mode, which captures every
	// byte (including token-starting ones) until the closing quote.
	inString bool

	atomics       map[string]struct{}
	extraKeywords map[string]struct{}

	line, col       int // position of the byte being processed
	tokLine, tokCol int // position of the buffer's first byte
}

// New returns a Scanner over r. By default std::cout and std::endl are
// treated as atomic identifiers.
func New(r io.Reader, opts ...Option) *Scanner {
	s := &Scanner{
		r:             bufio.NewReader(r),
		st:            stNone,
		atomics:       makeSet("std::cout", "std::endl"),
		extraKeywords: map[string]struct{}{},
		line:          1,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run scans until the input is exhausted, handing each completed token to
// sink in order. A non-EOF read error aborts the pass.
func (s *Scanner) Run(sink func(token.Token)) error {
	for {
		ch, err := s.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				s.flush(sink)
				return nil
			}
			return err
		}
		s.col++

		// A boundary step may finish a token without consuming ch;
		// reprocess the same byte until a step claims it.
		for {
			tok, emitted, redo := s.step(ch)
			if emitted {
				sink(tok)
			}
			if !redo {
				break
			}
		}

		if ch == '\n' {
			s.line++
			s.col = 0
		}
	}
}

// Scan collects the full token stream of the input.
func (s *Scanner) Scan() ([]token.Token, error) {
	var toks []token.Token
	err := s.Run(func(t token.Token) {
		toks = append(toks, t)
	})
	return toks, err
}

// step is the transition function: it consumes ch (and, for the ::
// qualifier, one peeked byte) and reports an emitted token plus whether ch
// must be reprocessed as the start of the next token.
func (s *Scanner) step(ch byte) (tok token.Token, emitted, redo bool) {
	if s.inString {
		s.push(ch)
		if ch == '"' {
			s.inString = false
			return s.emit(token.Literal), true, false
		}
		return token.Token{}, false, false
	}

	switch s.st {
	case stNone:
		switch {
		case isSpace(ch):
			return token.Token{}, false, false
		case ch == '#':
			s.st = stDirective
		case isAlpha(ch) || ch == '_':
			s.st = stIdentifier
		case isDigit(ch):
			s.st = stLiteral
		case ch == '"':
			s.inString = true
			s.st = stLiteral
		case IsOperator(single(ch)):
			s.st = stOperator
		case IsSeparator(single(ch)):
			s.st = stSeparator
		default:
			s.st = stInvalid
		}
		s.push(ch)

	case stDirective:
		if ch == '\n' {
			return s.emit(token.PreprocessorDirective), true, false
		}
		s.push(ch)

	case stIdentifier:
		if isAlnum(ch) || ch == '_' {
			s.push(ch)
			break
		}
		// Scope qualifier: a :: extends the identifier across
		// namespaces. Both colons are consumed by this step.
		if ch == ':' {
			if next, ok := s.peek(); ok && next == ':' {
				s.push(ch)
				second, _ := s.r.ReadByte()
				s.col++
				s.push(second)
				break
			}
		}
		return s.resolveIdent(), true, true

	case stLiteral:
		if isDigit(ch) || ch == '.' || ch == '\'' {
			s.push(ch)
			break
		}
		return s.emit(token.Literal), true, true

	case stOperator, stSeparator:
		// Greedy extension: keep appending while the longer spelling
		// is still in either table, emit under the entry state.
		if ext := string(s.buf) + single(ch); IsOperator(ext) || IsSeparator(ext) {
			s.push(ch)
			break
		}
		return s.emit(s.st.kind()), true, true

	case stComment:
		if ch == '\n' {
			return s.emit(token.Comment), true, false
		}
		s.push(ch)

	case stInvalid:
		// The triggering byte is not part of the invalid token; it
		// starts the next one.
		return s.emit(token.Invalid), true, true
	}

	return token.Token{}, false, false
}

// flush emits the trailing buffer at end of stream. An unterminated string
// sub-mode buffer never flushes; only state-based emission applies.
func (s *Scanner) flush(sink func(token.Token)) {
	if len(s.buf) == 0 {
		return
	}
	if s.inString {
		s.buf = s.buf[:0]
		s.inString = false
		s.st = stNone
		return
	}
	switch s.st {
	case stIdentifier:
		sink(s.resolveIdent())
	case stNone:
	default:
		sink(s.emit(s.st.kind()))
	}
}

// resolveIdent finalizes an identifier buffer, splitting off reserved
// words unless the buffer is an atomic qualified name.
func (s *Scanner) resolveIdent() token.Token {
	lex := string(s.buf)
	if _, ok := s.atomics[lex]; ok {
		return s.emit(token.Identifier)
	}
	if s.isKeyword(lex) {
		return s.emit(token.Keyword)
	}
	return s.emit(token.Identifier)
}

func (s *Scanner) isKeyword(lex string) bool {
	if _, ok := s.extraKeywords[lex]; ok {
		return true
	}
	return IsKeyword(lex)
}

func (s *Scanner) push(ch byte) {
	if len(s.buf) == 0 {
		s.tokLine, s.tokCol = s.line, s.col
	}
	s.buf = append(s.buf, ch)
}

func (s *Scanner) emit(k token.Kind) token.Token {
	t := token.Token{Kind: k, Text: string(s.buf), Line: s.tokLine, Col: s.tokCol}
	s.buf = s.buf[:0]
	s.st = stNone
	return t
}

func (s *Scanner) peek() (byte, bool) {
	b, err := s.r.Peek(1)
	if err != nil || len(b) == 0 {
		return 0, false
	}
	return b[0], true
}

// single converts one byte to a string without rune interpretation.
func single(ch byte) string {
	return string([]byte{ch})
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlnum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
