package scanner

import (
	"io"
	"strings"
)

// mode is the scanner's current lexical context. Exactly one is active at a
// time.
type mode int

const (
	modeNone mode = iota
	modeQuoteString
	modeTickString
	modeMultiComment
	modeSingleComment
	modeNumber
	modeIdentifier
	modeOperator
)

// Scanner splits a character stream into coarse lexical tokens: identifiers,
// numbers, strings, comments and operators. It is a single-pass text scanner,
// not a grammar lexer: it never fails, tracks no positions, and at end of
// input an unterminated string or comment is dropped rather than reported.
//
// Escape detection inside strings looks back exactly one rune, so a literal
// backslash escape before a quote ("\\") still ends the string early. Known
// limitation, kept on purpose.
type Scanner struct {
	r    *Reader
	mode mode
	buf  strings.Builder
	prev rune
}

func New(r io.Reader) *Scanner {
	return &Scanner{r: NewReader(r)}
}

// Next returns the next token. The second result is false once the input is
// exhausted; after that every call keeps returning false.
func (s *Scanner) Next() (Token, bool) {
	for {
		ch, ok := s.r.Read()
		if !ok {
			return s.flush()
		}
		tok, done := s.step(ch)
		s.prev = ch
		if done {
			return tok, true
		}
	}
}

// All drains the scanner into a slice.
func (s *Scanner) All() []Token {
	var toks []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// step feeds one rune to the state machine. done is true when a token was
// completed by this rune.
func (s *Scanner) step(ch rune) (tok Token, done bool) {
	switch s.mode {
	case modeQuoteString, modeTickString:
		closer := '"'
		if s.mode == modeTickString {
			closer = '\''
		}
		s.buf.WriteRune(ch)
		if ch == closer && s.prev != '\\' {
			return s.emit(String), true
		}

	case modeSingleComment:
		// newline ends the comment and is not part of it
		if ch == '\n' {
			return s.emit(Comment), true
		}
		s.buf.WriteRune(ch)

	case modeMultiComment:
		s.buf.WriteRune(ch)
		if s.prev == '*' && ch == '/' {
			return s.emit(Comment), true
		}

	case modeNumber:
		switch {
		case s.buf.String() == "0" && ch == 'x',
			strings.HasPrefix(s.buf.String(), "0x") && isHexDigit(ch):
			s.buf.WriteRune(ch)
		case isDigit(ch) || ch == '.':
			s.buf.WriteRune(ch)
		default:
			s.r.Unread(ch)
			return s.emit(Number), true
		}

	case modeIdentifier:
		if isIdentChar(ch) {
			s.buf.WriteRune(ch)
		} else {
			s.r.Unread(ch)
			return s.emit(Identifier), true
		}

	case modeOperator:
		if isOperatorChar(ch) {
			s.buf.WriteRune(ch)
		} else {
			s.r.Unread(ch)
			return s.emit(Operator), true
		}

	default:
		return s.start(ch)
	}
	return Token{}, false
}

// start handles a rune seen between tokens and decides which mode, if any,
// to enter.
func (s *Scanner) start(ch rune) (Token, bool) {
	switch {
	case ch == '/':
		// A slash opens a single comment, a multi comment, or an operator
		// run (division). One rune of lookahead settles it.
		next, ok := s.r.Read()
		switch {
		case ok && next == '/':
			s.enter(modeSingleComment)
			s.buf.WriteString("//")
		case ok && next == '*':
			s.enter(modeMultiComment)
			s.buf.WriteString("/*")
		default:
			if ok {
				s.r.Unread(next)
			}
			s.enter(modeOperator)
			s.buf.WriteRune(ch)
		}

	case ch == '"' && s.prev != '\\':
		s.enter(modeQuoteString)
		s.buf.WriteRune(ch)

	case ch == '\'' && s.prev != '\\':
		s.enter(modeTickString)
		s.buf.WriteRune(ch)

	case isDigit(ch):
		s.enter(modeNumber)
		s.buf.WriteRune(ch)

	case isIdentChar(ch):
		s.enter(modeIdentifier)
		s.buf.WriteRune(ch)

	case isOperatorChar(ch):
		s.enter(modeOperator)
		s.buf.WriteRune(ch)

	case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		// whitespace between tokens carries nothing

	default:
		// any other visible rune stands alone
		return Token{Kind: Operator, Text: string(ch)}, true
	}
	return Token{}, false
}

// flush runs at end of input. Number, identifier and operator runs end on any
// non-member rune, so a pending one is a complete token. A string or comment
// still waiting for its closer is dropped.
func (s *Scanner) flush() (Token, bool) {
	switch s.mode {
	case modeNumber:
		return s.emit(Number), true
	case modeIdentifier:
		return s.emit(Identifier), true
	case modeOperator:
		return s.emit(Operator), true
	}
	s.buf.Reset()
	s.mode = modeNone
	return Token{}, false
}

func (s *Scanner) enter(m mode) {
	s.mode = m
	s.buf.Reset()
}

func (s *Scanner) emit(k Kind) Token {
	tok := Token{Kind: k, Text: s.buf.String()}
	s.buf.Reset()
	s.mode = modeNone
	return tok
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit accepts the digits and uppercase A-F only; 0x1f scans as the
// number 0x1 followed by the identifier f.
func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'A' && ch <= 'F')
}

func isIdentChar(ch rune) bool {
	return ch == '_' || isDigit(ch) ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isOperatorChar(ch rune) bool {
	return strings.ContainsRune("<>=&|~!", ch)
}
