// File: lexer.go
// Title: ICEL Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of ICEL parsing.
//              Converts expression strings into streams of tokens for
//              the parser. Handles all ICEL syntax elements and provides
//              detailed position information for error reporting.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-09
// Modified: 2025-08-09
//
// Change History:
// - 2025-08-09 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	icelstringx "github.com/coxioxi/icel/foundation/utils/stringx"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal  // unrecognized character, value carries "#<codepoint>"
	TokenIntRange // digit run that does not fit in int64

	// Identifiers and literals
	TokenInt   // 42
	TokenIdent // x, count

	// Two-character operators
	TokenEquals    // ==
	TokenNotEquals // !=
	TokenLessEq    // <=
	TokenGreaterEq // >=

	// Single-character operators
	TokenAssign    // =
	TokenLess      // <
	TokenGreater   // >
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenPercent   // %
	TokenCaret     // ^
	TokenPipe      // |
	TokenAmpersand // &
	TokenBang      // !
	TokenAt        // @
	TokenQuestion  // ?
	TokenColon     // :

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIntRange:
		return "INT_RANGE"
	case TokenInt:
		return "INT"
	case TokenIdent:
		return "IDENT"
	case TokenEquals:
		return "EQUALS"
	case TokenNotEquals:
		return "NOT_EQUALS"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenGreaterEq:
		return "GREATER_EQ"
	case TokenAssign:
		return "ASSIGN"
	case TokenLess:
		return "LESS"
	case TokenGreater:
		return "GREATER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenPercent:
		return "PERCENT"
	case TokenCaret:
		return "CARET"
	case TokenPipe:
		return "PIPE"
	case TokenAmpersand:
		return "AMPERSAND"
	case TokenBang:
		return "BANG"
	case TokenAt:
		return "AT"
	case TokenQuestion:
		return "QUESTION"
	case TokenColon:
		return "COLON"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of ICEL input
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenEquals, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenAssign, l.ch, pos, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenNotEquals, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenBang, l.ch, pos, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenLessEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenLess, l.ch, pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = Token{Type: TokenGreaterEq, Value: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenGreater, l.ch, pos, line, column)
		}
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, line, column)
	case '*':
		tok = newToken(TokenStar, l.ch, pos, line, column)
	case '/':
		tok = newToken(TokenSlash, l.ch, pos, line, column)
	case '%':
		tok = newToken(TokenPercent, l.ch, pos, line, column)
	case '^':
		tok = newToken(TokenCaret, l.ch, pos, line, column)
	case '|':
		tok = newToken(TokenPipe, l.ch, pos, line, column)
	case '&':
		tok = newToken(TokenAmpersand, l.ch, pos, line, column)
	case '@':
		tok = newToken(TokenAt, l.ch, pos, line, column)
	case '?':
		tok = newToken(TokenQuestion, l.ch, pos, line, column)
	case ':':
		tok = newToken(TokenColon, l.ch, pos, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			tok.Value = l.readIdentifier()
			tok.Type = TokenIdent
			return tok // Early return to avoid readChar()
		} else if isDigit(l.ch) {
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			tok.Value = l.readNumber()
			tok.Type = TokenInt
			if !fitsInt64(tok.Value) {
				tok.Type = TokenIntRange
			}
			return tok // Early return to avoid readChar()
		} else {
			// Any other character becomes an error token carrying its
			// codepoint; the parser rejects it like any unexpected token.
			r, size := utf8.DecodeRuneInString(l.input[l.position:])
			tok = Token{Type: TokenIllegal, Value: "#" + strconv.Itoa(int(r)), Position: pos, Line: line, Column: column}
			for i := 1; i < size; i++ {
				l.readChar()
			}
		}
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens from the input as a slice, including the
// terminating EOF token. Unrecognized characters become TokenIllegal
// entries rather than stopping the scan.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (a run of ASCII letters)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer literal (a run of decimal digits)
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipWhitespace skips spaces and tabs. Newlines are not whitespace in
// ICEL; expressions are single-line and a stray newline surfaces as an
// error token.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

// Utility functions

// newToken creates a new token with the given parameters
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the character is an ASCII letter
func isLetter(ch byte) bool {
	return icelstringx.IsASCIILetter(ch)
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return icelstringx.IsASCIIDigit(ch)
}

// fitsInt64 reports whether a digit run parses as a 64-bit integer
func fitsInt64(digits string) bool {
	_, err := strconv.ParseInt(digits, 10, 64)
	return err == nil
}

// TokenizeInput is a convenience function that tokenizes input in one call
func TokenizeInput(input string) []Token {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
