package schedparse

import (
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a lexical token of a schedule segment.
type TokenKind int

const (
	TokNumber TokenKind = iota // run of ASCII digits
	TokColon                   // ':'
	TokHourSuffix              // '시'
	TokHalf                    // '반'
	TokRange                   // '~' or '-'
	TokSpace                   // run of whitespace
	TokWord                    // any other run of characters
)

func (k TokenKind) String() string {
	switch k {
	case TokNumber:
		return "NUMBER"
	case TokColon:
		return "COLON"
	case TokHourSuffix:
		return "HOUR"
	case TokHalf:
		return "HALF"
	case TokRange:
		return "RANGE"
	case TokSpace:
		return "SPACE"
	default:
		return "WORD"
	}
}

// Token is one lexeme. Pos is the byte offset of the token in the segment,
// so the parser can slice the raw title without re-joining tokens.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Tokenize splits a single segment into tokens. It never fails: anything
// that is not part of the time grammar becomes a TokWord.
func Tokenize(segment string) []Token {
	var toks []Token
	i := 0
	for i < len(segment) {
		r, size := utf8.DecodeRuneInString(segment[i:])
		start := i

		switch {
		case isDigit(r):
			for i < len(segment) && isDigit(rune(segment[i])) {
				i++
			}
			toks = append(toks, Token{Kind: TokNumber, Text: segment[start:i], Pos: start})
			continue
		case unicode.IsSpace(r):
			for i < len(segment) {
				r2, s2 := utf8.DecodeRuneInString(segment[i:])
				if !unicode.IsSpace(r2) {
					break
				}
				i += s2
			}
			toks = append(toks, Token{Kind: TokSpace, Text: segment[start:i], Pos: start})
			continue
		}

		if kind, ok := singleRuneKind(r); ok {
			i += size
			toks = append(toks, Token{Kind: kind, Text: segment[start:i], Pos: start})
			continue
		}

		for i < len(segment) {
			r2, s2 := utf8.DecodeRuneInString(segment[i:])
			if isDigit(r2) || unicode.IsSpace(r2) {
				break
			}
			if _, special := singleRuneKind(r2); special {
				break
			}
			i += s2
		}
		toks = append(toks, Token{Kind: TokWord, Text: segment[start:i], Pos: start})
	}
	return toks
}

func singleRuneKind(r rune) (TokenKind, bool) {
	switch r {
	case ':':
		return TokColon, true
	case '시':
		return TokHourSuffix, true
	case '반':
		return TokHalf, true
	case '~', '-':
		return TokRange, true
	}
	return 0, false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
