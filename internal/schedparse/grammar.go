package schedparse

import (
	"strconv"
	"strings"
)

// Meridiem is the optional leading day-half marker of a line.
type Meridiem int

const (
	MeridiemNone Meridiem = iota
	MeridiemMorning
	MeridiemAfternoon
)

var meridiemWords = map[string]Meridiem{
	"오전": MeridiemMorning,
	"아침": MeridiemMorning,
	"새벽": MeridiemMorning,
	"am":  MeridiemMorning,
	"오후": MeridiemAfternoon,
	"저녁": MeridiemAfternoon,
	"밤":  MeridiemAfternoon,
	"pm":  MeridiemAfternoon,
}

// TimeExpr is one parsed `H[:MM][시][반]` expression.
type TimeExpr struct {
	Hour       int
	Minute     int
	HasMinutes bool
	Half       bool
}

// Minutes resolves the minute component: explicit minutes win, otherwise
// "반" means half past.
func (t TimeExpr) Minutes() int {
	if t.HasMinutes {
		return t.Minute
	}
	if t.Half {
		return 30
	}
	return 0
}

// Line is the syntactic result of matching one segment against
//
//	line := [meridiem WS?] time [WS? range WS? time] WS title
//	time := NUM [":" NUM] ["시"] [WS? "반"]
type Line struct {
	Meridiem Meridiem
	Start    TimeExpr
	End      *TimeExpr
	Title    string
}

// ParseLine matches a single segment against the line grammar. It reports
// false when the segment has no leading time expression or no title.
func ParseLine(segment string) (Line, bool) {
	p := &lineParser{src: segment, toks: Tokenize(segment)}
	return p.line()
}

type lineParser struct {
	src  string
	toks []Token
	pos  int
}

func (p *lineParser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *lineParser) accept(kind TokenKind) (Token, bool) {
	tok, ok := p.peek()
	if !ok || tok.Kind != kind {
		return Token{}, false
	}
	p.pos++
	return tok, true
}

func (p *lineParser) skipSpace() bool {
	_, ok := p.accept(TokSpace)
	return ok
}

func (p *lineParser) line() (Line, bool) {
	var ln Line

	ln.Meridiem = p.meridiem()
	start, ok := p.timeExpr()
	if !ok {
		return Line{}, false
	}
	ln.Start = start

	// Optional range. On failure rewind so the text is treated as title.
	mark := p.pos
	p.skipSpace()
	if _, ok := p.accept(TokRange); ok {
		p.skipSpace()
		if end, ok := p.timeExpr(); ok {
			ln.End = &end
			mark = p.pos
		}
	}
	p.pos = mark

	// The title must be separated from the time by whitespace.
	if !p.skipSpace() {
		return Line{}, false
	}
	tok, ok := p.peek()
	if !ok {
		return Line{}, false
	}
	ln.Title = strings.TrimSpace(p.src[tok.Pos:])
	if ln.Title == "" {
		return Line{}, false
	}
	return ln, true
}

func (p *lineParser) meridiem() Meridiem {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokWord {
		return MeridiemNone
	}
	m, known := meridiemWords[strings.ToLower(tok.Text)]
	if !known {
		return MeridiemNone
	}
	p.pos++
	p.skipSpace()
	return m
}

// timeExpr := NUM [":" NUM] ["시"] [WS? "반"]
func (p *lineParser) timeExpr() (TimeExpr, bool) {
	mark := p.pos
	fail := func() (TimeExpr, bool) {
		p.pos = mark
		return TimeExpr{}, false
	}

	num, ok := p.accept(TokNumber)
	if !ok || len(num.Text) > 2 {
		return fail()
	}
	var t TimeExpr
	t.Hour, _ = strconv.Atoi(num.Text)

	if _, ok := p.accept(TokColon); ok {
		mins, ok := p.accept(TokNumber)
		if !ok || len(mins.Text) != 2 {
			return fail()
		}
		t.Minute, _ = strconv.Atoi(mins.Text)
		if t.Minute > 59 {
			return fail()
		}
		t.HasMinutes = true
	}
	p.accept(TokHourSuffix)
	t.Half = p.half()
	return t, true
}

// half accepts "반", optionally after whitespace ("9시 반"). A 반 glued to
// following text starts a word ("반찬") and is left for the title.
func (p *lineParser) half() bool {
	mark := p.pos
	p.skipSpace()
	if _, ok := p.accept(TokHalf); ok {
		if next, ok := p.peek(); !ok || next.Kind != TokWord {
			return true
		}
	}
	p.pos = mark
	return false
}
