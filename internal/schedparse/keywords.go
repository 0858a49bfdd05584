package schedparse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// keywordRule assigns a value when any of its keywords occurs in a title.
// Rules are evaluated in slice order and the first match wins, so a title
// matching two lists is classified by the earlier one.
type keywordRule[T any] struct {
	value    T
	keywords []string
}

var categoryRules = []keywordRule[domain.Category]{
	{domain.CategoryHealth, []string{
		"운동", "달리기", "러닝", "조깅", "헬스", "요가", "산책", "수영",
		"exercise", "run", "running", "jog", "jogging", "gym", "yoga",
		"walk", "walking", "swim", "swimming", "workout",
	}},
	{domain.CategoryFamily, []string{
		"가족", "아이들", "아이", "육아", "자녀", "아내", "남편", "부모", "저녁식사", "데이트",
		"family", "kids", "child", "wife", "husband", "parents", "dinner", "date",
	}},
	{domain.CategoryPersonal, []string{
		"명상", "독서", "기록", "일기", "취미", "영화", "음악", "휴식", "낮잠",
		"meditation", "reading", "journal", "journaling", "hobby", "movie", "music", "rest", "nap",
	}},
}

var priorityRules = []keywordRule[domain.Priority]{
	{domain.PriorityHigh, []string{
		"미팅", "발표", "면접", "투자", "계약", "중요", "보고",
		"meeting", "presentation", "interview", "investor", "investment", "contract", "important", "report",
	}},
	{domain.PriorityLow, []string{
		"정리", "메일", "확인", "체크",
		"organize", "email", "check", "cleanup",
	}},
}

// ClassifyCategory returns the category of a title, defaulting to work.
func ClassifyCategory(title string) domain.Category {
	return classify(title, categoryRules, domain.DefaultCategory)
}

// ClassifyPriority returns the priority of a title, defaulting to medium.
func ClassifyPriority(title string) domain.Priority {
	return classify(title, priorityRules, domain.DefaultPriority)
}

func classify[T any](title string, rules []keywordRule[T], fallback T) T {
	lower := strings.ToLower(title)
	words := asciiWords(lower)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if matchKeyword(lower, words, kw) {
				return rule.value
			}
		}
	}
	return fallback
}

// boundedKeywords are Hangul keywords that are also the start of unrelated
// words ("아이" in "아이디어"). They match only when followed by a
// non-Hangul rune or one of boundedParticles.
var boundedKeywords = map[string]bool{"아이": true}

const boundedParticles = "와과랑를가는도의"

// matchKeyword matches Hangul keywords as substrings, since Korean titles
// glue nouns together ("투자자미팅"). Latin keywords must match a whole word
// so "run" does not fire on "brunch".
func matchKeyword(lower string, words map[string]bool, kw string) bool {
	if isASCII(kw) {
		return words[kw]
	}
	if !boundedKeywords[kw] {
		return strings.Contains(lower, kw)
	}
	for rest := lower; ; {
		i := strings.Index(rest, kw)
		if i < 0 {
			return false
		}
		rest = rest[i+len(kw):]
		next, _ := utf8.DecodeRuneInString(rest)
		if rest == "" || !unicode.Is(unicode.Hangul, next) || strings.ContainsRune(boundedParticles, next) {
			return true
		}
	}
}

func asciiWords(s string) map[string]bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !(r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= unicode.MaxASCII {
			return false
		}
	}
	return true
}
