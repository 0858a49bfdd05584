package planner

import (
	"context"
	"errors"

	"github.com/alexanderramin/dayplan/internal/llm"
)

// ErrTimeNotRecognized is returned by ParseInput when non-empty text yields
// no schedule records.
var ErrTimeNotRecognized = errors.New("time not recognized")

// FailureKind groups analysis failures by what the user should do next.
type FailureKind string

const (
	FailureAuth        FailureKind = "auth"
	FailureRateLimit   FailureKind = "rate_limit"
	FailureTimeout     FailureKind = "timeout"
	FailureUnavailable FailureKind = "unavailable"
	FailureOther       FailureKind = "other"
)

// ClassifyError maps an Analyze error to a FailureKind.
func ClassifyError(err error) FailureKind {
	switch {
	case errors.Is(err, llm.ErrAuth):
		return FailureAuth
	case errors.Is(err, llm.ErrRateLimited):
		return FailureRateLimit
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	case errors.Is(err, llm.ErrUnavailable):
		return FailureUnavailable
	default:
		return FailureOther
	}
}

// UserMessage returns the Korean message shown for a failed analysis. The
// raw error text is kept for the catch-all case.
func UserMessage(err error) string {
	switch ClassifyError(err) {
	case FailureAuth:
		return "API 키가 올바르지 않습니다. DAYPLAN_LLM_API_KEY 설정을 확인해주세요."
	case FailureRateLimit:
		return "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	case FailureTimeout:
		return "응답 시간이 초과되었습니다. 잠시 후 다시 시도해주세요."
	case FailureUnavailable:
		return "모델 서버에 연결할 수 없습니다. 서버가 실행 중인지 확인해주세요."
	default:
		return "오류가 발생했습니다: " + err.Error()
	}
}
