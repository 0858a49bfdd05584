package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/dayplan/internal/llm"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		err  error
		want FailureKind
	}{
		{fmt.Errorf("x: %w", llm.ErrAuth), FailureAuth},
		{fmt.Errorf("x: %w", llm.ErrRateLimited), FailureRateLimit},
		{llm.ErrTimeout, FailureTimeout},
		{context.DeadlineExceeded, FailureTimeout},
		{fmt.Errorf("%w: %w", llm.ErrUnavailable, errors.New("dial tcp")), FailureUnavailable},
		{llm.ErrRetryExhausted, FailureOther},
		{errors.New("weird"), FailureOther},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyError(tc.err), "%v", tc.err)
	}
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, UserMessage(llm.ErrAuth), "API 키")
	assert.Contains(t, UserMessage(llm.ErrRateLimited), "요청이 너무 많습니다")
	assert.Equal(t, "오류가 발생했습니다: socket closed", UserMessage(errors.New("socket closed")))
}
