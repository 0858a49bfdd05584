package llm

import (
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/dayplan/internal/domain"
)

// Provider selects the wire protocol of the model server.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
)

const (
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultOllamaModel    = "llama3.2"
	defaultOpenAIEndpoint = "https://api.openai.com/v1"
	defaultOpenAIModel    = "gpt-4o-mini"
)

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Provider       Provider
	LogCalls       bool
	Endpoint       string
	Model          string
	APIKey         string
	TimeoutMs      int
	MaxRetries     int
	ShortMaxTokens int
	LongMaxTokens  int
	// RatePerSec caps outgoing requests per second; 0 disables the limiter.
	RatePerSec float64
}

// DefaultConfig returns a Config pointing at a local Ollama instance.
func DefaultConfig() Config {
	return Config{
		Provider:       ProviderOllama,
		Endpoint:       defaultOllamaEndpoint,
		Model:          defaultOllamaModel,
		TimeoutMs:      60000,
		MaxRetries:     1,
		ShortMaxTokens: 2048,
		LongMaxTokens:  4096,
		RatePerSec:     1,
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DAYPLAN_LLM_PROVIDER"); v != "" {
		if p := Provider(strings.ToLower(v)); p == ProviderOpenAI || p == ProviderOllama {
			cfg.Provider = p
		}
	}
	if cfg.Provider == ProviderOpenAI {
		cfg.Endpoint = defaultOpenAIEndpoint
		cfg.Model = defaultOpenAIModel
	}
	if v := os.Getenv("DAYPLAN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DAYPLAN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("DAYPLAN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	cfg.APIKey = os.Getenv("DAYPLAN_LLM_API_KEY")

	applyPositiveIntEnv(&cfg.TimeoutMs, "DAYPLAN_LLM_TIMEOUT_MS")
	applyPositiveIntEnv(&cfg.ShortMaxTokens, "DAYPLAN_LLM_SHORT_MAX_TOKENS")
	applyPositiveIntEnv(&cfg.LongMaxTokens, "DAYPLAN_LLM_LONG_MAX_TOKENS")
	if v := os.Getenv("DAYPLAN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("DAYPLAN_LLM_RATE_PER_SEC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.RatePerSec = f
		}
	}

	return cfg
}

// TokenBudget returns the completion token budget for a detail mode.
func (c Config) TokenBudget(detail domain.DetailMode) int {
	if detail == domain.DetailLong {
		return c.LongMaxTokens
	}
	return c.ShortMaxTokens
}

// TokenBudget returns the default token budget for a detail mode.
func TokenBudget(detail domain.DetailMode) int {
	return DefaultConfig().TokenBudget(detail)
}

func applyPositiveIntEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}
