package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates the service configuration.
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Annotate AnnotateConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	llm, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}

	annotate, err := loadAnnotateConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, LLM: llm, Annotate: annotate}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// LLMConfig describes the hosted text-generation endpoint and the fixed
// sampling parameters sent with every request.
type LLMConfig struct {
	APIToken     string
	Model        string
	BaseURL      string
	MaxNewTokens int
	Temperature  float64
	TopP         float64
}

// Enabled reports whether inference credentials were provided. The server
// starts without them; chat requests then degrade to the fallback response.
func (c LLMConfig) Enabled() bool {
	return c.APIToken != "" && c.Model != ""
}

func loadLLMConfig() (LLMConfig, error) {
	maxNewTokens := 512
	if override, err := parseOptionalIntEnv("LLM_MAX_NEW_TOKENS"); err != nil {
		return LLMConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return LLMConfig{}, fmt.Errorf("LLM_MAX_NEW_TOKENS must be positive, got %d", *override)
		}
		maxNewTokens = *override
	}

	temperature := 0.7
	if override, err := parseOptionalFloatEnv("LLM_TEMPERATURE"); err != nil {
		return LLMConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	topP := 0.95
	if override, err := parseOptionalFloatEnv("LLM_TOP_P"); err != nil {
		return LLMConfig{}, err
	} else if override != nil {
		topP = *override
	}

	return LLMConfig{
		APIToken:     strings.TrimSpace(os.Getenv("HF_API_TOKEN")),
		Model:        getEnvOrDefault("LLM_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
		BaseURL:      getEnvOrDefault("LLM_BASE_URL", "https://api-inference.huggingface.co/models"),
		MaxNewTokens: maxNewTokens,
		Temperature:  temperature,
		TopP:         topP,
	}, nil
}

// AnnotateConfig controls the content-gap injection pass.
type AnnotateConfig struct {
	Policy string
}

// Annotation policies. FirstMatch injects only the highest-priority unmet
// gate; AllMatches lets every unmet gate contribute its block.
const (
	PolicyFirstMatch = "first-match"
	PolicyAllMatches = "all-matches"
)

func loadAnnotateConfig() (AnnotateConfig, error) {
	policy := getEnvOrDefault("ANNOTATE_POLICY", PolicyFirstMatch)
	switch policy {
	case PolicyFirstMatch, PolicyAllMatches:
		return AnnotateConfig{Policy: policy}, nil
	default:
		return AnnotateConfig{}, fmt.Errorf("invalid ANNOTATE_POLICY value %q, want %q or %q", policy, PolicyFirstMatch, PolicyAllMatches)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
