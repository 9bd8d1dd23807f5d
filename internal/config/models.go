package config

import "time"

// LLMConfig represents the provider selection and call-level settings
type LLMConfig struct {
	Provider       string
	RequestTimeout time.Duration
	MaxBodySize    int
}

// GroqConfig represents the configuration for Groq's OpenAI-compatible API
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float32
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	ListenAddress   string
	Mode            string
	ShutdownTimeout time.Duration
}

// NLPConfig represents the text-processing configuration
type NLPConfig struct {
	ModelCacheSize int
	Prewarm        bool
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider:       c.GetString("llm.provider"),
		RequestTimeout: c.GetDuration("llm.request_timeout"),
		MaxBodySize:    c.GetInt("llm.max_body_size"),
	}
}

// GetGroq returns the Groq configuration
func (c *Config) GetGroq() GroqConfig {
	return GroqConfig{
		APIKey:      c.GetString("groq.api_key"),
		BaseURL:     c.GetString("groq.base_url"),
		ModelName:   c.GetString("groq.model_name"),
		MaxTokens:   c.GetInt("groq.max_tokens"),
		Temperature: float32(c.GetFloat64("groq.temperature")),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
	}
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress:   c.GetString("server.listen_address"),
		Mode:            c.GetString("server.mode"),
		ShutdownTimeout: c.GetDuration("server.shutdown_timeout"),
	}
}

// GetNLP returns the text-processing configuration
func (c *Config) GetNLP() NLPConfig {
	return NLPConfig{
		ModelCacheSize: c.GetInt("nlp.model_cache_size"),
		Prewarm:        c.GetBool("nlp.prewarm"),
	}
}
