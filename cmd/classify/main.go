package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/supportdesk/email-classifier/internal/config"
	"github.com/supportdesk/email-classifier/internal/core"
	"github.com/supportdesk/email-classifier/internal/factory"
	"github.com/supportdesk/email-classifier/internal/logging"
	"github.com/supportdesk/email-classifier/internal/prompt"
	"github.com/supportdesk/email-classifier/internal/templates"
)

var (
	// LLM provider flags
	provider    = flag.String("provider", "groq", "LLM provider (groq, gemini, bedrock)")
	maxTokens   = flag.Int("max-tokens", 600, "Maximum tokens for LLM response")
	temperature = flag.Float64("temperature", 0.3, "Temperature for LLM generation")
	maxBodySize = flag.Int("max-body-size", 4096, "Maximum email body size to send to LLM")
	timeout     = flag.Duration("timeout", 30*time.Second, "Timeout for the completion call")

	// Groq flags
	groqAPIKey    = flag.String("groq-api-key", "", "API key for Groq (defaults to GROQ_API_KEY)")
	groqModelName = flag.String("groq-model", "llama-3.3-70b-versatile", "Groq model name")

	// Gemini flags
	geminiAPIKey    = flag.String("gemini-api-key", "", "API key for Google Gemini")
	geminiModelName = flag.String("gemini-model", "gemini-pro", "Gemini model name")

	// Bedrock flags
	bedrockRegion  = flag.String("bedrock-region", "us-east-1", "AWS region for Bedrock")
	bedrockModelID = flag.String("bedrock-model", "anthropic.claude-3-haiku-20240307-v1:0", "Bedrock model ID")

	// Input flags
	inputFile  = flag.String("file", "", "Input email file (use stdin if not specified)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	_ = godotenv.Load()

	var cfg *config.Config
	var err error

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration from file if specified
	if *configFile != "" {
		cfg, err = config.New()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
	} else {
		cfg = createConfigFromFlags()
	}

	// Wire the pipeline by hand
	textProcessor := factory.NewTextProcessorFactory(logger).CreateTextProcessor()

	llmFactory := factory.NewLLMFactory(cfg, logger, textProcessor)
	llmClient, err := llmFactory.CreateLLMClient()
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}

	normalizerFactory := factory.NewNormalizerFactory(cfg, logger)
	modelCache, err := normalizerFactory.CreateModelCache()
	if err != nil {
		logger.Fatal("Failed to build lemmatization models", zap.Error(err))
	}
	normalizer := normalizerFactory.CreateNormalizer(modelCache)

	catalog := templates.NewCatalog()
	service := core.NewClassifierService(
		llmClient,
		normalizer,
		prompt.NewBuilder(catalog),
		core.NewFallbackSelector(catalog),
		logger,
		cfg.GetLLM().RequestTimeout,
	)

	// Read email from file or stdin
	var emailReader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			logger.Fatal("Failed to open input file", zap.Error(err), zap.String("file", *inputFile))
		}
		defer file.Close()
		emailReader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		emailReader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	// Parse email
	msg, err := mail.ReadMessage(bufio.NewReader(emailReader))
	if err != nil {
		logger.Fatal("Failed to parse email", zap.Error(err))
	}

	subject := msg.Header.Get("Subject")
	bodyBytes, err := io.ReadAll(msg.Body)
	if err != nil {
		logger.Fatal("Failed to read email body", zap.Error(err))
	}

	email := core.Email{
		Subject: subject,
		Body:    string(bodyBytes),
	}

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("Body length: %d bytes\n", len(email.Body))
	fmt.Printf("\n")

	fmt.Printf("=== Analysis ===\n")
	fmt.Printf("Provider: %s\n", cfg.GetString("llm.provider"))

	startTime := time.Now()
	outcome, err := service.ClassifyAndRespond(context.Background(), email)
	if err != nil {
		logger.Fatal("Failed to classify email", zap.Error(err))
	}
	duration := time.Since(startTime)

	result := outcome.Result

	// Print results
	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Is productive: %t\n", result.IsProductive)
	fmt.Printf("Category: %s\n", result.Category)
	if info, ok := templates.CategoryDescriptions[string(result.Category)]; ok {
		fmt.Printf("Category meaning: %s\n", info.Description)
	}
	fmt.Printf("Detected language: %s\n", result.DetectedLanguage)
	fmt.Printf("Outcome: %s\n", outcome.Status)
	if outcome.Reason != "" {
		fmt.Printf("Fallback reason: %s\n", outcome.Reason)
	}
	fmt.Printf("Suggested subject: %s\n", result.SuggestedSubject)
	fmt.Printf("\nSuggested body:\n%s\n", result.SuggestedBody)
	fmt.Printf("\nProcessing time: %v\n", duration)

	// Close any resources that need closing
	if closer, ok := llmClient.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close LLM client", zap.Error(err))
		}
	}
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("llm.provider", *provider)
	v.Set("llm.request_timeout", timeout.String())
	v.Set("llm.max_body_size", *maxBodySize)

	switch *provider {
	case "groq":
		if *groqAPIKey != "" {
			v.Set("groq.api_key", *groqAPIKey)
		} else {
			v.Set("groq.api_key", os.Getenv("GROQ_API_KEY"))
		}
		v.Set("groq.model_name", *groqModelName)
		v.Set("groq.max_tokens", *maxTokens)
		v.Set("groq.temperature", *temperature)
	case "gemini":
		v.Set("gemini.api_key", *geminiAPIKey)
		v.Set("gemini.model_name", *geminiModelName)
		v.Set("gemini.max_tokens", *maxTokens)
		v.Set("gemini.temperature", *temperature)
	case "bedrock":
		v.Set("bedrock.region", *bedrockRegion)
		v.Set("bedrock.model_id", *bedrockModelID)
		v.Set("bedrock.max_tokens", *maxTokens)
		v.Set("bedrock.temperature", *temperature)
	}

	return config.NewFromViper(v)
}
