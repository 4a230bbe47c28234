// Package config loads the interview agent configuration from an optional
// YAML or JSON file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/server/ratelimit"
)

// EnvPrefix prefixes generic overrides: server.port is INTERVIEW_SERVER_PORT.
const EnvPrefix = "INTERVIEW"

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config is the complete agent configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Interview InterviewConfig `mapstructure:"interview"`
	RateLimit RateLimitConfig `mapstructure:"rate-limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout" validate:"gt=0"`
}

type StorageConfig struct {
	Backend            string `mapstructure:"backend" validate:"oneof=memory postgres mongo"`
	DatabaseURL        string `mapstructure:"database-url" validate:"required_if=Backend postgres"`
	MongoURL           string `mapstructure:"mongo-url" validate:"required_if=Backend mongo"`
	Database           string `mapstructure:"database" validate:"required_if=Backend mongo"`
	ResumesCollection  string `mapstructure:"resumes-collection"`
	SessionsCollection string `mapstructure:"sessions-collection"`
	// Migrate applies pending Postgres migrations at start-up.
	Migrate bool `mapstructure:"migrate"`
}

type LLMConfig struct {
	Provider      string        `mapstructure:"provider" validate:"oneof=gemini vertex ollama openai simple"`
	GeminiAPIKey  string        `mapstructure:"gemini-api-key"`
	OpenAIAPIKey  string        `mapstructure:"openai-api-key"`
	OpenAIBaseURL string        `mapstructure:"openai-base-url"`
	OllamaURL     string        `mapstructure:"ollama-url"`
	OllamaModel   string        `mapstructure:"ollama-model"`
	Project       string        `mapstructure:"project"`
	Location      string        `mapstructure:"location"`
	Model         string        `mapstructure:"model"`
	Temperature   float32       `mapstructure:"temperature" validate:"gte=0,lte=2"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type UploadConfig struct {
	MaxBytes          int64    `mapstructure:"max-bytes" validate:"min=1"`
	AllowedExtensions []string `mapstructure:"allowed-extensions" validate:"min=1,dive,startswith=."`
	AllowBrowser      bool     `mapstructure:"allow-browser"`
	Workers           int      `mapstructure:"workers" validate:"min=1,max=64"`
}

type InterviewConfig struct {
	FallbackQuestions bool   `mapstructure:"fallback-questions"`
	TrainingFile      string `mapstructure:"training-file"`
	// SeedPatterns loads the built-in examples when the training file does
	// not exist yet.
	SeedPatterns bool `mapstructure:"seed-patterns"`
}

type RateLimitConfig struct {
	Enabled          bool          `mapstructure:"enabled"`
	DefaultLimit     int           `mapstructure:"default-limit" validate:"min=0"`
	DefaultWindow    time.Duration `mapstructure:"default-window" validate:"gt=0"`
	CleanupInterval  time.Duration `mapstructure:"cleanup-interval" validate:"gte=0"`
	GenerationLimit  int           `mapstructure:"generation-limit" validate:"min=0"`
	GenerationWindow time.Duration `mapstructure:"generation-window" validate:"gt=0"`
	GenerationBurst  int           `mapstructure:"generation-burst" validate:"min=0"`
	Whitelist        []string      `mapstructure:"whitelist"`
	Blacklist        []string      `mapstructure:"blacklist"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

var defaults = map[string]any{
	"server.port":             8000,
	"server.read-timeout":     30 * time.Second,
	"server.write-timeout":    120 * time.Second,
	"server.shutdown-timeout": 30 * time.Second,

	"storage.backend":             BackendMemory,
	"storage.database-url":        "",
	"storage.mongo-url":           "mongodb://localhost:27017/",
	"storage.database":            "resume_parser_db",
	"storage.resumes-collection":  "resumes",
	"storage.sessions-collection": "interview_sessions",
	"storage.migrate":             false,

	"llm.provider":        string(llm.ProviderGemini),
	"llm.gemini-api-key":  "",
	"llm.openai-api-key":  "",
	"llm.openai-base-url": "",
	"llm.ollama-url":      "http://localhost:11434",
	"llm.ollama-model":    "llama2",
	"llm.project":         "",
	"llm.location":        "us-central1",
	"llm.model":           "",
	"llm.temperature":     0.1,
	"llm.timeout":         llm.DefaultTimeout,

	"upload.max-bytes":          int64(10 << 20),
	"upload.allowed-extensions": []string{".pdf", ".docx", ".doc", ".txt"},
	"upload.allow-browser":      false,
	"upload.workers":            4,

	"interview.fallback-questions": true,
	"interview.training-file":      "training_data.json",
	"interview.seed-patterns":      true,

	"rate-limit.enabled":           true,
	"rate-limit.default-limit":     ratelimit.DefaultLimit,
	"rate-limit.default-window":    ratelimit.DefaultWindow,
	"rate-limit.cleanup-interval":  ratelimit.DefaultCleanupInterval,
	"rate-limit.generation-limit":  30,
	"rate-limit.generation-window": time.Minute,
	"rate-limit.generation-burst":  5,
	"rate-limit.whitelist":         []string{},
	"rate-limit.blacklist":         []string{},

	"log.json":  false,
	"log.debug": false,
}

// envAliases are the plain variable names accepted alongside the prefixed
// form. The prefixed variable wins when both are set.
var envAliases = map[string]string{
	"storage.database-url": "DATABASE_URL",
	"storage.mongo-url":    "MONGODB_URL",
	"storage.database":     "DATABASE_NAME",
	"llm.gemini-api-key":   "GEMINI_API_KEY",
	"llm.openai-api-key":   "OPENAI_API_KEY",
	"llm.ollama-url":       "OLLAMA_BASE_URL",
	"llm.project":          "GOOGLE_CLOUD_PROJECT",
	"llm.location":         "GOOGLE_CLOUD_LOCATION",
}

// Option adjusts the viper instance before the configuration is decoded.
type Option func(v *viper.Viper) error

// WithFlag lets a command-line flag override key when the flag was set.
func WithFlag(key string, flag *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if flag == nil {
			return nil
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
		return nil
	}
}

// Load reads the configuration. path may be empty, in which case only
// defaults and the environment are used. The result is validated.
func Load(path string, opts ...Option) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, alias := range envAliases {
		if err := v.BindEnv(key, envName(key), alias); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", alias, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return EnvPrefix + "_" + strings.ToUpper(r.Replace(key))
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ClientConfig builds the generation provider configuration.
func (c LLMConfig) ClientConfig() (*llm.Config, error) {
	cfg, err := llm.ConfigFor(llm.Provider(c.Provider))
	if err != nil {
		return nil, err
	}

	switch cfg.Provider {
	case llm.ProviderGemini, llm.ProviderVertex:
		cfg.APIKey = c.GeminiAPIKey
		cfg.Project = c.Project
		cfg.Location = c.Location
	case llm.ProviderOpenAI:
		cfg.APIKey = c.OpenAIAPIKey
		if c.OpenAIBaseURL != "" {
			cfg.BaseURL = c.OpenAIBaseURL
		}
	case llm.ProviderOllama:
		cfg.BaseURL = c.OllamaURL
		if c.OllamaModel != "" {
			cfg = cfg.WithModel(llm.TierStandard, c.OllamaModel)
		}
	}

	if c.Model != "" {
		for _, tier := range []llm.ModelTier{llm.TierLite, llm.TierStandard, llm.TierAdvanced} {
			cfg = cfg.WithModel(tier, c.Model)
		}
	}
	if c.Temperature > 0 {
		cfg.Temperature = c.Temperature
	}
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	return cfg, nil
}

// Limiter builds the rate limiter configuration.
func (c RateLimitConfig) Limiter() *ratelimit.Config {
	return &ratelimit.Config{
		Enabled:         c.Enabled,
		DefaultLimit:    c.DefaultLimit,
		DefaultWindow:   c.DefaultWindow,
		CleanupInterval: c.CleanupInterval,
		Whitelist:       ratelimit.ParseIPList(c.Whitelist),
		Blacklist:       ratelimit.ParseIPList(c.Blacklist),
		EndpointConfigs: ratelimit.GenerationEndpoints(c.GenerationLimit, c.GenerationWindow, c.GenerationBurst),
	}
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
