// Package config provides configuration loading and validation for the
// interview service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via environment variables and CLI flags.
type Config struct {
	// Paths
	UploadsDir       string `json:"uploads_dir,omitempty"`        // Directory for uploaded resumes
	ReportLog        string `json:"report_log,omitempty"`         // Path to the append-only CSV report log
	QuestionBank     string `json:"question_bank,omitempty"`      // Path to the question bank CSV
	QuestionBankHash string `json:"question_bank_hash,omitempty"` // Expected SHA-256 of the question bank

	// Strategies
	QuestionStrategy string `json:"question_strategy,omitempty"` // template, static_bank or generative
	ScoringStrategy  string `json:"scoring_strategy,omitempty"`  // keyword_coverage or generative_eval

	// Integrations
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	JoobleAPIKey string `json:"jooble_api_key,omitempty"` // Jooble API key
	JobLocation  string `json:"job_location,omitempty"`   // Location filter for job lookups
	AWSRegion    string `json:"aws_region,omitempty"`     // SES region
	EmailFrom    string `json:"email_from,omitempty"`     // SES sender address
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL

	// Server
	Port    int  `json:"port,omitempty"`    // HTTP listen port
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Intended as
// the defaults layer under a JSON config file.
func FromEnv() Config {
	return Config{
		UploadsDir:       os.Getenv("UPLOADS_DIR"),
		ReportLog:        os.Getenv("REPORT_LOG"),
		QuestionBank:     os.Getenv("QUESTION_BANK"),
		QuestionBankHash: os.Getenv("QUESTION_BANK_HASH"),
		QuestionStrategy: os.Getenv("QUESTION_STRATEGY"),
		ScoringStrategy:  os.Getenv("SCORING_STRATEGY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		JoobleAPIKey:     os.Getenv("JOOBLE_API_KEY"),
		JobLocation:      os.Getenv("JOB_LOCATION"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		EmailFrom:        os.Getenv("EMAIL_FROM"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.QuestionStrategy {
	case "", "template", "static_bank", "generative":
	default:
		return fmt.Errorf("config error: unknown question_strategy %q", c.QuestionStrategy)
	}
	switch c.ScoringStrategy {
	case "", "keyword_coverage", "generative_eval":
	default:
		return fmt.Errorf("config error: unknown scoring_strategy %q", c.ScoringStrategy)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port out of range: %d", c.Port)
	}

	if c.QuestionBank != "" {
		if _, err := os.Stat(c.QuestionBank); os.IsNotExist(err) {
			return fmt.Errorf("config error: question bank file not found: %s", c.QuestionBank)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. The value receiver lets callers chain it off constructors such
// as FromEnv without binding a variable first.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.UploadsDir == "" {
		result.UploadsDir = defaults.UploadsDir
	}
	if result.ReportLog == "" {
		result.ReportLog = defaults.ReportLog
	}
	if result.QuestionBank == "" {
		result.QuestionBank = defaults.QuestionBank
	}
	if result.QuestionBankHash == "" {
		result.QuestionBankHash = defaults.QuestionBankHash
	}
	if result.QuestionStrategy == "" {
		result.QuestionStrategy = defaults.QuestionStrategy
	}
	if result.ScoringStrategy == "" {
		result.ScoringStrategy = defaults.ScoringStrategy
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.JoobleAPIKey == "" {
		result.JoobleAPIKey = defaults.JoobleAPIKey
	}
	if result.JobLocation == "" {
		result.JobLocation = defaults.JobLocation
	}
	if result.AWSRegion == "" {
		result.AWSRegion = defaults.AWSRegion
	}
	if result.EmailFrom == "" {
		result.EmailFrom = defaults.EmailFrom
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// Defaults returns the built-in fallback configuration.
func Defaults() Config {
	return Config{
		UploadsDir:       "uploads",
		ReportLog:        "interview_report.csv",
		QuestionStrategy: "template",
		ScoringStrategy:  "keyword_coverage",
		Port:             8080,
	}
}
