package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/jobsearch"
	"github.com/jonathan/smarthire/internal/llm"
	"github.com/jonathan/smarthire/internal/questions"
	"github.com/jonathan/smarthire/internal/report"
	"github.com/jonathan/smarthire/internal/scoring"
	"github.com/jonathan/smarthire/internal/session"
)

// deps bundles everything a command needs to run interviews.
type deps struct {
	cfg      config.Config
	pipeline *session.Pipeline
	csvLog   *report.CSVLog
	bank     *questions.Bank
	client   llm.Client
}

// close releases held resources.
func (d *deps) close() {
	if d.client != nil {
		_ = d.client.Close()
	}
}

// loadConfig layers the JSON config file over environment defaults and the
// built-in fallbacks.
func loadConfig(path string) (config.Config, error) {
	cfg := config.FromEnv().MergeWithDefaults(config.Defaults())
	if path != "" {
		fileCfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildDeps wires the question source, scorer and report sinks from config.
func buildDeps(ctx context.Context, cfg config.Config) (*deps, error) {
	d := &deps{cfg: cfg, csvLog: report.NewCSVLog(cfg.ReportLog)}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	needsLLM := cfg.QuestionStrategy == "generative" || cfg.ScoringStrategy == "generative_eval"
	if needsLLM {
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for generative question or scoring strategies")
		}
		client, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		d.client = client
	}

	var source questions.Source
	switch cfg.QuestionStrategy {
	case "static_bank":
		if cfg.QuestionBank == "" {
			return nil, fmt.Errorf("question_bank path is required for the static_bank strategy")
		}
		bank, err := questions.LoadBank(cfg.QuestionBank, cfg.QuestionBankHash)
		if err != nil {
			d.close()
			return nil, err
		}
		d.bank = bank
		source = questions.NewStaticBankSource(bank)
	case "generative":
		source = questions.NewGenerativeSource(d.client, 3, 2, 5)
	default:
		source = questions.NewTemplateSource()
	}

	scorerFor := func(string) scoring.Scorer { return scoring.NewKeywordCoverageScorer() }
	if cfg.ScoringStrategy == "generative_eval" {
		client := d.client
		scorerFor = func(role string) scoring.Scorer { return scoring.NewGenerativeEvalScorer(client, role) }
	}

	d.pipeline = session.NewPipeline(source, scorerFor, d.csvLog)
	if d.bank != nil {
		d.pipeline.WithBank(d.bank)
	}

	if cfg.JoobleAPIKey != "" {
		d.pipeline.WithJobSearch(jobsearch.NewClient(cfg.JoobleAPIKey, cfg.JobLocation))
	}

	if cfg.AWSRegion != "" && cfg.EmailFrom != "" {
		mailer, err := report.NewSESMailer(ctx, cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			log.Printf("SES mailer unavailable, reports will not be emailed: %v", err)
		} else {
			d.pipeline.WithMailer(mailer)
		}
	}

	return d, nil
}
