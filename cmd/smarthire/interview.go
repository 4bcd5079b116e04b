package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/smarthire/internal/extraction"
	"github.com/jonathan/smarthire/internal/observability"
	"github.com/jonathan/smarthire/internal/session"
)

var (
	interviewResume     string
	interviewRole       string
	interviewConfigPath string
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview in the terminal",
	Long:  `Run a single mock interview session interactively: the resume is read from a file, questions are asked one by one on stdin, and the report is printed at the end.`,
	RunE:  runInterview,
}

func init() {
	interviewCmd.Flags().StringVarP(&interviewResume, "resume", "r", "", "Path to the resume file (required)")
	interviewCmd.Flags().StringVar(&interviewRole, "role", "", "Role to interview for (required)")
	interviewCmd.Flags().StringVar(&interviewConfigPath, "config", "", "Path to config.json file")
	_ = interviewCmd.MarkFlagRequired("resume")
	_ = interviewCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(interviewConfigPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer d.close()

	file, err := os.Open(interviewResume)
	if err != nil {
		return fmt.Errorf("failed to open resume: %w", err)
	}
	text, err := extraction.NewExtractor(cfg.UploadsDir).ExtractText(interviewResume, file)
	file.Close()
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	profile := extraction.BuildProfile(text)
	printer.PrintProfile(profile)

	sess := session.New()
	if err := sess.AttachProfile(profile); err != nil {
		return err
	}
	if err := sess.ChooseRole(interviewRole); err != nil {
		return err
	}

	qs, err := d.pipeline.GenerateQuestions(ctx, sess)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i, q := range qs {
		printer.PrintQuestion(i, len(qs), q)
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if err := sess.RecordAnswer(i, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read answers: %w", err)
	}

	// Unanswered questions count as empty answers.
	for i := sess.CurrentQuestion(); i < len(qs); i++ {
		if err := sess.RecordAnswer(i, ""); err != nil {
			return err
		}
	}

	rep, err := d.pipeline.Submit(ctx, sess)
	if err != nil {
		return err
	}

	printer.PrintReport(rep, d.pipeline.Insight(sess))

	jobs, err := d.pipeline.RecommendJobs(ctx, sess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Job recommendations unavailable: %v\n", err)
		return nil
	}
	printer.PrintJobs(jobs)
	return nil
}
