package report

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/jonathan/smarthire/internal/types"
)

// Mailer delivers a finished report to the candidate's email address.
type Mailer interface {
	SendReport(ctx context.Context, to string, r *types.InterviewReport, insight string) error
}

// MailError represents a delivery failure.
type MailError struct {
	Recipient string
	Cause     error
}

func (e *MailError) Error() string {
	return fmt.Sprintf("report email to %s failed: %v", e.Recipient, e.Cause)
}

func (e *MailError) Unwrap() error {
	return e.Cause
}

// SESMailer sends report emails through AWS SES.
type SESMailer struct {
	client *ses.Client
	from   string
}

// NewSESMailer builds a mailer from the ambient AWS credential chain.
func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), from: from}, nil
}

// Subject renders the report email subject line for a role.
func Subject(role string) string {
	return fmt.Sprintf("SmartHire AI Interview Report – %s", role)
}

// SendReport implements Mailer.
func (m *SESMailer) SendReport(ctx context.Context, to string, r *types.InterviewReport, insight string) error {
	if to == "" || to == types.UnknownEmail {
		return &MailError{Recipient: to, Cause: fmt.Errorf("no deliverable address")}
	}

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(Subject(r.Role))},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(Body(r, insight))},
			},
		},
		Source: aws.String(m.from),
	})
	if err != nil {
		return &MailError{Recipient: to, Cause: err}
	}
	return nil
}
