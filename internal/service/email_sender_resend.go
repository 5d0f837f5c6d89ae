package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendEmailSender struct {
	Client *resend.Client
	From   string
}

func NewResendEmailSender(apiKey string, from string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		Client: resend.NewClient(apiKey),
		From:   from,
	}
}

func (s *ResendEmailSender) SendVerificationOTP(ctx context.Context, email string, code string) error {
	subject := "Email Verification for Plant Book"
	html := fmt.Sprintf(
		"<p>Welcome to Plant Book! Use this code to verify your email:</p><h2>%s</h2><p>The code expires shortly, so enter it soon.</p>",
		code,
	)
	return s.send(ctx, email, subject, html)
}

func (s *ResendEmailSender) SendPasswordResetOTP(ctx context.Context, email string, code string) error {
	subject := "Password Reset OTP for Plant Book"
	html := fmt.Sprintf(
		"<p>Use this code to reset your Plant Book password:</p><h2>%s</h2><p>If you did not request a reset, ignore this email.</p>",
		code,
	)
	return s.send(ctx, email, subject, html)
}

func (s *ResendEmailSender) send(ctx context.Context, to string, subject string, html string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	// The resend client carries no context support; the request runs
	// with the client's own timeout.
	_ = ctx
	params := &resend.SendEmailRequest{
		From:    s.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	_, err := s.Client.Emails.Send(params)
	return err
}
