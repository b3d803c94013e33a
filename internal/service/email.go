package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/footprint-app/footprint/internal/model"
	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

func (s *EmailService) SendWelcomeEmail(email, username string) error {
	subject, body := welcomeEmailTemplate(username, s.appURL, s.appName)
	return s.send("welcome", email, subject, body)
}

func (s *EmailService) SendGoalAchievedEmail(email, username string, goal *model.Goal, totalKg float64) error {
	goalsURL := fmt.Sprintf("%s/api/goals/%s", s.appURL, goal.ID)
	subject, body := goalAchievedEmailTemplate(username, FormatKg(goal.TargetReduction), FormatKg(totalKg), goalsURL, s.appName)
	return s.send("goal_achieved", email, subject, body)
}

func (s *EmailService) send(kind, to, subject, body string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", kind, "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", kind, "to", to)
	}
	return err
}
