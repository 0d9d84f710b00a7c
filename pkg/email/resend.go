package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:   resend.NewClient(apiKey),
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

var otpTemplate = template.Must(template.New("otp").Parse(`
<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Your verification code</h2>
  <p>Use this code to sign in as an organizer. It expires in 10 minutes.</p>
  <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold;">{{.Code}}</p>
  <p>If you didn't request this, you can ignore this email.</p>
  <p style="color: #888;">&copy; {{.Year}} CampusConnect</p>
</div>
`))

func (s *EmailService) SendOTPEmail(to, code string) error {
	var body bytes.Buffer
	err := otpTemplate.Execute(&body, map[string]interface{}{
		"Code": code,
		"Year": time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("render OTP email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: "Your sign-in code",
		Html:    body.String(),
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send OTP email", zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("sent OTP email", zap.String("to", to), zap.String("email_id", resp.Id))
	return nil
}
