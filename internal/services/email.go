package services

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"oakline/internal/config"
	"oakline/internal/domain"
)

// EmailService handles sending admin notification emails
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// IsEnabled reports whether SMTP delivery is configured.
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}

// SendInquiryNotification notifies the admin about a new contact inquiry.
func (s *EmailService) SendInquiryNotification(inq *domain.ContactInquiry) error {
	if !s.cfg.Enabled {
		// In development mode, just log
		fmt.Printf("[EMAIL] New contact inquiry from %s (%s)\n", inq.Name, inq.Email)
		return nil
	}

	subject := fmt.Sprintf("New Contact Inquiry from %s", inq.Name)
	textBody := fmt.Sprintf(`New Contact Inquiry

Name: %s
Email: %s
Subject: %s
Submitted: %s

Message:
%s

Inquiry ID: %s`, inq.Name, inq.Email, inq.Subject, inq.CreatedAt.Format("January 2, 2006 at 3:04 PM"), inq.Message, inq.ID)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Contact Inquiry</title></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2F5233;">New Contact Inquiry</h2>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
            <p><strong>Subject:</strong> %s</p>
            <p><strong>Submitted:</strong> %s</p>
        </div>
        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #2F5233; border-radius: 4px; margin: 20px 0;">
            <p style="white-space: pre-wrap;">%s</p>
        </div>
        <p style="color: #64748B; font-size: 14px;">Inquiry ID: %s</p>
    </div>
</body>
</html>`, inq.Name, inq.Email, inq.Email, inq.Subject, inq.CreatedAt.Format("January 2, 2006 at 3:04 PM"), inq.Message, inq.ID)

	return s.SendHTMLEmail(s.cfg.AdminEmail, subject, htmlBody, textBody)
}

// SendReviewNotification notifies the admin that a review awaits moderation.
func (s *EmailService) SendReviewNotification(rev *domain.Review) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] New review from %s (%s), rating %d\n", rev.Name, rev.Company, rev.Rating)
		return nil
	}

	subject := fmt.Sprintf("New Review Awaiting Moderation from %s", rev.Name)
	stars := strings.Repeat("★", rev.Rating) + strings.Repeat("☆", 5-rev.Rating)
	textBody := fmt.Sprintf(`New Review Awaiting Moderation

Name: %s
Position: %s
Company: %s
Rating: %s
Submitted: %s

Content:
%s

Review ID: %s`, rev.Name, rev.Position, rev.Company, stars, rev.SubmittedAt.Format("January 2, 2006 at 3:04 PM"), rev.Content, rev.ID)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Review</title></head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #2F5233;">New Review Awaiting Moderation</h2>
        <div style="background: #F8FAFC; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <p><strong>Name:</strong> %s</p>
            <p><strong>Position:</strong> %s</p>
            <p><strong>Company:</strong> %s</p>
            <p><strong>Rating:</strong> %s</p>
        </div>
        <div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #2F5233; border-radius: 4px; margin: 20px 0;">
            <p style="white-space: pre-wrap;">%s</p>
        </div>
        <p style="color: #64748B; font-size: 14px;">Review ID: %s</p>
    </div>
</body>
</html>`, rev.Name, rev.Position, rev.Company, stars, rev.Content, rev.ID)

	return s.SendHTMLEmail(s.cfg.AdminEmail, subject, htmlBody, textBody)
}

// SendHTMLEmail sends a multipart email with HTML and text alternatives.
func (s *EmailService) SendHTMLEmail(to, subject, htmlBody, textBody string) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] Email to %s would be sent: %s\n", to, subject)
		return nil
	}

	boundary := fmt.Sprintf("oakline-%d", time.Now().UnixNano())
	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": fmt.Sprintf(`multipart/alternative; boundary="%s"`, boundary),
	}

	var msg strings.Builder
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(textBody)
	msg.WriteString(fmt.Sprintf("\r\n--%s\r\n", boundary))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString(fmt.Sprintf("\r\n--%s--\r\n", boundary))

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
