package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/saurabhtbj1201/portfolio/backend/internal/config"
	"github.com/saurabhtbj1201/portfolio/backend/internal/models"
	"github.com/saurabhtbj1201/portfolio/backend/pkg/logger"
)

// EmailService sends transactional mail (approval notices, enquiry alerts).
// When SMTP is disabled or unconfigured every send is a silent no-op, so
// callers never need to guard on configuration.
type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) enabled() bool {
	return s.cfg.Enabled && s.cfg.Host != ""
}

// SendContributorApproved notifies an applicant that their pull request
// proposal was accepted and they are now listed on the project page.
func (s *EmailService) SendContributorApproved(contributor *models.Contributor, project *models.OpenSourceProject) error {
	if !s.enabled() || contributor.Email == "" {
		return nil
	}

	subject := fmt.Sprintf("Your contribution request for %s was approved", project.Title)
	body := s.buildApprovalBody(contributor, project)

	return s.sendEmail([]string{contributor.Email}, subject, body)
}

// SendEnquiryAlert forwards a new contact/enquiry submission to the site
// owner's inbox.
func (s *EmailService) SendEnquiryAlert(submission *models.FormSubmission) error {
	if !s.enabled() || s.cfg.AdminTo == "" {
		return nil
	}

	label := "Contact"
	if submission.Source == models.SubmissionSourceEnquiry {
		label = "Enquiry"
	}
	subject := fmt.Sprintf("[Portfolio] New %s from %s", label, submission.Name)
	body := s.buildEnquiryBody(submission, label)

	return s.sendEmail([]string{s.cfg.AdminTo}, subject, body)
}

func (s *EmailService) buildApprovalBody(c *models.Contributor, p *models.OpenSourceProject) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>Welcome aboard, %s!</h2>", c.Name))
	sb.WriteString(fmt.Sprintf("<p>Your request to contribute to <strong>%s</strong> has been approved. Your profile now appears on the project's contributor list.</p>", p.Title))

	sb.WriteString("<table style=\"border-collapse: collapse; margin: 16px 0;\">")
	rows := []struct{ label, value string }{
		{"Project", p.Title},
		{"Repository", p.GithubRepoLink},
		{"Your proposal", c.ImprovementDescription},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>", r.label, r.value))
	}
	sb.WriteString("</table>")

	sb.WriteString("<p>Fork the repository, open your pull request, and mention this request in the description so it gets picked up quickly.</p>")
	sb.WriteString("<hr><p style=\"color: #888; font-size: 12px;\">This is an automated message from the portfolio site.</p>")
	sb.WriteString("</body></html>")

	return sb.String()
}

func (s *EmailService) buildEnquiryBody(f *models.FormSubmission, label string) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>New %s Submission</h2>", label))
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")

	rows := []struct{ label, value string }{
		{"Name", f.Name},
		{"Email", f.Email},
		{"Phone", f.Phone},
		{"Purpose", f.Purpose},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>", r.label, r.value))
	}
	sb.WriteString("</table>")

	sb.WriteString("<h3>Message</h3>")
	sb.WriteString(fmt.Sprintf("<div style=\"background: #f9f9f9; padding: 16px; border-radius: 4px; white-space: pre-wrap;\">%s</div>", f.Message))

	sb.WriteString("</body></html>")

	return sb.String()
}

func (s *EmailService) sendEmail(to []string, subject, body string) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var err error
	if s.cfg.UseTLS {
		err = s.sendEmailTLS(addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, to, []byte(message.String()))
	}

	if err != nil {
		logger.Errorf("[Email] Failed to send to %v: %v", to, err)
		return err
	}

	logger.Infof("[Email] Sent %q to %v", subject, to)
	return nil
}

func (s *EmailService) sendEmailTLS(addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.cfg.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	if _, err = w.Write([]byte(message)); err != nil {
		return err
	}

	return w.Close()
}
