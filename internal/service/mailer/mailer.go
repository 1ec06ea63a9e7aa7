package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/mtendere/education-consult/pkg/logger"
)

// Mailer sends admin notification emails. Sending is best-effort: a broken
// SMTP setup must never block the request that triggered the notification.
type Mailer interface {
	NotifyAdmin(subject, content string)
}

// SMTPMailer delivers notifications through a plain SMTP relay.
type SMTPMailer struct {
	host       string
	port       string
	username   string
	password   string
	adminEmail string
	logger     logger.Logger
}

// NewSMTPMailer reads the SMTP_* and ADMIN_EMAIL environment variables. An
// empty SMTP_PASSWORD disables delivery, matching a local setup with no
// relay configured.
func NewSMTPMailer(log logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:       getEnv("SMTP_SERVER", "smtp.gmail.com"),
		port:       getEnv("SMTP_PORT", "587"),
		username:   getEnv("SMTP_USERNAME", "mtendereeduconsult@gmail.com"),
		password:   os.Getenv("SMTP_PASSWORD"),
		adminEmail: getEnv("ADMIN_EMAIL", "mtendereeduconsult@gmail.com"),
		logger:     log,
	}
}

// NotifyAdmin sends a notification to the configured admin address. Failures
// are logged and swallowed.
func (m *SMTPMailer) NotifyAdmin(subject, content string) {
	if m.password == "" {
		m.logger.Info("email notification skipped (no SMTP configured)", "subject", subject)
		return
	}

	body := m.buildMessage(subject, content)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.username, []string{m.adminEmail}, body); err != nil {
		m.logger.Error("failed to send notification email", "subject", subject, "error", err)
		return
	}

	m.logger.Info("notification email sent", "subject", subject)
}

func (m *SMTPMailer) buildMessage(subject, content string) []byte {
	htmlContent := strings.ReplaceAll(content, "\n", "<br>")

	var b strings.Builder
	fmt.Fprintf(&b, "From: Mtendere Education Admin System <%s>\r\n", m.username)
	fmt.Fprintf(&b, "To: %s\r\n", m.adminEmail)
	fmt.Fprintf(&b, "Subject: [Mtendere Admin] %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, `<html>
	<body>
		<h2>Mtendere Education Consult - Admin Notification</h2>
		<p><strong>Time:</strong> %s UTC</p>
		<hr>
		<div style="margin: 20px 0;">%s</div>
		<hr>
		<p style="color: #666; font-size: 12px;">
			This is an automated notification from the Mtendere Education Admin System.
		</p>
	</body>
</html>`, time.Now().UTC().Format("2006-01-02 15:04:05"), htmlContent)

	return []byte(b.String())
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
