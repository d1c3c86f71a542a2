package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"revtrack/config"
	"revtrack/models"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Review Tracker <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// SendWelcomeEmail delivers the access token of a freshly created account.
// Called asynchronously after the account transaction commits; failures are
// logged and never affect the creation request.
func SendWelcomeEmail(account models.Account, tokenKey string) error {
	if config.AppConfig.EmailSender == "" || account.Email == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif;">
				<h2>Welcome, %s!</h2>
				<p>An account has been created for you on the review tracker.</p>
				<p>Your API access token:</p>
				<pre>%s</pre>
				<p>Send it in requests as <code>Authorization: Token %s</code>.</p>
			</body>
		</html>`,
		account.Username, tokenKey, tokenKey,
	)

	return SendEmail([]string{account.Email}, "Your review tracker account", body)
}
