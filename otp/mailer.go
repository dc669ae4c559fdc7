package otp

import (
	"fmt"
	"net/smtp"
	"os"
)

// SMTPMailer sends verification codes over plain SMTP.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	return &SMTPMailer{
		Host: os.Getenv("SMTP_HOST"),
		Port: os.Getenv("SMTP_PORT"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("SMTP_FROM"),
	}
}

func (m *SMTPMailer) SendOTP(email, code string) error {
	body := fmt.Sprintf(
		"From: GLOWISHII <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: Email Verification OTP\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"<h1>Verify Your Email</h1>"+
			"<p>Your OTP is:</p>"+
			"<h2>%s</h2>"+
			"<p>This OTP will expire in 5 minutes.</p>\r\n",
		m.From, email, code,
	)

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{email}, []byte(body))
}
