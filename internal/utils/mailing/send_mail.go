package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"kolomarket-backend/internal/utils"
)

type smtpConfig struct {
	host     string
	port     string
	sender   string
	email    string
	password string
}

func loadSMTPConfig() smtpConfig {
	return smtpConfig{
		host:     utils.GetConfig("SMTP_HOST"),
		port:     utils.GetConfig("SMTP_PORT"),
		sender:   utils.GetConfig("SMTP_SENDER_NAME"),
		email:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		password: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	cfg := loadSMTPConfig()

	port, err := strconv.Atoi(cfg.port)
	if err != nil {
		return fmt.Errorf("invalid SMTP port %q: %w", cfg.port, err)
	}

	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", cfg.email, cfg.sender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(cfg.host, port, cfg.email, cfg.password)
	return dialer.DialAndSend(mailer)
}
