// services/mail_service.go
package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"text/template"
	"time"

	"go.uber.org/zap"
)

// IMailService notifies the site administrator about changes to the data.
type IMailService interface {
	Send(ctx context.Context, subject, message string) error
}

type MailConfig struct {
	From string
	To   string
}

// ------------------- Local -------------------

// localMailService only logs the mail. It is the default outside production.
type localMailService struct {
	cfg  MailConfig
	lggr *zap.SugaredLogger
}

func NewLocalMailService(cfg MailConfig, lggr *zap.SugaredLogger) IMailService {
	return &localMailService{cfg: cfg, lggr: lggr.Named("mail")}
}

func (s *localMailService) Send(ctx context.Context, subject, message string) error {
	s.lggr.Infow("Mail sent with local mail service",
		"from", s.cfg.From,
		"to", s.cfg.To,
		"subject", subject,
		"message", message)
	return nil
}

// ------------------- SMTP -------------------

// SMTPConfig holds your SMTP settings.
type SMTPConfig struct {
	MailConfig
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // 587 (STARTTLS) or 465 (SMTPS)
	Username string // SMTP username / login
	Password string // SMTP password / app password
}

type smtpMailService struct {
	cfg     SMTPConfig
	textTpl *template.Template
	lggr    *zap.SugaredLogger
}

func NewSMTPMailService(cfg SMTPConfig, lggr *zap.SugaredLogger) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		textTpl: template.Must(template.New("plainText").Parse(plainTextTemplate)),
		lggr:    lggr.Named("mail"),
	}
}

const plainTextTemplate = `{{.Subject}}

{{.Message}}

-- CityInfo ({{.Year}})
`

type mailData struct {
	Subject string
	Message string
	Year    int
}

func (s *smtpMailService) Send(ctx context.Context, subject, message string) error {
	msg, err := s.buildMessage(subject, message, time.Now())
	if err != nil {
		return err
	}
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", s.cfg.To, err)
	}
	s.lggr.Debugw("Mail sent", "to", s.cfg.To, "subject", subject)
	return nil
}

func (s *smtpMailService) buildMessage(subject, message string, now time.Time) ([]byte, error) {
	var body bytes.Buffer
	if err := s.textTpl.Execute(&body, mailData{Subject: subject, Message: message, Year: now.Year()}); err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.cfg.From)
	write("To: %s\r\n", s.cfg.To)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n", body.String())
	return msg.Bytes(), nil
}

func (s *smtpMailService) send(ctx context.Context, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	var conn net.Conn
	var err error
	if s.cfg.Port == 465 {
		// SMTPS (implicit TLS)
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if s.cfg.Port != 465 {
		if ok, _ := c.Extension("STARTTLS"); !ok {
			return fmt.Errorf("server does not support STARTTLS")
		}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(s.cfg.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
