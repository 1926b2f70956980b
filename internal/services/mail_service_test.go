package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"cityinfo/pkg/logger"
)

func TestLocalMailService_Send(t *testing.T) {
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	svc := NewLocalMailService(MailConfig{From: "noreply@cityinfo.com", To: "admin@cityinfo.com"}, lggr)

	require.NoError(t, svc.Send(context.Background(), "Point of interest deleted.", "Point of interest X with id 1"))

	entries := logs.FilterMessage("Mail sent with local mail service").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "admin@cityinfo.com", fields["to"])
	assert.Equal(t, "Point of interest deleted.", fields["subject"])
}

func TestSMTPMailService_BuildMessage(t *testing.T) {
	svc := NewSMTPMailService(SMTPConfig{
		MailConfig: MailConfig{From: "noreply@cityinfo.com", To: "admin@cityinfo.com"},
		Host:       "smtp.example.com",
		Port:       587,
	}, logger.Test(t)).(*smtpMailService)

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	msg, err := svc.buildMessage("Point of interest deleted.", "Point of interest X with id 1", now)
	require.NoError(t, err)

	s := string(msg)
	assert.Contains(t, s, "From: noreply@cityinfo.com\r\n")
	assert.Contains(t, s, "To: admin@cityinfo.com\r\n")
	assert.Contains(t, s, "Subject: Point of interest deleted.\r\n")
	assert.Contains(t, s, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.Contains(t, s, "Point of interest X with id 1")
	assert.Contains(t, s, "-- CityInfo (2025)")
}
