package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cityinfo/internal/config"
	"cityinfo/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg config.MailConfig, lggr *zap.SugaredLogger) services.IMailService {
	base := services.MailConfig{From: cfg.From, To: cfg.To}

	if cfg.Provider != "smtp" {
		return services.NewLocalMailService(base, lggr)
	}

	lggr.Infow("Using SMTP mail service", "host", cfg.Host, "port", cfg.Port)
	return services.NewSMTPMailService(services.SMTPConfig{
		MailConfig: base,
		Host:       cfg.Host,
		Port:       cfg.Port,
		Username:   cfg.Username,
		Password:   cfg.Password,
	}, lggr)
}
