package main

import (
	"fmt"

	"evalreport/backend/internal/config"
	"evalreport/backend/internal/logger"
	"evalreport/backend/internal/mail"
	"evalreport/backend/internal/network"
	"evalreport/backend/internal/service"
	"evalreport/backend/internal/service/ai"
)

// app holds the wired services shared by serve and evaluate.
type app struct {
	cfg        config.Config
	evaluation service.EvaluationService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	reportProvider, err := ai.NewProvider(ai.Config{
		Provider:    cfg.AIProvider,
		APIKey:      cfg.AIAPIKey,
		BaseURL:     cfg.AIBaseURL,
		Model:       cfg.AIReportModel,
		Temperature: cfg.AITemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("report provider: %w", err)
	}
	translateProvider, err := ai.NewProvider(ai.Config{
		Provider:    cfg.AIProvider,
		APIKey:      cfg.AIAPIKey,
		BaseURL:     cfg.AIBaseURL,
		Model:       cfg.AITranslateModel,
		Temperature: cfg.AITemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("translate provider: %w", err)
	}

	clientFactory := network.NewClientFactory(cfg.ProxyURL)
	documents := service.NewDocumentService(clientFactory, service.DocumentOptions{
		DownloadTimeout: cfg.DownloadTimeout,
		MaxBytes:        cfg.MaxUploadBytes(),
		MaxChars:        cfg.MaxDocumentChars,
		Impersonate:     cfg.DownloadImpersonate,
	})
	limiter := ai.NewRateLimiter(cfg.AIRateLimit)
	reports := service.NewReportService(reportProvider, translateProvider, limiter, service.ReportOptions{
		Institution: cfg.InstitutionName,
		Timeout:     cfg.AITimeout,
	})
	mailer, err := newMailService(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("app configured", "module", "app", "action", "init", "resource", "config", "result", "ok",
		"provider", reportProvider.Name(), "report_model", reportProvider.Model(), "translate_model", translateProvider.Model(),
		"ai_qps", limiter.Limit(), "mail_enabled", mailer.Enabled(), "proxy", clientFactory.ProxyURL() != "")

	return &app{
		cfg:        cfg,
		evaluation: service.NewEvaluationService(documents, reports, mailer),
	}, nil
}

func newMailService(cfg config.Config) (service.MailService, error) {
	if !cfg.MailEnabled() {
		return service.NewMailService(nil, nil, "", nil), nil
	}

	sender, err := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		TLS:      cfg.SMTPTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("smtp sender: %w", err)
	}
	renderer, err := mail.NewRenderer(cfg.InstitutionName)
	if err != nil {
		return nil, err
	}
	return service.NewMailService(sender, renderer, cfg.MailFrom, cfg.MailTo), nil
}
