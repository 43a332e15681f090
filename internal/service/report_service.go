package service

//go:generate mockgen -source=report_service.go -destination=mock/report_service.go -package=mock

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"evalreport/backend/internal/logger"
	"evalreport/backend/internal/metrics"
	"evalreport/backend/internal/model"
	"evalreport/backend/internal/service/ai"
)

// ReportDateLayout is the date format written into reports.
const ReportDateLayout = "January 02, 2006"

// ReportService generates evaluation reports and translates them.
type ReportService interface {
	// Generate writes the English report for a candidate from the document text.
	Generate(ctx context.Context, candidate model.Candidate, documentText string) (*model.EvaluationReport, error)
	// Translate rewrites a report in the target language.
	Translate(ctx context.Context, report model.EvaluationReport) (*model.EvaluationReport, error)
}

// ReportOptions configures report generation.
type ReportOptions struct {
	Institution string
	Target      model.Language   // translation target, Slovenian when empty
	Now         func() time.Time // clock for the report date
	Timeout     time.Duration    // per model call, 0 disables
}

type reportService struct {
	reportProvider    ai.Provider
	translateProvider ai.Provider
	rateLimiter       *ai.RateLimiter
	opts              ReportOptions
}

// NewReportService creates a report service. reportProvider and
// translateProvider may be the same provider.
func NewReportService(reportProvider, translateProvider ai.Provider, rateLimiter *ai.RateLimiter, opts ReportOptions) ReportService {
	if opts.Target.Code == "" {
		opts.Target = model.Slovenian
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if rateLimiter == nil {
		rateLimiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	return &reportService{
		reportProvider:    reportProvider,
		translateProvider: translateProvider,
		rateLimiter:       rateLimiter,
		opts:              opts,
	}
}

func (s *reportService) Generate(ctx context.Context, candidate model.Candidate, documentText string) (*model.EvaluationReport, error) {
	today := s.opts.Now().Format(ReportDateLayout)
	prompt := ai.BuildReportPrompt(candidate, documentText, today, s.opts.Institution)

	var report model.EvaluationReport
	err := s.complete(ctx, s.reportProvider, "generate", ai.ReportSystemPrompt, prompt, ai.SchemaReport, &report)
	metrics.ReportsTotal.WithLabelValues("generate", metrics.Result(err)).Inc()
	if err != nil {
		return nil, err
	}

	report.Title = model.English.Title
	report.Evaluator = model.English.Evaluator
	report.Date = today

	logger.Info("report generated", "module", "service", "action", "create", "resource", "report", "result", "ok", "provider", s.reportProvider.Name(), "model", s.reportProvider.Model())
	return &report, nil
}

func (s *reportService) Translate(ctx context.Context, report model.EvaluationReport) (*model.EvaluationReport, error) {
	report.ApplyDefaults(model.English)
	lang := s.opts.Target
	prompt := ai.BuildTranslatePrompt(report, lang)

	var translated model.EvaluationReport
	err := s.complete(ctx, s.translateProvider, "translate", ai.TranslateSystemPrompt(lang), prompt, ai.SchemaTranslation, &translated)
	metrics.ReportsTotal.WithLabelValues("translate", metrics.Result(err)).Inc()
	if err != nil {
		return nil, err
	}

	translated.ApplyDefaults(lang)
	if translated.Date == "" {
		translated.Date = report.Date
	}

	logger.Info("report translated", "module", "service", "action", "create", "resource", "translation", "result", "ok", "language", lang.Code, "provider", s.translateProvider.Name(), "model", s.translateProvider.Model())
	return &translated, nil
}

// complete runs one model round trip and decodes the validated JSON reply into out.
func (s *reportService) complete(ctx context.Context, provider ai.Provider, purpose, systemPrompt, prompt string, kind ai.SchemaKind, out any) error {
	if err := s.rateLimiter.Wait(ctx, purpose); err != nil {
		logger.Warn("ai rate limit wait failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "purpose", purpose, "error", err)
		return fmt.Errorf("%w: rate limit: %v", ErrModelRequest, err)
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := provider.CompleteJSON(ctx, systemPrompt, prompt)
	metrics.ObserveModel(provider.Name(), purpose, start)
	if err != nil {
		logger.Warn("ai request failed", "module", "service", "action", "fetch", "resource", "ai", "result", "failed", "purpose", purpose, "provider", provider.Name(), "model", provider.Model(), "error", err)
		return fmt.Errorf("%w: %v", ErrModelRequest, err)
	}

	raw, err := ai.ExtractJSONObject(reply)
	if err != nil {
		logger.Warn("ai reply has no json", "module", "service", "action", "parse", "resource", "ai", "result", "failed", "purpose", purpose, "error", err)
		return fmt.Errorf("%w: %v", ErrModelOutput, err)
	}
	if err := ai.ValidateJSON(kind, raw); err != nil {
		logger.Warn("ai reply failed schema", "module", "service", "action", "parse", "resource", "ai", "result", "failed", "purpose", purpose, "error", err)
		return fmt.Errorf("%w: %v", ErrModelOutput, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrModelOutput, err)
	}
	return nil
}
