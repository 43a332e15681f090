package service

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service.go -package=mock

import (
	"context"
	"fmt"

	"evalreport/backend/internal/logger"
	"evalreport/backend/internal/model"
)

// EvaluateInput is one pass through the report pipeline.
type EvaluateInput struct {
	Candidate model.Candidate
	Source    DocumentSource
	Pages     model.PageRange
	Translate bool
	SendEmail bool
	EmailTo   []string
}

// EvaluateResult carries the produced reports.
type EvaluateResult struct {
	English   *model.EvaluationReport
	Slovenian *model.EvaluationReport // nil when translation was skipped
	EmailSent bool
}

// EvaluationService runs the acquire, extract, generate, translate and
// email steps. Any failing step aborts the request.
type EvaluationService interface {
	Evaluate(ctx context.Context, in EvaluateInput) (*EvaluateResult, error)
	Translate(ctx context.Context, report model.EvaluationReport) (*model.EvaluationReport, error)
}

type evaluationService struct {
	documents DocumentService
	reports   ReportService
	mail      MailService
}

func NewEvaluationService(documents DocumentService, reports ReportService, mail MailService) EvaluationService {
	return &evaluationService{
		documents: documents,
		reports:   reports,
		mail:      mail,
	}
}

func (s *evaluationService) Evaluate(ctx context.Context, in EvaluateInput) (*EvaluateResult, error) {
	if in.Source.IsEmpty() {
		return nil, fmt.Errorf("%w: either file or file_url must be provided", ErrInvalid)
	}
	if in.SendEmail {
		if s.mail == nil || !s.mail.Enabled() {
			return nil, ErrMailDisabled
		}
		if _, err := ParseRecipients(in.EmailTo); err != nil {
			return nil, err
		}
	}

	text, err := s.documents.Extract(ctx, in.Source, in.Pages)
	if err != nil {
		return nil, err
	}

	english, err := s.reports.Generate(ctx, in.Candidate, text)
	if err != nil {
		return nil, err
	}
	result := &EvaluateResult{English: english}

	if in.Translate {
		slovenian, err := s.reports.Translate(ctx, *english)
		if err != nil {
			return nil, err
		}
		result.Slovenian = slovenian
	}

	if in.SendEmail {
		reports := []LocalizedReport{{Language: model.English, Report: *english}}
		if result.Slovenian != nil {
			reports = append(reports, LocalizedReport{Language: model.Slovenian, Report: *result.Slovenian})
		}
		if err := s.mail.SendReports(ctx, in.Candidate, in.EmailTo, reports); err != nil {
			return nil, err
		}
		result.EmailSent = true
	}

	logger.Info("evaluation complete", "module", "service", "action", "create", "resource", "evaluation", "result", "ok", "translated", result.Slovenian != nil, "email_sent", result.EmailSent)
	return result, nil
}

func (s *evaluationService) Translate(ctx context.Context, report model.EvaluationReport) (*model.EvaluationReport, error) {
	return s.reports.Translate(ctx, report)
}
