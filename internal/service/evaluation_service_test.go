package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"evalreport/backend/internal/model"
	"evalreport/backend/internal/service"
	"evalreport/backend/internal/service/mock"
)

type evaluationMocks struct {
	documents *mock.MockDocumentService
	reports   *mock.MockReportService
	mail      *mock.MockMailService
	svc       service.EvaluationService
}

func newEvaluationMocks(ctrl *gomock.Controller) evaluationMocks {
	m := evaluationMocks{
		documents: mock.NewMockDocumentService(ctrl),
		reports:   mock.NewMockReportService(ctrl),
		mail:      mock.NewMockMailService(ctrl),
	}
	m.svc = service.NewEvaluationService(m.documents, m.reports, m.mail)
	return m
}

func englishReport() *model.EvaluationReport {
	return &model.EvaluationReport{
		Title:      "EVALUATION REPORT",
		Purpose:    "Purpose",
		Conclusion: "Recommended.",
		Date:       "March 05, 2024",
		Evaluator:  "Evaluator",
	}
}

func slovenianReport() *model.EvaluationReport {
	return &model.EvaluationReport{
		Title:      "POROČILO O OCENI",
		Purpose:    "Namen",
		Conclusion: "Priporočeno.",
		Date:       "March 05, 2024",
		Evaluator:  "Ocenjevalec",
	}
}

func TestEvaluationService_Evaluate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newEvaluationMocks(ctrl)
	ctx := context.Background()
	src := service.DocumentSource{Filename: "cv.pdf", Data: []byte("%PDF-1.4")}
	candidate := testCandidate()

	gomock.InOrder(
		m.documents.EXPECT().Extract(ctx, src, model.PageRange{}).Return("cv text", nil),
		m.reports.EXPECT().Generate(ctx, candidate, "cv text").Return(englishReport(), nil),
		m.reports.EXPECT().Translate(ctx, *englishReport()).Return(slovenianReport(), nil),
	)

	result, err := m.svc.Evaluate(ctx, service.EvaluateInput{
		Candidate: candidate,
		Source:    src,
		Translate: true,
	})
	require.NoError(t, err)
	require.Equal(t, "EVALUATION REPORT", result.English.Title)
	require.NotNil(t, result.Slovenian)
	require.Equal(t, "Ocenjevalec", result.Slovenian.Evaluator)
	require.False(t, result.EmailSent)
}

func TestEvaluationService_Evaluate_NoTranslate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newEvaluationMocks(ctrl)
	m.documents.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return("cv text", nil)
	m.reports.EXPECT().Generate(gomock.Any(), gomock.Any(), "cv text").Return(englishReport(), nil)

	result, err := m.svc.Evaluate(context.Background(), service.EvaluateInput{
		Candidate: testCandidate(),
		Source:    service.DocumentSource{URL: "https://example.com/cv.pdf"},
	})
	require.NoError(t, err)
	require.Nil(t, result.Slovenian)
}

func TestEvaluationService_Evaluate_MissingDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newEvaluationMocks(ctrl)
	_, err := m.svc.Evaluate(context.Background(), service.EvaluateInput{Candidate: testCandidate()})
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestEvaluationService_Evaluate_DownloadStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newEvaluationMocks(ctrl)
	m.documents.EXPECT().
		Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", &service.DownloadError{URL: "https://example.com/cv.pdf", StatusCode: 404})

	_, err := m.svc.Evaluate(context.Background(), service.EvaluateInput{
		Candidate: testCandidate(),
		Source:    service.DocumentSource{URL: "https://example.com/cv.pdf"},
		Translate: true,
	})
	var dlErr *service.DownloadError
	require.ErrorAs(t, err, &dlErr)
	require.Equal(t, 404, dlErr.StatusCode)
}

func TestEvaluationService_Evaluate_MailDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newEvaluationMocks(ctrl)
	m.mail.EXPECT().Enabled().Return(false)

	_, err := m.svc.Evaluate(context.Background(), service.EvaluateInput{
		Candidate: testCandidate(),
		Source:    service.DocumentSource{Path: "cv.pdf"},
		SendEmail: true,
	})
	require.ErrorIs(t, err, service.ErrMailDisabled)
}

func TestEvaluationService_Evaluate_BadRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Extract or Generate expectations: the address is rejected first.
	m := newEvaluationMocks(ctrl)
	m.mail.EXPECT().Enabled().Return(true)

	_, err := m.svc.Evaluate(context.Background(), service.EvaluateInput{
		Candidate: testCandidate(),
		Source:    service.DocumentSource{Data: []byte("pdf")},
		SendEmail: true,
		EmailTo:   []string{"not an address"},
	})
	require.ErrorIs(t, err, service.ErrInvalid)
	require.NotErrorIs(t, err, service.ErrMailDelivery)
}

func TestEvaluationService_Evaluate_SendEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newEvaluationMocks(ctrl)
	m.mail.EXPECT().Enabled().Return(true)
	m.documents.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return("cv text", nil)
	m.reports.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(englishReport(), nil)
	m.reports.EXPECT().Translate(gomock.Any(), gomock.Any()).Return(slovenianReport(), nil)
	m.mail.EXPECT().
		SendReports(gomock.Any(), gomock.Any(), []string{"dean@example.com"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Candidate, _ []string, reports []service.LocalizedReport) error {
			require.Len(t, reports, 2)
			require.Equal(t, model.English.Code, reports[0].Language.Code)
			require.Equal(t, model.Slovenian.Code, reports[1].Language.Code)
			return nil
		})

	result, err := m.svc.Evaluate(context.Background(), service.EvaluateInput{
		Candidate: testCandidate(),
		Source:    service.DocumentSource{Data: []byte("pdf")},
		Translate: true,
		SendEmail: true,
		EmailTo:   []string{"dean@example.com"},
	})
	require.NoError(t, err)
	require.True(t, result.EmailSent)
}

func TestEvaluationService_Translate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newEvaluationMocks(ctrl)
	m.reports.EXPECT().Translate(gomock.Any(), *englishReport()).Return(slovenianReport(), nil)

	report, err := m.svc.Translate(context.Background(), *englishReport())
	require.NoError(t, err)
	require.Equal(t, "POROČILO O OCENI", report.Title)
}
