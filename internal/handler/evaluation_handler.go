package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"evalreport/backend/internal/model"
	"evalreport/backend/internal/service"
)

const welcomeMessage = "Welcome to the Evaluation Report Generator API"

type EvaluationHandler struct {
	service        service.EvaluationService
	maxUploadBytes int64
}

// uploadForm mirrors the multipart fields of POST /upload. Numbers and
// booleans stay strings until validated so a bad value yields a 400
// naming the field.
type uploadForm struct {
	FirstName           string `form:"first_name" validate:"required"`
	LastName            string `form:"last_name" validate:"required"`
	Email               string `form:"email" validate:"required,email"`
	MobilePhone         string `form:"mobile_phone" validate:"required"`
	Country             string `form:"country" validate:"required"`
	YearsOfExperience   string `form:"years_of_experience" validate:"required,number"`
	AreaOfExpertise     string `form:"area_of_expertise" validate:"required"`
	StudyPrograms       string `form:"study_programs" validate:"required"`
	IsCurrentlyTeaching string `form:"is_currently_teaching" validate:"required,boolean"`
	CurrentUniversity   string `form:"current_university"`

	FileURL   string `form:"file_url" validate:"omitempty,http_url"`
	StartPage string `form:"start_page" validate:"omitempty,number"`
	EndPage   string `form:"end_page" validate:"omitempty,number"`
	Translate string `form:"translate" validate:"omitempty,boolean"`
	SendEmail string `form:"send_email" validate:"omitempty,boolean"`
	EmailTo   string `form:"email_to" validate:"omitempty,email_list"`
}

func NewEvaluationHandler(service service.EvaluationService, maxUploadBytes int64) *EvaluationHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 20 << 20
	}
	return &EvaluationHandler{service: service, maxUploadBytes: maxUploadBytes}
}

func (h *EvaluationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/", h.Root)
	g.GET("/healthz", h.Healthz)
	g.POST("/upload", h.Upload)
	g.POST("/translate", h.Translate)
}

// Root returns the welcome message.
// @Summary Welcome
// @Description Health check returning a welcome message
// @Tags system
// @Produce json
// @Success 200 {object} welcomeResponse
// @Router / [get]
func (h *EvaluationHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, welcomeResponse{Message: welcomeMessage})
}

// Healthz reports liveness.
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Router /healthz [get]
func (h *EvaluationHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

// Upload generates an evaluation report from a candidate document.
// @Summary Generate evaluation report
// @Description Extract text from the uploaded PDF (or the document at file_url), generate the English report, translate it to Slovenian and optionally email both.
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param email formData string true "Email"
// @Param mobile_phone formData string true "Mobile phone"
// @Param country formData string true "Country"
// @Param years_of_experience formData int true "Years of experience"
// @Param area_of_expertise formData string true "Area of expertise"
// @Param study_programs formData string true "Study programs"
// @Param is_currently_teaching formData bool true "Currently teaching"
// @Param current_university formData string false "Current university"
// @Param file formData file false "Candidate PDF"
// @Param file_url formData string false "URL of the candidate document"
// @Param start_page formData int false "First page, 0-based"
// @Param end_page formData int false "Last page, inclusive"
// @Param translate formData bool false "Translate to Slovenian (default true)"
// @Param send_email formData bool false "Email the reports"
// @Param email_to formData string false "Comma separated recipients"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 415 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /upload [post]
func (h *EvaluationHandler) Upload(c echo.Context) error {
	var form uploadForm
	if err := c.Bind(&form); err != nil {
		return Error(c, http.StatusBadRequest, "invalid form data")
	}
	form.trim()
	if err := c.Validate(&form); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	in, err := form.toInput()
	if err != nil {
		return writeServiceError(c, err)
	}

	fh, err := c.FormFile("file")
	switch {
	case err == nil:
		if fh.Size > h.maxUploadBytes {
			return Error(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("file exceeds %d MB", h.maxUploadBytes>>20))
		}
		data, err := readUpload(fh, h.maxUploadBytes)
		if err != nil {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		if len(data) == 0 {
			return Error(c, http.StatusBadRequest, "uploaded file is empty")
		}
		in.Source.Filename = fh.Filename
		in.Source.Data = data
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return Error(c, http.StatusBadRequest, "invalid file upload")
	}

	if form.FileURL != "" {
		if len(in.Source.Data) > 0 {
			return Error(c, http.StatusBadRequest, "provide either file or file_url, not both")
		}
		in.Source.URL = form.FileURL
	}
	if in.Source.IsEmpty() {
		return Error(c, http.StatusBadRequest, "either file or file_url must be provided")
	}

	result, err := h.service.Evaluate(c.Request().Context(), in)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Status:          statusSuccess,
		StatusCode:      http.StatusOK,
		EnglishReport:   result.English,
		SlovenianReport: result.Slovenian,
		EmailSent:       result.EmailSent,
	})
}

// Translate translates an existing report to Slovenian.
// @Summary Translate evaluation report
// @Description Translate a report produced by /upload to Slovenian
// @Tags reports
// @Accept json
// @Produce json
// @Param report body model.EvaluationReport true "Report to translate"
// @Success 200 {object} translateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate [post]
func (h *EvaluationHandler) Translate(c echo.Context) error {
	var req model.EvaluationReport
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	report, err := h.service.Translate(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, translateResponse{
		Status:     statusSuccess,
		StatusCode: http.StatusOK,
		Report:     report,
	})
}

// trim strips surrounding whitespace so blank values fail "required".
func (f *uploadForm) trim() {
	for _, field := range []*string{
		&f.FirstName, &f.LastName, &f.Email, &f.MobilePhone, &f.Country,
		&f.YearsOfExperience, &f.AreaOfExpertise, &f.StudyPrograms,
		&f.IsCurrentlyTeaching, &f.CurrentUniversity, &f.FileURL,
		&f.StartPage, &f.EndPage, &f.Translate, &f.SendEmail, &f.EmailTo,
	} {
		*field = strings.TrimSpace(*field)
	}
}

func (f uploadForm) toInput() (service.EvaluateInput, error) {
	years, err := strconv.Atoi(f.YearsOfExperience)
	if err != nil {
		return service.EvaluateInput{}, fmt.Errorf("%w: years_of_experience is out of range", service.ErrInvalid)
	}
	teaching, _ := strconv.ParseBool(f.IsCurrentlyTeaching)

	in := service.EvaluateInput{
		Candidate: model.Candidate{
			FirstName:           f.FirstName,
			LastName:            f.LastName,
			Email:               f.Email,
			MobilePhone:         f.MobilePhone,
			Country:             f.Country,
			YearsOfExperience:   years,
			AreaOfExpertise:     f.AreaOfExpertise,
			StudyPrograms:       f.StudyPrograms,
			IsCurrentlyTeaching: teaching,
			CurrentUniversity:   f.CurrentUniversity,
		},
		Translate: true,
	}

	if f.StartPage != "" {
		if in.Pages.Start, err = strconv.Atoi(f.StartPage); err != nil {
			return service.EvaluateInput{}, fmt.Errorf("%w: start_page is out of range", service.ErrInvalid)
		}
	}
	if f.EndPage != "" {
		end, err := strconv.Atoi(f.EndPage)
		if err != nil {
			return service.EvaluateInput{}, fmt.Errorf("%w: end_page is out of range", service.ErrInvalid)
		}
		in.Pages.End = &end
	}
	if f.Translate != "" {
		in.Translate, _ = strconv.ParseBool(f.Translate)
	}
	if f.SendEmail != "" {
		in.SendEmail, _ = strconv.ParseBool(f.SendEmail)
	}
	if f.EmailTo != "" {
		in.EmailTo = []string{f.EmailTo}
	}
	return in, nil
}

func readUpload(fh *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file exceeds %d MB", limit>>20)
	}
	return data, nil
}
