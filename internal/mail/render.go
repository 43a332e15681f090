package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"

	"evalreport/backend/internal/model"
)

//go:embed templates/*
var templateFS embed.FS

// Rendered is a report turned into email content.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer turns evaluation reports into email bodies.
type Renderer struct {
	html        *htmltemplate.Template
	text        *texttemplate.Template
	policy      *bluemonday.Policy
	institution string
}

type section struct {
	Heading    string
	Paragraphs []string
}

type view struct {
	Lang        string
	Title       string
	Candidate   string
	Institution string
	Sections    []section
	Date        string
	Evaluator   string
}

var headings = map[string][5]string{
	model.English.Code: {
		"Purpose",
		"Education and Accomplishments",
		"Ability to Lecture",
		"Suitability",
		"Conclusion",
	},
	model.Slovenian.Code: {
		"Namen",
		"Izobrazba in dosežki",
		"Sposobnost predavanja",
		"Primernost",
		"Zaključek",
	},
}

// NewRenderer parses the embedded templates.
func NewRenderer(institution string) (*Renderer, error) {
	h, err := htmltemplate.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	t, err := texttemplate.ParseFS(templateFS, "templates/report.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}
	return &Renderer{
		html:        h,
		text:        t,
		policy:      bluemonday.StrictPolicy(),
		institution: institution,
	}, nil
}

// Render builds the subject and both bodies for one report.
func (r *Renderer) Render(report model.EvaluationReport, candidate model.Candidate, lang model.Language) (Rendered, error) {
	report.ApplyDefaults(lang)

	names, ok := headings[lang.Code]
	if !ok {
		names = headings[model.English.Code]
	}
	bodies := [5]string{
		report.Purpose,
		report.EducationAndAccomplishments,
		report.AbilityToLecture,
		report.Suitability,
		report.Conclusion,
	}

	v := view{
		Lang:        lang.Code,
		Title:       r.clean(report.Title),
		Candidate:   r.clean(candidate.FullName()),
		Institution: r.clean(r.institution),
		Date:        r.clean(report.Date),
		Evaluator:   r.clean(report.Evaluator),
	}
	for i, body := range bodies {
		v.Sections = append(v.Sections, section{Heading: names[i], Paragraphs: r.paragraphs(body)})
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := r.html.Execute(&htmlBuf, v); err != nil {
		return Rendered{}, fmt.Errorf("render html: %w", err)
	}
	if err := r.text.Execute(&textBuf, v); err != nil {
		return Rendered{}, fmt.Errorf("render text: %w", err)
	}

	return Rendered{
		Subject: fmt.Sprintf("%s: %s", v.Title, v.Candidate),
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}

// clean strips any markup from model text. The templates escape again on output.
func (r *Renderer) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(r.policy.Sanitize(s)))
}

func (r *Renderer) paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = r.clean(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
