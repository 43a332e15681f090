package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"evalreport/backend/internal/model"
	"evalreport/backend/internal/service"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Generate a report for one candidate and print it as JSON",
	Long:  "Runs the report pipeline once against a local PDF (--file) or a document URL (--url) and prints the same JSON the /upload endpoint returns.",
	RunE:  runEvaluate,
}

var (
	evalFile        string
	evalURL         string
	evalCandidate   model.Candidate
	evalStartPage   int
	evalEndPage     int
	evalNoTranslate bool
	evalSendEmail   bool
	evalEmailTo     []string
)

type evaluateOutput struct {
	Status          string                  `json:"status"`
	StatusCode      int                     `json:"status_code"`
	EnglishReport   *model.EvaluationReport `json:"english_report"`
	SlovenianReport *model.EvaluationReport `json:"slovenian_report,omitempty"`
	EmailSent       bool                    `json:"email_sent"`
}

func init() {
	f := evaluateCmd.Flags()
	f.StringVar(&evalFile, "file", "", "Path to the candidate PDF")
	f.StringVar(&evalURL, "url", "", "URL of the candidate document")
	f.StringVar(&evalCandidate.FirstName, "first-name", "", "First name (required)")
	f.StringVar(&evalCandidate.LastName, "last-name", "", "Last name (required)")
	f.StringVar(&evalCandidate.Email, "email", "", "Email")
	f.StringVar(&evalCandidate.MobilePhone, "phone", "", "Mobile phone")
	f.StringVar(&evalCandidate.Country, "country", "", "Country")
	f.IntVar(&evalCandidate.YearsOfExperience, "years", 0, "Years of experience")
	f.StringVar(&evalCandidate.AreaOfExpertise, "expertise", "", "Area of expertise")
	f.StringVar(&evalCandidate.StudyPrograms, "programs", "", "Study programs")
	f.BoolVar(&evalCandidate.IsCurrentlyTeaching, "teaching", false, "Candidate is currently teaching")
	f.StringVar(&evalCandidate.CurrentUniversity, "university", "", "Current university")
	f.IntVar(&evalStartPage, "start-page", 0, "First page to read, 0-based")
	f.IntVar(&evalEndPage, "end-page", -1, "Last page to read, inclusive (-1 for the last page)")
	f.BoolVar(&evalNoTranslate, "no-translate", false, "Skip the Slovenian translation")
	f.BoolVar(&evalSendEmail, "send-email", false, "Email the reports")
	f.StringSliceVar(&evalEmailTo, "email-to", nil, "Recipients (defaults to MAIL_DEFAULT_TO)")

	evaluateCmd.MarkFlagsOneRequired("file", "url")
	evaluateCmd.MarkFlagsMutuallyExclusive("file", "url")
	for _, name := range []string{"first-name", "last-name"} {
		if err := evaluateCmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	in := service.EvaluateInput{
		Candidate: evalCandidate,
		Source:    service.DocumentSource{Path: evalFile, URL: evalURL},
		Pages:     model.PageRange{Start: evalStartPage},
		Translate: !evalNoTranslate,
		SendEmail: evalSendEmail,
		EmailTo:   evalEmailTo,
	}
	if evalEndPage >= 0 {
		end := evalEndPage
		in.Pages.End = &end
	}

	result, err := a.evaluation.Evaluate(cmd.Context(), in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(evaluateOutput{
		Status:          "success",
		StatusCode:      http.StatusOK,
		EnglishReport:   result.English,
		SlovenianReport: result.Slovenian,
		EmailSent:       result.EmailSent,
	})
}
