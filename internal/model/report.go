package model

// EvaluationReport is the fixed-schema report produced by the model.
// The translated report shares the same shape.
type EvaluationReport struct {
	Title                       string `json:"title"`
	Purpose                     string `json:"purpose" validate:"required"`
	EducationAndAccomplishments string `json:"education_and_accomplishments" validate:"required"`
	AbilityToLecture            string `json:"ability_to_lecture" validate:"required"`
	Suitability                 string `json:"suitability" validate:"required"`
	Conclusion                  string `json:"conclusion" validate:"required"`
	Date                        string `json:"date" validate:"required"`
	Evaluator                   string `json:"evaluator"`
}

// Language describes a report language and its fixed header/footer strings.
type Language struct {
	Code      string
	Name      string
	Title     string
	Evaluator string
}

var (
	English = Language{
		Code:      "en",
		Name:      "English",
		Title:     "EVALUATION REPORT",
		Evaluator: "Evaluator",
	}
	Slovenian = Language{
		Code:      "sl",
		Name:      "Slovenian",
		Title:     "POROČILO O OCENI",
		Evaluator: "Ocenjevalec",
	}
)

// ApplyDefaults fills an empty title or evaluator with the language defaults.
func (r *EvaluationReport) ApplyDefaults(lang Language) {
	if r.Title == "" {
		r.Title = lang.Title
	}
	if r.Evaluator == "" {
		r.Evaluator = lang.Evaluator
	}
}
