package ai

import (
	"fmt"

	"evalreport/backend/internal/model"
)

// ReportSystemPrompt frames the model as the evaluator.
const ReportSystemPrompt = "You are a professional academic evaluator writing a formal evaluation report. " +
	"Use the provided candidate information to create a comprehensive and personalized evaluation. " +
	"Always respond with valid JSON."

// TranslateSystemPrompt returns the system prompt for report translation.
func TranslateSystemPrompt(lang model.Language) string {
	return fmt.Sprintf("You are a professional translator specializing in academic and professional document translation. "+
		"Translate the evaluation report to %s while maintaining the formal tone and structure.", lang.Name)
}

// CandidateInfo renders the candidate block embedded in the report prompt.
func CandidateInfo(c model.Candidate) string {
	teaching := "No"
	if c.IsCurrentlyTeaching {
		teaching = "Yes"
	}
	return fmt.Sprintf(`Candidate Information:
Name: %s
Email: %s
Phone: %s
Country: %s
Years of Experience: %d
Area of Expertise: %s
Study Programs: %s
Currently Teaching: %s
Current University: %s
`, c.FullName(), c.Email, c.MobilePhone, c.Country, c.YearsOfExperience,
		c.AreaOfExpertise, c.StudyPrograms, teaching, c.University())
}

// BuildReportPrompt returns the user prompt asking for the five report sections.
func BuildReportPrompt(c model.Candidate, documentText, today, institution string) string {
	return fmt.Sprintf(`Based on the following candidate information and document text, write in English a two-page Evaluation Report
for this person to become a lecturer at %s. The Evaluation Report should first
overview the person's education and accomplishments, then assess the person's ability to lecture, and then
conclude that the person meets the criteria, and is suitable. Add today's date (%s). At the end, instead
of the name of the evaluator just write: %s


1. Purpose: Brief introduction and purpose of the evaluation
2. Education and Accomplishments: Overview of the candidate's educational background and professional achievements
3. Ability to Lecture: Assessment of teaching capabilities and experience
4. Suitability: Analysis of how well the candidate fits the position
5. Conclusion: Final assessment and recommendation

Please format the response as a JSON object with the following structure:
{
    "purpose": "text here",
    "education_and_accomplishments": "text here",
    "ability_to_lecture": "text here",
    "suitability": "text here",
    "conclusion": "text here"
}

%s

Document Text to Analyze:
%s`, institution, today, model.English.Evaluator, CandidateInfo(c), documentText)
}

// BuildTranslatePrompt returns the user prompt carrying the report to translate.
func BuildTranslatePrompt(r model.EvaluationReport, lang model.Language) string {
	return fmt.Sprintf(`Translate the following evaluation report to %s. Maintain the same structure and format.
Keep the date in English format. Here's the report to translate:

Title: %s
Purpose: %s
Education and Accomplishments: %s
Ability to Lecture: %s
Suitability: %s
Conclusion: %s
Date: %s
Evaluator: %s

Please format the response as a JSON object with the following structure:
{
    "title": %q,
    "purpose": "translated text here",
    "education_and_accomplishments": "translated text here",
    "ability_to_lecture": "translated text here",
    "suitability": "translated text here",
    "conclusion": "translated text here",
    "date": "keep original date",
    "evaluator": %q
}`, lang.Name, r.Title, r.Purpose, r.EducationAndAccomplishments, r.AbilityToLecture,
		r.Suitability, r.Conclusion, r.Date, r.Evaluator, lang.Title, lang.Evaluator)
}
