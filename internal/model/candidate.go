package model

import "strings"

// Candidate holds the metadata submitted alongside the document.
type Candidate struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	MobilePhone         string `json:"mobile_phone"`
	Country             string `json:"country"`
	YearsOfExperience   int    `json:"years_of_experience"`
	AreaOfExpertise     string `json:"area_of_expertise"`
	StudyPrograms       string `json:"study_programs"`
	IsCurrentlyTeaching bool   `json:"is_currently_teaching"`
	CurrentUniversity   string `json:"current_university,omitempty"`
}

func (c Candidate) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// University returns the current university, or N/A when not teaching.
func (c Candidate) University() string {
	if !c.IsCurrentlyTeaching || strings.TrimSpace(c.CurrentUniversity) == "" {
		return "N/A"
	}
	return c.CurrentUniversity
}

// PageRange selects pages for extraction. Start is 0-based; End is
// inclusive and nil means the last page.
type PageRange struct {
	Start int
	End   *int
}
