package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"resume-editor/internal/model"
)

// Notice is a non-blocking remark about the document. Reviews never
// change the resume; malformed values stay as entered.
type Notice struct {
	Section model.Section `json:"section"`
	EntryID string        `json:"entryId,omitempty"`
	Code    string        `json:"code"`
	Message string        `json:"message"`
}

// StageValidationResult holds the review state for one section.
type StageValidationResult struct {
	Section model.Section
	Valid   bool
	Missing []string
	Notices []Notice
}

func newStage(section model.Section) *StageValidationResult {
	return &StageValidationResult{Section: section, Valid: true, Missing: []string{}}
}

func (s *StageValidationResult) missing(field string) {
	s.Valid = false
	s.Missing = append(s.Missing, field)
}

func (s *StageValidationResult) notice(entryID, code, format string, args ...interface{}) {
	s.Notices = append(s.Notices, Notice{
		Section: s.Section,
		EntryID: entryID,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// PersonalInfoStage checks the fields a reader needs to reach the person.
func PersonalInfoStage(r model.Resume) *StageValidationResult {
	result := newStage(model.SectionPersonalInfo)
	if strings.TrimSpace(r.PersonalInfo.FullName) == "" {
		result.missing("personalInfo.fullName")
		result.notice("", "missing_name", "full name is blank")
	}
	if strings.TrimSpace(r.PersonalInfo.Email) == "" && strings.TrimSpace(r.PersonalInfo.Phone) == "" {
		result.missing("personalInfo.contact")
		result.notice("", "missing_contact", "neither email nor phone is set")
	}
	return result
}

// SummaryStage flags a summary past the display limit. It is not truncated.
func SummaryStage(r model.Resume) *StageValidationResult {
	result := newStage(model.SectionSummary)
	if n := utf8.RuneCountInString(r.Summary); n > model.SummarySoftLimit {
		result.Valid = false
		result.notice("", "summary_too_long", "summary has %d characters, %d are displayed", n, model.SummarySoftLimit)
	}
	return result
}

func ExperienceStage(r model.Resume) *StageValidationResult {
	result := newStage(model.SectionExperience)
	for _, e := range r.Experience {
		if e.Current && e.EndDate != "" {
			result.Valid = false
			result.notice(e.ID, "current_with_end_date", "current position %q still has end date %s", e.Position, e.EndDate)
		}
		if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Position) == "" {
			result.missing("experience." + e.ID)
			result.notice(e.ID, "missing_role", "company or position is blank")
		}
		for i, a := range e.Achievements {
			if strings.TrimSpace(a) == "" {
				result.notice(e.ID, "blank_achievement", "achievement %d is blank", i+1)
			}
		}
	}
	return result
}

func EducationStage(r model.Resume) *StageValidationResult {
	result := newStage(model.SectionEducation)
	for _, e := range r.Education {
		if strings.TrimSpace(e.Institution) == "" {
			result.missing("education." + e.ID)
			result.notice(e.ID, "missing_institution", "institution is blank")
		}
	}
	return result
}

func SkillsStage(r model.Resume) *StageValidationResult {
	result := newStage(model.SectionSkills)
	for _, s := range r.Skills {
		if strings.TrimSpace(s.Name) == "" {
			result.missing("skills." + s.ID)
			result.notice(s.ID, "blank_skill", "skill name is blank")
		}
	}
	return result
}

var stages = []func(model.Resume) *StageValidationResult{
	PersonalInfoStage,
	SummaryStage,
	ExperienceStage,
	EducationStage,
	SkillsStage,
}

// ReviewResume runs every stage in section order.
func ReviewResume(r model.Resume) []Notice {
	notices := []Notice{}
	for _, stage := range stages {
		notices = append(notices, stage(r).Notices...)
	}
	return notices
}

// Review reviews the active resume. It returns nil when there is none.
func (e *Editor) Review() []Notice {
	r, ok := e.Resume()
	if !ok {
		return nil
	}
	return ReviewResume(r)
}
