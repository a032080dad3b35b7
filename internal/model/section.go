package model

import (
	"fmt"
	"strings"
)

// Section names the unit of enhancement. Values outside the known set are
// allowed; providers answer them with a generic fallback.
type Section string

const (
	SectionPersonalInfo Section = "personalInfo"
	SectionSummary      Section = "summary"
	SectionExperience   Section = "experience"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
)

var Sections = []Section{SectionPersonalInfo, SectionSummary, SectionExperience, SectionEducation, SectionSkills}

func (s Section) Known() bool {
	for _, v := range Sections {
		if s == v {
			return true
		}
	}
	return false
}

// EnhancementInput builds the text the editor submits for enhancement of a
// section. For experience and education, id picks the entry; a blank id
// picks the first one.
func EnhancementInput(r Resume, section Section, id string) string {
	switch section {
	case SectionPersonalInfo:
		return fmt.Sprintf("%s - %s", r.PersonalInfo.FullName, r.PersonalInfo.Email)
	case SectionSummary:
		return r.Summary
	case SectionExperience:
		for _, e := range r.Experience {
			if id == "" || e.ID == id {
				return fmt.Sprintf("%s at %s: %s", e.Position, e.Company, e.Description)
			}
		}
	case SectionEducation:
		for _, e := range r.Education {
			if id == "" || e.ID == id {
				return fmt.Sprintf("%s in %s from %s", e.Degree, e.Field, e.Institution)
			}
		}
	case SectionSkills:
		parts := make([]string, 0, len(r.Skills))
		for _, s := range r.Skills {
			parts = append(parts, fmt.Sprintf("%s (%s)", s.Name, s.Level))
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
