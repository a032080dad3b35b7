package model

import (
	"time"

	"github.com/google/uuid"
)

// Go models that match resume.schema.json, used for persistence, import and export.

// SummarySoftLimit is the display limit for the summary. Longer text is kept as-is.
const SummarySoftLimit = 500

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
}

type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	LastModified time.Time    `json:"lastModified"`
}

// NewID returns a fresh entry identifier.
func NewID() string {
	return uuid.NewString()
}

// NewEmpty returns a resume with blank fields stamped with now.
func NewEmpty(now time.Time) Resume {
	return Resume{
		Experience:   []Experience{},
		Education:    []Education{},
		Skills:       []Skill{},
		LastModified: now.UTC(),
	}
}

// NewExperience returns a blank experience entry with one empty achievement slot.
func NewExperience() Experience {
	return Experience{ID: NewID(), Achievements: []string{""}}
}

func NewEducation() Education {
	return Education{ID: NewID()}
}

func NewSkill() Skill {
	return Skill{ID: NewID(), Level: Intermediate, Category: DefaultSkillCategory}
}

// Clone returns a deep copy so callers can mutate the result without
// touching shared slices.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = cloneExperience(r.Experience)
	out.Education = append(make([]Education, 0, len(r.Education)), r.Education...)
	out.Skills = append(make([]Skill, 0, len(r.Skills)), r.Skills...)
	return out
}

func cloneExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	for i, e := range in {
		e.Achievements = append(make([]string, 0, len(e.Achievements)), e.Achievements...)
		out[i] = e
	}
	return out
}

// Equal reports whether two resumes match in every field except LastModified.
func (r Resume) Equal(o Resume) bool {
	if r.PersonalInfo != o.PersonalInfo || r.Summary != o.Summary {
		return false
	}
	if len(r.Experience) != len(o.Experience) || len(r.Education) != len(o.Education) || len(r.Skills) != len(o.Skills) {
		return false
	}
	for i := range r.Experience {
		a, b := r.Experience[i], o.Experience[i]
		if a.ID != b.ID || a.Company != b.Company || a.Position != b.Position ||
			a.StartDate != b.StartDate || a.EndDate != b.EndDate || a.Current != b.Current ||
			a.Description != b.Description || len(a.Achievements) != len(b.Achievements) {
			return false
		}
		for j := range a.Achievements {
			if a.Achievements[j] != b.Achievements[j] {
				return false
			}
		}
	}
	for i := range r.Education {
		if r.Education[i] != o.Education[i] {
			return false
		}
	}
	for i := range r.Skills {
		if r.Skills[i] != o.Skills[i] {
			return false
		}
	}
	return true
}
