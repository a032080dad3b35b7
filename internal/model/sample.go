package model

import "time"

// NewSample returns the fully populated reference resume. It stands in for
// real import parsing, so every call hands out fresh entry ids.
func NewSample(now time.Time) Resume {
	return Resume{
		PersonalInfo: PersonalInfo{
			FullName: "John Doe",
			Email:    "john.doe@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
			LinkedIn: "https://linkedin.com/in/johndoe",
			Website:  "https://johndoe.com",
		},
		Summary: "Experienced software developer with 5+ years of expertise in full-stack web development. " +
			"Passionate about creating innovative solutions and leading cross-functional teams to deliver high-quality products.",
		Experience: []Experience{
			{
				ID:          NewID(),
				Company:     "Tech Solutions Inc.",
				Position:    "Senior Software Developer",
				StartDate:   "2022-01",
				Current:     true,
				Description: "Lead development of web applications using React, Node.js, and PostgreSQL. Collaborate with product managers and designers to deliver user-centric solutions.",
				Achievements: []string{
					"Increased application performance by 40% through optimization",
					"Led a team of 5 developers on key product features",
					"Implemented CI/CD pipeline reducing deployment time by 60%",
				},
			},
			{
				ID:          NewID(),
				Company:     "StartupXYZ",
				Position:    "Full Stack Developer",
				StartDate:   "2019-06",
				EndDate:     "2021-12",
				Description: "Developed and maintained multiple web applications using modern JavaScript frameworks. Worked closely with startup founders to build MVP products.",
				Achievements: []string{
					"Built 3 successful web applications from scratch",
					"Reduced page load times by 50% through performance optimization",
					"Mentored 2 junior developers",
				},
			},
		},
		Education: []Education{
			{
				ID:          NewID(),
				Institution: "University of California",
				Degree:      "Bachelor's Degree",
				Field:       "Computer Science",
				StartDate:   "2015-09",
				EndDate:     "2019-05",
				GPA:         "3.8/4.0",
				Honors:      "Magna Cum Laude",
			},
		},
		Skills: []Skill{
			{ID: NewID(), Name: "JavaScript", Level: Expert, Category: "Programming"},
			{ID: NewID(), Name: "React", Level: Expert, Category: "Programming"},
			{ID: NewID(), Name: "Node.js", Level: Advanced, Category: "Programming"},
			{ID: NewID(), Name: "PostgreSQL", Level: Advanced, Category: "Technical"},
			{ID: NewID(), Name: "Team Leadership", Level: Advanced, Category: "Management"},
			{ID: NewID(), Name: "Project Management", Level: Intermediate, Category: "Management"},
		},
		LastModified: now.UTC(),
	}
}
