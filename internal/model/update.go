package model

// Update replaces one section of a resume. Apply never mutates its input.
type Update interface {
	Section() Section
	Apply(r Resume) Resume
	update()
}

type SetPersonalInfo struct{ Info PersonalInfo }

type SetSummary struct{ Text string }

type SetExperience struct{ Entries []Experience }

type SetEducation struct{ Entries []Education }

type SetSkills struct{ Entries []Skill }

func (SetPersonalInfo) Section() Section { return SectionPersonalInfo }
func (SetSummary) Section() Section      { return SectionSummary }
func (SetExperience) Section() Section   { return SectionExperience }
func (SetEducation) Section() Section    { return SectionEducation }
func (SetSkills) Section() Section       { return SectionSkills }

func (SetPersonalInfo) update() {}
func (SetSummary) update()      {}
func (SetExperience) update()   {}
func (SetEducation) update()    {}
func (SetSkills) update()       {}

func (u SetPersonalInfo) Apply(r Resume) Resume {
	out := r.Clone()
	out.PersonalInfo = u.Info
	return out
}

func (u SetSummary) Apply(r Resume) Resume {
	out := r.Clone()
	out.Summary = u.Text
	return out
}

func (u SetExperience) Apply(r Resume) Resume {
	out := r.Clone()
	out.Experience = NormalizeExperience(u.Entries)
	return out
}

func (u SetEducation) Apply(r Resume) Resume {
	out := r.Clone()
	out.Education = NormalizeEducation(u.Entries)
	return out
}

func (u SetSkills) Apply(r Resume) Resume {
	out := r.Clone()
	out.Skills = NormalizeSkills(u.Entries)
	return out
}

// NormalizeExperience copies entries, assigns fresh ids to blank or
// duplicated ones and clears endDate on current entries.
func NormalizeExperience(in []Experience) []Experience {
	out := cloneExperience(in)
	seen := make(map[string]struct{}, len(out))
	for i := range out {
		out[i].ID = uniqueID(out[i].ID, seen)
		if out[i].Current {
			out[i].EndDate = ""
		}
	}
	return out
}

func NormalizeEducation(in []Education) []Education {
	out := append(make([]Education, 0, len(in)), in...)
	seen := make(map[string]struct{}, len(out))
	for i := range out {
		out[i].ID = uniqueID(out[i].ID, seen)
	}
	return out
}

// NormalizeSkills also defaults a blank level to Intermediate.
func NormalizeSkills(in []Skill) []Skill {
	out := append(make([]Skill, 0, len(in)), in...)
	seen := make(map[string]struct{}, len(out))
	for i := range out {
		out[i].ID = uniqueID(out[i].ID, seen)
		if out[i].Level == "" {
			out[i].Level = Intermediate
		}
	}
	return out
}

func uniqueID(id string, seen map[string]struct{}) string {
	if _, dup := seen[id]; id == "" || dup {
		id = NewID()
	}
	seen[id] = struct{}{}
	return id
}

// ExperiencePatch updates the non-nil fields of one experience entry.
type ExperiencePatch struct {
	Company      *string  `json:"company,omitempty"`
	Position     *string  `json:"position,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	Current      *bool    `json:"current,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

func (p ExperiencePatch) apply(e Experience) Experience {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&e.Company, p.Company)
	set(&e.Position, p.Position)
	set(&e.StartDate, p.StartDate)
	set(&e.EndDate, p.EndDate)
	set(&e.Description, p.Description)
	if p.Current != nil {
		e.Current = *p.Current
	}
	if p.Achievements != nil {
		e.Achievements = append([]string{}, p.Achievements...)
	}
	if e.Current {
		e.EndDate = ""
	}
	return e
}

// AddExperience appends a blank entry and returns the new list and entry.
func AddExperience(list []Experience) ([]Experience, Experience) {
	e := NewExperience()
	return append(cloneExperience(list), e), e
}

func RemoveExperience(list []Experience, id string) []Experience {
	return removeByID(cloneExperience(list), id, func(e Experience) string { return e.ID })
}

// PatchExperience applies p to the entry with the given id. The second
// result is false when no entry matches.
func PatchExperience(list []Experience, id string, p ExperiencePatch) ([]Experience, bool) {
	return editExperience(list, id, p.apply)
}

// AddAchievement appends an empty achievement slot to the entry.
func AddAchievement(list []Experience, id string) ([]Experience, bool) {
	return editExperience(list, id, func(e Experience) Experience {
		e.Achievements = append(e.Achievements, "")
		return e
	})
}

// RemoveAchievement drops the achievement at index. Out of range indexes
// leave the entry unchanged.
func RemoveAchievement(list []Experience, id string, index int) ([]Experience, bool) {
	return editExperience(list, id, func(e Experience) Experience {
		if index < 0 || index >= len(e.Achievements) {
			return e
		}
		e.Achievements = append(e.Achievements[:index:index], e.Achievements[index+1:]...)
		return e
	})
}

func SetAchievement(list []Experience, id string, index int, text string) ([]Experience, bool) {
	return editExperience(list, id, func(e Experience) Experience {
		if index >= 0 && index < len(e.Achievements) {
			e.Achievements[index] = text
		}
		return e
	})
}

func editExperience(list []Experience, id string, fn func(Experience) Experience) ([]Experience, bool) {
	out := cloneExperience(list)
	for i := range out {
		if out[i].ID == id {
			out[i] = fn(out[i])
			return out, true
		}
	}
	return out, false
}

func AddEducation(list []Education) ([]Education, Education) {
	e := NewEducation()
	return append(append(make([]Education, 0, len(list)+1), list...), e), e
}

func RemoveEducation(list []Education, id string) []Education {
	out := append(make([]Education, 0, len(list)), list...)
	return removeByID(out, id, func(e Education) string { return e.ID })
}

func AddSkill(list []Skill) ([]Skill, Skill) {
	s := NewSkill()
	return append(append(make([]Skill, 0, len(list)+1), list...), s), s
}

func RemoveSkill(list []Skill, id string) []Skill {
	out := append(make([]Skill, 0, len(list)), list...)
	return removeByID(out, id, func(s Skill) string { return s.ID })
}

// removeByID filters list in place; callers pass a copy.
func removeByID[T any](list []T, id string, key func(T) string) []T {
	out := list[:0]
	for _, v := range list {
		if key(v) != id {
			out = append(out, v)
		}
	}
	return out
}
