package usecase

import "resume-editor/internal/model"

// Entry level edits used by the per-entry controls. Like the section
// updates they never persist.

func (e *Editor) AddExperience() (model.Experience, bool) {
	var added model.Experience
	ok := e.edit(func(r model.Resume) (model.Resume, bool) {
		out := r.Clone()
		out.Experience, added = model.AddExperience(r.Experience)
		return out, true
	})
	return added, ok
}

func (e *Editor) RemoveExperience(id string) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		out := r.Clone()
		out.Experience = model.RemoveExperience(r.Experience, id)
		return out, len(out.Experience) != len(r.Experience)
	})
}

// PatchExperience updates selected fields of one entry. Setting current
// clears the end date in the same step.
func (e *Editor) PatchExperience(id string, p model.ExperiencePatch) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		list, found := model.PatchExperience(r.Experience, id, p)
		out := r.Clone()
		out.Experience = list
		return out, found
	})
}

func (e *Editor) AddAchievement(id string) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		list, found := model.AddAchievement(r.Experience, id)
		out := r.Clone()
		out.Experience = list
		return out, found
	})
}

// RemoveAchievement keeps at least one achievement slot per entry.
func (e *Editor) RemoveAchievement(id string, index int) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		for _, exp := range r.Experience {
			if exp.ID == id && (len(exp.Achievements) <= 1 || index < 0 || index >= len(exp.Achievements)) {
				return r, false
			}
		}
		list, found := model.RemoveAchievement(r.Experience, id, index)
		out := r.Clone()
		out.Experience = list
		return out, found
	})
}

func (e *Editor) SetAchievement(id string, index int, text string) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		for _, exp := range r.Experience {
			if exp.ID == id && (index < 0 || index >= len(exp.Achievements)) {
				return r, false
			}
		}
		list, found := model.SetAchievement(r.Experience, id, index, text)
		out := r.Clone()
		out.Experience = list
		return out, found
	})
}

func (e *Editor) AddEducation() (model.Education, bool) {
	var added model.Education
	ok := e.edit(func(r model.Resume) (model.Resume, bool) {
		out := r.Clone()
		out.Education, added = model.AddEducation(r.Education)
		return out, true
	})
	return added, ok
}

func (e *Editor) RemoveEducation(id string) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		out := r.Clone()
		out.Education = model.RemoveEducation(r.Education, id)
		return out, len(out.Education) != len(r.Education)
	})
}

func (e *Editor) AddSkill() (model.Skill, bool) {
	var added model.Skill
	ok := e.edit(func(r model.Resume) (model.Resume, bool) {
		out := r.Clone()
		out.Skills, added = model.AddSkill(r.Skills)
		return out, true
	})
	return added, ok
}

func (e *Editor) RemoveSkill(id string) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		out := r.Clone()
		out.Skills = model.RemoveSkill(r.Skills, id)
		return out, len(out.Skills) != len(r.Skills)
	})
}
