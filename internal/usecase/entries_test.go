package usecase

import (
	"testing"

	"resume-editor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_Achievements(t *testing.T) {
	ed, _ := newTestEditor(t, nil, nil)
	ed.StartFromScratch()
	exp, _ := ed.AddExperience()
	require.Equal(t, []string{""}, exp.Achievements)

	testCases := []struct {
		name   string
		edit   func() bool
		wantOK bool
		want   []string
	}{
		{
			name:   "last slot cannot be removed",
			edit:   func() bool { return ed.RemoveAchievement(exp.ID, 0) },
			wantOK: false,
			want:   []string{""},
		},
		{
			name:   "set first",
			edit:   func() bool { return ed.SetAchievement(exp.ID, 0, "Cut latency") },
			wantOK: true,
			want:   []string{"Cut latency"},
		},
		{
			name:   "add slot",
			edit:   func() bool { return ed.AddAchievement(exp.ID) },
			wantOK: true,
			want:   []string{"Cut latency", ""},
		},
		{
			name:   "set out of range",
			edit:   func() bool { return ed.SetAchievement(exp.ID, 5, "nope") },
			wantOK: false,
			want:   []string{"Cut latency", ""},
		},
		{
			name:   "unknown entry",
			edit:   func() bool { return ed.AddAchievement("missing") },
			wantOK: false,
			want:   []string{"Cut latency", ""},
		},
		{
			name:   "remove first",
			edit:   func() bool { return ed.RemoveAchievement(exp.ID, 0) },
			wantOK: true,
			want:   []string{""},
		},
	}
	// steps build on each other
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOK, tc.edit())
			r, _ := ed.Resume()
			assert.Equal(t, tc.want, r.Experience[0].Achievements)
		})
	}
}

func TestEditor_EducationEntries(t *testing.T) {
	ed, _ := newTestEditor(t, nil, nil)
	ed.StartFromScratch()
	first, ok := ed.AddEducation()
	require.True(t, ok)
	second, _ := ed.AddEducation()

	assert.True(t, ed.RemoveEducation(first.ID))
	assert.False(t, ed.RemoveEducation("missing"))
	r, _ := ed.Resume()
	require.Len(t, r.Education, 1)
	assert.Equal(t, second.ID, r.Education[0].ID)
}

func TestEditor_SkillEntries(t *testing.T) {
	ed, _ := newTestEditor(t, nil, nil)
	ed.StartFromScratch()
	skill, ok := ed.AddSkill()
	require.True(t, ok)
	assert.Equal(t, model.Intermediate, skill.Level)
	assert.Equal(t, model.DefaultSkillCategory, skill.Category)

	assert.True(t, ed.RemoveSkill(skill.ID))
	r, _ := ed.Resume()
	assert.Empty(t, r.Skills)
}

func TestEditor_EntriesWithoutDocument(t *testing.T) {
	ed, _ := newTestEditor(t, nil, nil)

	_, ok := ed.AddExperience()
	assert.False(t, ok)
	_, ok = ed.AddEducation()
	assert.False(t, ok)
	_, ok = ed.AddSkill()
	assert.False(t, ok)
	assert.False(t, ed.RemoveExperience("x"))
	assert.False(t, ed.AddAchievement("x"))
}
