package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_ApplyDoesNotMutate(t *testing.T) {
	r := NewSample(time.Now())
	before := r.Clone()

	updates := []Update{
		SetPersonalInfo{Info: PersonalInfo{FullName: "Jane Roe"}},
		SetSummary{Text: "new summary"},
		SetExperience{Entries: nil},
		SetEducation{Entries: nil},
		SetSkills{Entries: nil},
	}
	for _, u := range updates {
		t.Run(string(u.Section()), func(t *testing.T) {
			out := u.Apply(r)
			assert.False(t, out.Equal(r))
			assert.True(t, r.Equal(before))
		})
	}
}

func TestSetExperience_Normalizes(t *testing.T) {
	r := NewEmpty(time.Now())
	out := SetExperience{Entries: []Experience{
		{ID: "a", Company: "Acme", Current: true, EndDate: "2024-01"},
		{ID: "a", Company: "Dup"},
		{Company: "Blank"},
	}}.Apply(r)

	require.Len(t, out.Experience, 3)
	assert.Equal(t, "a", out.Experience[0].ID)
	assert.Empty(t, out.Experience[0].EndDate)
	assert.NotEqual(t, "a", out.Experience[1].ID)
	assert.NotEmpty(t, out.Experience[2].ID)
	assert.NotEqual(t, out.Experience[1].ID, out.Experience[2].ID)
}

func TestSetSkills_DefaultLevel(t *testing.T) {
	out := SetSkills{Entries: []Skill{{ID: "s", Name: "Go"}}}.Apply(NewEmpty(time.Now()))
	assert.Equal(t, Intermediate, out.Skills[0].Level)
}

func TestExperienceListOps(t *testing.T) {
	var list []Experience
	list, first := AddExperience(list)
	list, second := AddExperience(list)
	require.Len(t, list, 2)
	assert.Equal(t, []string{""}, first.Achievements)

	remaining := RemoveExperience(list, first.ID)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].ID)
	assert.Len(t, list, 2)
}

func TestPatchExperience(t *testing.T) {
	list := []Experience{
		{ID: "a", Company: "Acme", Position: "Dev", EndDate: "2023-05", Achievements: []string{"x"}},
		{ID: "b", Company: "Other"},
	}
	yes := true
	title := "Lead"
	testCases := []struct {
		name  string
		id    string
		patch ExperiencePatch
		found bool
		check func(t *testing.T, out []Experience)
	}{
		{
			name:  "current clears end date",
			id:    "a",
			patch: ExperiencePatch{Current: &yes},
			found: true,
			check: func(t *testing.T, out []Experience) {
				assert.True(t, out[0].Current)
				assert.Empty(t, out[0].EndDate)
				assert.Equal(t, "Acme", out[0].Company)
				assert.Equal(t, []string{"x"}, out[0].Achievements)
			},
		},
		{
			name:  "single field",
			id:    "a",
			patch: ExperiencePatch{Position: &title},
			found: true,
			check: func(t *testing.T, out []Experience) {
				assert.Equal(t, "Lead", out[0].Position)
				assert.Equal(t, "2023-05", out[0].EndDate)
				assert.Equal(t, list[1].ID, out[1].ID)
				assert.Equal(t, list[1].Company, out[1].Company)
			},
		},
		{
			name:  "unknown id",
			id:    "zzz",
			patch: ExperiencePatch{Position: &title},
			check: func(t *testing.T, out []Experience) {
				assert.Equal(t, "Dev", out[0].Position)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, found := PatchExperience(list, tc.id, tc.patch)
			assert.Equal(t, tc.found, found)
			tc.check(t, out)
			assert.Equal(t, "Dev", list[0].Position)
		})
	}
}

func TestAchievementOps(t *testing.T) {
	list := []Experience{{ID: "a", Achievements: []string{"one"}}}

	list, ok := AddAchievement(list, "a")
	require.True(t, ok)
	assert.Equal(t, []string{"one", ""}, list[0].Achievements)

	list, ok = SetAchievement(list, "a", 1, "two")
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two"}, list[0].Achievements)

	trimmed, ok := RemoveAchievement(list, "a", 0)
	require.True(t, ok)
	assert.Equal(t, []string{"two"}, trimmed[0].Achievements)
	assert.Equal(t, []string{"one", "two"}, list[0].Achievements)

	trimmed, _ = RemoveAchievement(trimmed, "a", 0)
	assert.Empty(t, trimmed[0].Achievements)

	_, ok = AddAchievement(list, "missing")
	assert.False(t, ok)
}

func TestEducationAndSkillOps(t *testing.T) {
	edu, e := AddEducation(nil)
	require.Len(t, edu, 1)
	assert.Empty(t, RemoveEducation(edu, e.ID))

	skills, s := AddSkill(nil)
	assert.Equal(t, Intermediate, s.Level)
	assert.Equal(t, DefaultSkillCategory, s.Category)
	skills, s2 := AddSkill(skills)
	left := RemoveSkill(skills, s.ID)
	require.Len(t, left, 1)
	assert.Equal(t, s2.ID, left[0].ID)
}
