package usecase

import (
	"strings"
	"testing"
	"time"

	"resume-editor/internal/model"

	"github.com/stretchr/testify/assert"
)

func codes(notices []Notice) []string {
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.Code)
	}
	return out
}

func TestReviewResume(t *testing.T) {
	testCases := []struct {
		name   string
		resume func() model.Resume
		want   []string
	}{
		{
			name:   "sample is clean",
			resume: func() model.Resume { return model.NewSample(time.Now()) },
			want:   []string{},
		},
		{
			name:   "empty resume",
			resume: func() model.Resume { return model.NewEmpty(time.Now()) },
			want:   []string{"missing_name", "missing_contact"},
		},
		{
			name: "long summary",
			resume: func() model.Resume {
				r := model.NewSample(time.Now())
				r.Summary = strings.Repeat("é", model.SummarySoftLimit+1)
				return r
			},
			want: []string{"summary_too_long"},
		},
		{
			name: "entry problems",
			resume: func() model.Resume {
				r := model.NewSample(time.Now())
				r.Experience = []model.Experience{{ID: "e1", Current: true, EndDate: "2020-01", Achievements: []string{"ok", ""}}}
				r.Education = []model.Education{{ID: "d1"}}
				r.Skills = []model.Skill{{ID: "s1", Level: model.Expert}}
				return r
			},
			want: []string{"current_with_end_date", "missing_role", "blank_achievement", "missing_institution", "blank_skill"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, codes(ReviewResume(tc.resume())))
		})
	}
}

func TestExperienceStage_Missing(t *testing.T) {
	r := model.NewEmpty(time.Now())
	r.Experience = []model.Experience{{ID: "e1", Company: "Acme"}}
	res := ExperienceStage(r)
	assert.Equal(t, []string{"experience.e1"}, res.Missing)
	assert.Equal(t, "e1", res.Notices[0].EntryID)
	assert.Equal(t, model.SectionExperience, res.Notices[0].Section)
}

func TestEditor_Review(t *testing.T) {
	ed, _ := newTestEditor(t, nil, nil)
	ed.StartFromScratch()
	ed.UpdatePersonalInfo(model.PersonalInfo{FullName: "Jane Roe", Phone: "555"})
	assert.Empty(t, ed.Review())
}
