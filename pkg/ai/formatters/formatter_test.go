package formatters

import (
	"testing"

	"resume-editor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "json object", input: `{"text": "Seasoned engineer."}`, want: "Seasoned engineer."},
		{name: "fenced json", input: "```json{\"text\": \"Seasoned engineer.\"}```", want: "Seasoned engineer."},
		{name: "prose around json", input: `Sure! {"text":"Led teams."} Hope it helps`, want: "Led teams."},
		{name: "plain text", input: `  "Built things that matter."  `, want: "Built things that matter."},
		{name: "empty", input: "   ", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatter_Prompt(t *testing.T) {
	p := New(model.SectionExperience, "").Prompt("Dev at Acme: wrote code")
	assert.Contains(t, p, "Enhance resume section:")
	assert.Contains(t, p, `"section":"experience"`)
	assert.Contains(t, p, "Dev at Acme: wrote code")
	assert.Contains(t, p, "english")

	p = New(model.Section("hobbies"), "portuguese").Prompt("chess")
	assert.Contains(t, p, "portuguese")
	assert.Contains(t, p, "Improve clarity")
}
