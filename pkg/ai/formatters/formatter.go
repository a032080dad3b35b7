package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resume-editor/internal/model"
)

const defaultLanguage = "english"

// Formatter builds the chat prompt for one section and reads the reply.
type Formatter struct {
	Section  model.Section
	Language string
}

func New(section model.Section, language string) Formatter {
	if language == "" {
		language = defaultLanguage
	}
	return Formatter{Section: section, Language: language}
}

func (f Formatter) instructions() string {
	var base string
	switch f.Section {
	case model.SectionSummary:
		base = summaryInstructions
	case model.SectionPersonalInfo:
		base = personalInfoInstructions
	case model.SectionExperience:
		base = experienceInstructions
	case model.SectionEducation:
		base = educationInstructions
	case model.SectionSkills:
		base = skillsInstructions
	default:
		base = genericInstructions
	}
	return fmt.Sprintf("LANGUAGE: You MUST write the result in %s.\n\n%s\n\n%s", f.Language, base, replyContract)
}

// Prompt returns the chat input for text.
func (f Formatter) Prompt(text string) string {
	userCtx := map[string]interface{}{
		"section":      string(f.Section),
		"text":         text,
		"instructions": f.instructions(),
	}
	return "Enhance resume section:\n" + mustMarshal(userCtx)
}

const replyContract = `Return ONLY a single JSON object {"text": "<replacement>"} and NOTHING ELSE. No markdown, no code fences.`

// Parse extracts the replacement text from a model reply. Replies that
// wrap the JSON object in prose or fences are tolerated, and a reply that
// is not JSON at all is used verbatim once fences and quotes are removed.
func Parse(output string) (string, error) {
	s := strings.TrimSpace(output)
	var reply struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(s), &reply); err == nil && reply.Text != "" {
		return strings.TrimSpace(reply.Text), nil
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(s[start:end+1]), &reply); err == nil && reply.Text != "" {
			return strings.TrimSpace(reply.Text), nil
		}
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(strings.TrimSpace(s), `"`)
	if s == "" {
		return "", fmt.Errorf("ai reply for section has no text")
	}
	return s, nil
}

func mustMarshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
