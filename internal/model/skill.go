package model

import (
	"encoding/json"
	"fmt"
)

type SkillLevel string

const (
	Beginner     SkillLevel = "Beginner"
	Intermediate SkillLevel = "Intermediate"
	Advanced     SkillLevel = "Advanced"
	Expert       SkillLevel = "Expert"
)

// SkillLevels lists the levels in ascending order.
var SkillLevels = []SkillLevel{Beginner, Intermediate, Advanced, Expert}

const DefaultSkillCategory = "Technical"

// SkillCategories are the suggested categories. Category stays free text.
var SkillCategories = []string{"Technical", "Programming", "Design", "Management", "Communication", "Other"}

func (l SkillLevel) Valid() bool {
	for _, v := range SkillLevels {
		if l == v {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts the four known levels and the empty string.
func (l *SkillLevel) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := SkillLevel(s)
	if v != "" && !v.Valid() {
		return fmt.Errorf("unknown skill level %q", s)
	}
	*l = v
	return nil
}

// SkillGroup is one category bucket of GroupSkillsByCategory.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// GroupSkillsByCategory buckets skills by category. Groups appear in the
// order their category is first seen, skills keep insertion order.
func GroupSkillsByCategory(skills []Skill) []SkillGroup {
	idx := map[string]int{}
	var groups []SkillGroup
	for _, s := range skills {
		i, ok := idx[s.Category]
		if !ok {
			i = len(groups)
			idx[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
