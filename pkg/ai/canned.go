package ai

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"resume-editor/internal/model"
)

// Fallback is returned for sections without a canned set.
const Fallback = "Enhanced version with improved clarity, impact, and professional language that better showcases your achievements and capabilities."

const DefaultCannedLatency = 1500 * time.Millisecond

var cannedResponses = map[model.Section][]string{
	model.SectionSummary: {
		"Results-driven professional with extensive experience in leading cross-functional teams and delivering innovative solutions that drive business growth and operational excellence.",
		"Dynamic and accomplished professional with a proven track record of transforming complex challenges into strategic opportunities while consistently exceeding performance expectations.",
		"Strategic-minded professional combining technical expertise with exceptional leadership skills to deliver measurable results and foster collaborative team environments.",
	},
	model.SectionExperience: {
		"Spearheaded the development and implementation of cutting-edge solutions, resulting in a 35% increase in operational efficiency and significant cost reduction.",
		"Led cross-functional teams of 10+ members to successfully deliver critical projects ahead of schedule while maintaining the highest quality standards.",
		"Orchestrated strategic initiatives that transformed business processes, leading to enhanced productivity and improved stakeholder satisfaction.",
	},
	model.SectionEducation: {
		"Graduated with honors, demonstrating exceptional academic performance and leadership capabilities through active participation in student organizations and research projects.",
		"Completed rigorous coursework with distinction while contributing to groundbreaking research initiatives that advanced the field of study.",
		"Achieved academic excellence while developing strong analytical and problem-solving skills through comprehensive theoretical and practical learning experiences.",
	},
	model.SectionSkills: {
		"Advanced proficiency with extensive hands-on experience in implementing complex solutions and mentoring team members.",
		"Expert-level capabilities demonstrated through successful project delivery and continuous professional development.",
		"Highly skilled with proven ability to adapt to emerging technologies and industry best practices.",
	},
}

// CannedResponses returns the canned set for section, nil when there is none.
func CannedResponses(section model.Section) []string {
	return append([]string(nil), cannedResponses[section]...)
}

// CannedEnhancer ignores the submitted text and answers with a random
// canned string for the section after a fixed latency.
type CannedEnhancer struct {
	latency time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewCannedEnhancer(latency time.Duration, seed int64) *CannedEnhancer {
	return &CannedEnhancer{latency: latency, rnd: rand.New(rand.NewSource(seed))}
}

// Enhance only fails when ctx ends before the latency elapses.
func (c *CannedEnhancer) Enhance(ctx context.Context, section model.Section, _ string) (string, error) {
	if c.latency > 0 {
		timer := time.NewTimer(c.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	set := cannedResponses[section]
	if len(set) == 0 {
		return Fallback, nil
	}
	c.mu.Lock()
	i := c.rnd.Intn(len(set))
	c.mu.Unlock()
	return set[i], nil
}
