package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"React", "react", true},
		{"React", "ReactJS", true},
		{"ReactJS", "React", true},
		{"C", "C++", true},
		{"Go", "MongoDB", true},
		{"JS", "JavaScript", false},
		{"Python", "Java", false},
		{"node.js", "Node.JS", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillsMatch(tt.a, tt.b))
			assert.Equal(t, tt.want, SkillsMatch(tt.b, tt.a))
		})
	}
}

func TestTagCoversSkill_IsOneDirectional(t *testing.T) {
	assert.True(t, TagCoversSkill("React Hooks", "react"))
	assert.False(t, TagCoversSkill("React", "React Hooks"))
}

func TestCleanSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, CleanSkills([]string{" Go ", "", "   ", "SQL"}))
	assert.Empty(t, CleanSkills(nil))
}
