package matching

import "strings"

// SkillsMatch reports whether two skill strings match under the
// bidirectional substring rule: after lowercasing, either one contains the
// other. "React" matches "ReactJS" and "C" matches "C++", while "JS" does not
// match "JavaScript". Callers trim entries first.
func SkillsMatch(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// TagCoversSkill is the one-directional variant used for gap lookups: the
// resource tag must contain the missing skill, case-insensitively.
func TagCoversSkill(tag, skill string) bool {
	return strings.Contains(strings.ToLower(tag), strings.ToLower(skill))
}

// CleanSkills trims entries and drops blank ones. An empty string would
// otherwise match every skill under SkillsMatch.
func CleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func anySkillMatches(skill string, candidates []string) bool {
	for _, c := range candidates {
		if SkillsMatch(c, skill) {
			return true
		}
	}
	return false
}
