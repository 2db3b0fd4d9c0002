package search

// Synonyms maps a normalized career term to alternative spellings commonly
// found in job titles and course descriptions.
var Synonyms = map[string][]string{
	"frontend":         {"front end", "front-end", "ui developer"},
	"front end":        {"frontend", "front-end"},
	"backend":          {"back end", "back-end", "server side"},
	"back end":         {"backend", "back-end"},
	"fullstack":        {"full stack", "full-stack"},
	"full stack":       {"fullstack", "full-stack"},
	"js":               {"javascript"},
	"ts":               {"typescript"},
	"golang":           {"go"},
	"k8s":              {"kubernetes"},
	"ml":               {"machine learning"},
	"ai":               {"artificial intelligence", "machine learning"},
	"ux":               {"user experience", "ui/ux"},
	"ui":               {"user interface", "ui/ux"},
	"devops":           {"dev ops", "site reliability", "sre"},
	"sre":              {"site reliability", "devops"},
	"qa":               {"quality assurance", "tester"},
	"mobile":           {"android", "ios", "flutter"},
	"data science":     {"data scientist", "machine learning"},
	"data engineering": {"data engineer", "etl"},
	"cyber security":   {"cybersecurity", "security"},
	"cybersecurity":    {"cyber security", "security"},
}

func GetSynonyms(query string) []string {
	if query == "" {
		return []string{}
	}
	v, ok := Synonyms[query]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(v))
	out = append(out, v...)
	return out
}
