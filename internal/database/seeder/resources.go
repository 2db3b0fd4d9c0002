package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/resource"

	"github.com/google/uuid"
)

// ResourcesSeeder inserts learning resources keyed on URL.
type ResourcesSeeder struct {
	Resources []resource.LearningResource
}

func (ResourcesSeeder) Name() string { return "learning_resources" }

func (s ResourcesSeeder) Seed(ctx context.Context, q database.Querier) (int64, error) {
	if err := EnsureTableColumns(ctx, q, "learning_resources",
		"id", "title", "platform", "url", "description", "related_skills",
		"cost", "duration", "difficulty", "track", "rating",
	); err != nil {
		return 0, err
	}

	var inserted int64
	for _, r := range s.Resources {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		skills := r.RelatedSkills
		if skills == nil {
			skills = []string{}
		}
		n, err := q.Exec(
			ctx,
			`INSERT INTO learning_resources (id, title, platform, url, description, related_skills, cost, duration, difficulty, track, rating)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			WHERE NOT EXISTS (SELECT 1 FROM learning_resources WHERE url = $4)`,
			r.ID, r.Title, string(r.Platform), r.URL, r.Description, skills,
			string(r.Cost), r.Duration, string(r.Difficulty), string(r.Track), r.Rating,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert %q: %w", r.Title, err)
		}
		inserted += n
	}
	return inserted, nil
}

func StarterResources() []resource.LearningResource {
	mk := func(title string, platform career.Platform, url string, skills []string, cost career.Cost, duration string, diff career.Difficulty, track career.Track, rating float64) resource.LearningResource {
		return resource.LearningResource{
			Title:         title,
			Platform:      platform,
			URL:           url,
			RelatedSkills: skills,
			Cost:          cost,
			Duration:      duration,
			Difficulty:    diff,
			Track:         track,
			Rating:        rating,
		}
	}

	return []resource.LearningResource{
		mk("The Complete JavaScript Course", career.PlatformUdemy, "https://www.udemy.com/course/the-complete-javascript-course/",
			[]string{"JavaScript", "ES6", "Web Development"}, career.CostPaid, "69 hours", career.DifficultyBeginner, career.TrackWebDevelopment, 4.7),
		mk("React - The Complete Guide", career.PlatformUdemy, "https://www.udemy.com/course/react-the-complete-guide/",
			[]string{"React", "JavaScript", "Redux", "Frontend"}, career.CostPaid, "48 hours", career.DifficultyIntermediate, career.TrackWebDevelopment, 4.6),
		mk("freeCodeCamp Full Stack Curriculum", career.PlatformFreeCodeCamp, "https://www.freecodecamp.org/",
			[]string{"HTML", "CSS", "JavaScript", "React", "Node.js", "MongoDB"}, career.CostFree, "300+ hours", career.DifficultyBeginner, career.TrackWebDevelopment, 4.8),
		mk("Python for Everybody", career.PlatformCoursera, "https://www.coursera.org/specializations/python",
			[]string{"Python", "Programming", "Data Analysis"}, career.CostFreemium, "8 months", career.DifficultyBeginner, career.TrackDataScience, 4.8),
		mk("Machine Learning Specialization", career.PlatformCoursera, "https://www.coursera.org/learn/machine-learning",
			[]string{"Machine Learning", "Python", "Statistics", "AI"}, career.CostFreemium, "60 hours", career.DifficultyIntermediate, career.TrackMachineLearning, 4.9),
		mk("Node.js Tutorial for Beginners", career.PlatformYouTube, "https://www.youtube.com/watch?v=TlB_eWDSMt4",
			[]string{"Node.js", "Express", "MongoDB", "REST API"}, career.CostFree, "6 hours", career.DifficultyBeginner, career.TrackWebDevelopment, 4.5),
		mk("SQL for Data Science", career.PlatformCoursera, "https://www.coursera.org/learn/sql-for-data-science",
			[]string{"SQL", "Data Analysis", "Database"}, career.CostFreemium, "15 hours", career.DifficultyBeginner, career.TrackDataScience, 4.6),
		mk("Google UX Design Certificate", career.PlatformCoursera, "https://www.coursera.org/professional-certificates/google-ux-design",
			[]string{"UI Design", "UX Design", "Figma", "User Research", "Prototyping"}, career.CostPaid, "6 months", career.DifficultyBeginner, career.TrackUIUXDesign, 4.7),
		mk("React Native - The Practical Guide", career.PlatformUdemy, "https://www.udemy.com/course/react-native-the-practical-guide/",
			[]string{"React Native", "Mobile Development", "JavaScript", "iOS", "Android"}, career.CostPaid, "28 hours", career.DifficultyIntermediate, career.TrackMobileDevelopment, 4.6),
		mk("Digital Marketing Specialization", career.PlatformCoursera, "https://www.coursera.org/specializations/digital-marketing",
			[]string{"Digital Marketing", "SEO", "Social Media", "Content Marketing", "Analytics"}, career.CostPaid, "8 months", career.DifficultyBeginner, career.TrackDigitalMarketing, 4.5),
		mk("AWS Certified Cloud Practitioner", career.PlatformUdemy, "https://www.udemy.com/course/aws-certified-cloud-practitioner-new/",
			[]string{"AWS", "Cloud Computing", "DevOps"}, career.CostPaid, "14 hours", career.DifficultyBeginner, career.TrackDevOps, 4.7),
		mk("Docker and Kubernetes: The Complete Guide", career.PlatformUdemy, "https://www.udemy.com/course/docker-and-kubernetes-the-complete-guide/",
			[]string{"Docker", "Kubernetes", "CI/CD", "DevOps"}, career.CostPaid, "22 hours", career.DifficultyIntermediate, career.TrackDevOps, 4.6),
		mk("TypeScript Handbook", career.PlatformOther, "https://www.typescriptlang.org/docs/handbook/intro.html",
			[]string{"TypeScript", "JavaScript"}, career.CostFree, "10 hours", career.DifficultyIntermediate, career.TrackWebDevelopment, 4.6),
		mk("Git and GitHub for Beginners", career.PlatformYouTube, "https://www.youtube.com/watch?v=RGOj5yH7evk",
			[]string{"Git", "GitHub", "Version Control"}, career.CostFree, "1 hour", career.DifficultyBeginner, career.TrackOther, 4.7),
	}
}
