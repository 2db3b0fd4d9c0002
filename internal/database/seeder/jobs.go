package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/job"

	"github.com/google/uuid"
)

// JobsSeeder inserts postings that are not already present, keyed on
// title and company.
type JobsSeeder struct {
	Jobs []job.Job
}

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Seed(ctx context.Context, q database.Querier) (int64, error) {
	if err := EnsureTableColumns(ctx, q, "jobs",
		"id", "title", "company", "location", "description", "required_skills",
		"experience_level", "job_type", "track", "salary", "application_link", "is_active",
	); err != nil {
		return 0, err
	}

	var inserted int64
	for _, j := range s.Jobs {
		if j.ID == uuid.Nil {
			j.ID = uuid.New()
		}
		skills := j.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		n, err := q.Exec(
			ctx,
			`INSERT INTO jobs (id, title, company, location, description, required_skills, experience_level, job_type, track, salary, application_link, is_active)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true
			WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $2 AND company = $3)`,
			j.ID, j.Title, j.Company, j.Location, j.Description, skills,
			string(j.ExperienceLevel), string(j.JobType), string(j.Track), j.Salary, j.ApplicationLink,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert %q: %w", j.Title, err)
		}
		inserted += n
	}
	return inserted, nil
}

func StarterJobs() []job.Job {
	mk := func(title, company, location string, skills []string, exp career.ExperienceLevel, jt career.JobType, track career.Track, salary, desc string) job.Job {
		return job.Job{
			Title:           title,
			Company:         company,
			Location:        location,
			Description:     desc,
			RequiredSkills:  skills,
			ExperienceLevel: exp,
			JobType:         jt,
			Track:           track,
			Salary:          salary,
			IsActive:        true,
		}
	}

	return []job.Job{
		mk("Junior Frontend Developer", "TechStart Inc.", "Remote",
			[]string{"JavaScript", "React", "HTML", "CSS", "Git"},
			career.ExperienceFresher, career.JobTypeFullTime, career.TrackWebDevelopment, "$40,000 - $55,000",
			"Build responsive web applications using modern frameworks."),
		mk("Backend Developer Intern", "DataFlow Systems", "New York, NY",
			[]string{"Node.js", "Express", "MongoDB", "REST API", "JavaScript"},
			career.ExperienceFresher, career.JobTypeInternship, career.TrackWebDevelopment, "$20/hour",
			"Contribute to scalable APIs and microservices."),
		mk("Full Stack Developer", "InnovateTech", "San Francisco, CA",
			[]string{"React", "Node.js", "PostgreSQL", "TypeScript", "Docker"},
			career.ExperienceJunior, career.JobTypeFullTime, career.TrackWebDevelopment, "$65,000 - $85,000",
			"Work across frontend and backend services."),
		mk("Data Analyst Intern", "Analytics Pro", "Remote",
			[]string{"Python", "SQL", "Excel", "Data Visualization", "Statistics"},
			career.ExperienceFresher, career.JobTypeInternship, career.TrackDataScience, "$18/hour",
			"Work with real datasets and learn data visualization."),
		mk("Junior Data Scientist", "ML Solutions", "Boston, MA",
			[]string{"Python", "Machine Learning", "Pandas", "Scikit-learn", "SQL"},
			career.ExperienceJunior, career.JobTypeFullTime, career.TrackDataScience, "$70,000 - $90,000",
			"Machine learning projects and predictive analytics."),
		mk("UI/UX Designer", "DesignHub", "Austin, TX",
			[]string{"Figma", "Adobe XD", "UI Design", "User Research", "Prototyping"},
			career.ExperienceFresher, career.JobTypeFullTime, career.TrackUIUXDesign, "$45,000 - $60,000",
			"Design intuitive user interfaces."),
		mk("Machine Learning Engineer Intern", "AI Innovations", "Remote",
			[]string{"Python", "TensorFlow", "Deep Learning", "Mathematics", "NumPy"},
			career.ExperienceFresher, career.JobTypeInternship, career.TrackMachineLearning, "$25/hour",
			"Train and evaluate deep learning models."),
		mk("WordPress Developer", "WebAgency", "Remote",
			[]string{"WordPress", "PHP", "HTML", "CSS", "JavaScript"},
			career.ExperienceFresher, career.JobTypeFreelance, career.TrackWebDevelopment, "$25-40/hour",
			"Build and maintain client WordPress sites."),
		mk("Content Writer", "ContentKing", "Remote",
			[]string{"Content Writing", "SEO", "Research", "Communication", "Editing"},
			career.ExperienceFresher, career.JobTypePartTime, career.TrackDigitalMarketing, "$20/hour",
			"Write search-optimized articles."),
		mk("iOS Developer", "AppleTech Solutions", "Cupertino, CA",
			[]string{"Swift", "iOS", "Xcode", "UIKit", "SwiftUI"},
			career.ExperienceJunior, career.JobTypeFullTime, career.TrackMobileDevelopment, "$70,000 - $90,000",
			"Ship native iOS applications."),
		mk("Cloud Engineer Intern", "CloudNative", "Remote",
			[]string{"AWS", "Linux", "Networking", "Python", "Cloud Computing"},
			career.ExperienceFresher, career.JobTypeInternship, career.TrackDevOps, "$22/hour",
			"Automate cloud infrastructure."),
		mk("Project Coordinator", "ProjectPro", "Chicago, IL",
			[]string{"Project Management", "Agile", "Communication", "JIRA", "Documentation"},
			career.ExperienceFresher, career.JobTypeFullTime, career.TrackProjectManagement, "$45,000 - $55,000",
			"Coordinate delivery across agile teams."),
		mk("Senior Android Developer", "AndroidMasters", "Mountain View, CA",
			[]string{"Android", "Kotlin", "Java", "MVVM", "Room", "Retrofit", "Firebase"},
			career.ExperienceMid, career.JobTypeFullTime, career.TrackMobileDevelopment, "$125,000 - $155,000",
			"Lead Android feature development."),
		mk("Web Security Engineer", "SecureWeb", "Washington, DC",
			[]string{"Web Security", "OWASP", "Penetration Testing", "Encryption", "XSS"},
			career.ExperienceJunior, career.JobTypeFullTime, career.TrackCybersecurity, "$100,000 - $130,000",
			"Find and fix web application vulnerabilities."),
	}
}
