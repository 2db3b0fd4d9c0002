package matching

import (
	"strings"

	"career-compass/internal/domain/career"
)

// Platform is an external job board worth checking for a posting.
type Platform struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

var (
	generalPlatforms = []Platform{
		{Name: "LinkedIn", URL: "https://www.linkedin.com/jobs/", Description: "Professional networking and job search platform"},
	}
	remotePlatforms = []Platform{
		{Name: "Remote.co", URL: "https://remote.co/remote-jobs/", Description: "Remote job opportunities"},
		{Name: "We Work Remotely", URL: "https://weworkremotely.com/", Description: "Remote jobs in tech and design"},
	}
	internshipPlatforms = []Platform{
		{Name: "Internshala", URL: "https://internshala.com/internships/", Description: "Internship opportunities for students"},
		{Name: "Chegg Internships", URL: "https://www.internships.com/", Description: "Internship listings across various fields"},
	}
	fullTimePlatforms = []Platform{
		{Name: "Indeed", URL: "https://www.indeed.com/", Description: "Comprehensive job search engine"},
		{Name: "Glassdoor", URL: "https://www.glassdoor.com/index.htm", Description: "Job listings with company reviews and salary info"},
	}
	techPlatforms = []Platform{
		{Name: "AngelList", URL: "https://angel.co/jobs", Description: "Startup jobs and networking"},
		{Name: "Stack Overflow Jobs", URL: "https://stackoverflow.com/jobs", Description: "Developer-focused job board"},
	}
)

// SuggestPlatforms returns job boards in a fixed order: general, remote (when
// location mentions "remote"), job-type specific, then the two tech boards.
func SuggestPlatforms(jobType career.JobType, location string) []Platform {
	out := make([]Platform, 0, 7)
	out = append(out, generalPlatforms...)

	if strings.Contains(strings.ToLower(location), "remote") {
		out = append(out, remotePlatforms...)
	}

	switch jobType {
	case career.JobTypeInternship:
		out = append(out, internshipPlatforms...)
	case career.JobTypeFullTime:
		out = append(out, fullTimePlatforms...)
	}

	out = append(out, techPlatforms...)
	return out
}
