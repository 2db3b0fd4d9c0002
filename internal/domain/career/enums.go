// Package career holds the closed vocabularies shared by users, jobs and
// learning resources. Values are stored and serialized verbatim.
package career

type Track string

const (
	TrackWebDevelopment    Track = "Web Development"
	TrackMobileDevelopment Track = "Mobile Development"
	TrackDataScience       Track = "Data Science"
	TrackMachineLearning   Track = "Machine Learning"
	TrackUIUXDesign        Track = "UI/UX Design"
	TrackDigitalMarketing  Track = "Digital Marketing"
	TrackDevOps            Track = "DevOps"
	TrackCybersecurity     Track = "Cybersecurity"
	TrackProjectManagement Track = "Project Management"
	TrackOther             Track = "Other"
)

var tracks = []Track{
	TrackWebDevelopment,
	TrackMobileDevelopment,
	TrackDataScience,
	TrackMachineLearning,
	TrackUIUXDesign,
	TrackDigitalMarketing,
	TrackDevOps,
	TrackCybersecurity,
	TrackProjectManagement,
	TrackOther,
}

func Tracks() []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}

func (t Track) Valid() bool {
	for _, v := range tracks {
		if v == t {
			return true
		}
	}
	return false
}

// ExperienceLevel is totally ordered: Fresher < Junior < Mid.
type ExperienceLevel string

const (
	ExperienceFresher ExperienceLevel = "Fresher"
	ExperienceJunior  ExperienceLevel = "Junior"
	ExperienceMid     ExperienceLevel = "Mid"
)

var experienceLevels = []ExperienceLevel{ExperienceFresher, ExperienceJunior, ExperienceMid}

func ExperienceLevels() []ExperienceLevel {
	out := make([]ExperienceLevel, len(experienceLevels))
	copy(out, experienceLevels)
	return out
}

// Rank returns the position of the level in the ordering, or false when the
// value is not one of the known levels.
func (e ExperienceLevel) Rank() (int, bool) {
	for i, v := range experienceLevels {
		if v == e {
			return i, true
		}
	}
	return -1, false
}

func (e ExperienceLevel) Valid() bool {
	_, ok := e.Rank()
	return ok
}

type JobType string

const (
	JobTypeInternship JobType = "Internship"
	JobTypePartTime   JobType = "Part-time"
	JobTypeFullTime   JobType = "Full-time"
	JobTypeFreelance  JobType = "Freelance"
)

func (j JobType) Valid() bool {
	switch j {
	case JobTypeInternship, JobTypePartTime, JobTypeFullTime, JobTypeFreelance:
		return true
	}
	return false
}

type Cost string

const (
	CostFree     Cost = "Free"
	CostPaid     Cost = "Paid"
	CostFreemium Cost = "Freemium"
)

func (c Cost) Valid() bool {
	switch c {
	case CostFree, CostPaid, CostFreemium:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Platform is where a learning resource is hosted.
type Platform string

const (
	PlatformYouTube          Platform = "YouTube"
	PlatformCoursera         Platform = "Coursera"
	PlatformUdemy            Platform = "Udemy"
	PlatformEdX              Platform = "edX"
	PlatformFreeCodeCamp     Platform = "freeCodeCamp"
	PlatformLinkedInLearning Platform = "LinkedIn Learning"
	PlatformPluralsight      Platform = "Pluralsight"
	PlatformKhanAcademy      Platform = "Khan Academy"
	PlatformOther            Platform = "Other"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformCoursera, PlatformUdemy, PlatformEdX, PlatformFreeCodeCamp,
		PlatformLinkedInLearning, PlatformPluralsight, PlatformKhanAcademy, PlatformOther:
		return true
	}
	return false
}

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "High School"
	EducationDiploma    EducationLevel = "Diploma"
	EducationBachelor   EducationLevel = "Bachelor"
	EducationMaster     EducationLevel = "Master"
	EducationPhD        EducationLevel = "PhD"
	EducationOther      EducationLevel = "Other"
)

func (e EducationLevel) Valid() bool {
	switch e {
	case EducationHighSchool, EducationDiploma, EducationBachelor, EducationMaster, EducationPhD, EducationOther:
		return true
	}
	return false
}
