package seeder

func Defaults() []Seeder {
	return []Seeder{
		JobsSeeder{Jobs: StarterJobs()},
		ResourcesSeeder{Resources: StarterResources()},
	}
}
