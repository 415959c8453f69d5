package models

// JobTypes and LocationTypes are the only accepted values for Job.Type and
// Job.LocationType. Validation and the choice lists in the UI both read them
// from here.
var (
	JobTypes = []string{
		"Full-time",
		"Part-time",
		"Contract",
		"Temporary",
		"Internship",
		"Volunteer",
	}

	LocationTypes = []string{
		LocationRemote,
		"On-site",
		"Hybrid",
	}
)

const LocationRemote = "Remote"

func IsJobType(v string) bool {
	return contains(JobTypes, v)
}

func IsLocationType(v string) bool {
	return contains(LocationTypes, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
