package entity

// DoctorFilter carries the effective search terms applied to the directory.
// Specialization here is the canonical term (the "physician" alias has
// already been resolved by the search usecase). Empty fields mean no filter.
type DoctorFilter struct {
	Specialization string
	Location       string
}
