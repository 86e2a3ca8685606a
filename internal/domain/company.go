package domain

// Company is a car manufacturer/rental company. Names are unique
// case-insensitively across all companies.
type Company struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// CompanyRef is the denormalized company embedded in car responses.
type CompanyRef struct {
	ID   int32  `json:"id"`
	Name string `json:"name,omitempty"`
}
