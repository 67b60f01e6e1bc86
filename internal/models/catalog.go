package models

// Department represents a surgical department offered on the platform.
type Department struct {
	Name          string `json:"name"`
	AilmentsCount int    `json:"ailmentsCount"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

// Surgery represents a popular surgery/ailment patients can browse.
type Surgery struct {
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
}

// HealthConcern is a common complaint shown on the landing catalog.
type HealthConcern struct {
	Name string `json:"name"`
}
