package entity

import "time"

// Subcategory subdivide una Category; ambas pertenecen a la misma Company.
type Subcategory struct {
	ID         string
	CompanyID  string
	CategoryID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
