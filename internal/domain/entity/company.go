package entity

import "time"

// Company representa una organización/tenant del sistema. Es la frontera de
// aislamiento: ningún principal accede a registros de otra Company.
type Company struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
