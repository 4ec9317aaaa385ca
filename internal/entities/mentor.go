// Package entities contains core business entities.
package entities

import "time"

// Mentor is a person appointments are assigned to. Mentors are seeded out-of-band.
type Mentor struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
