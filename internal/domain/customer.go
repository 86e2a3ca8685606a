package domain

import "time"

type Customer struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	DateBirth time.Time `json:"dateBirth"`
	Email     string    `json:"email"`
}
