package domain

import (
	"time"

	"github.com/google/uuid"
)

type Motorcycle struct {
	ID        uuid.UUID `json:"id"`
	Year      int       `json:"year"`
	Model     string    `json:"model"`
	Plate     string    `json:"plate"`
	IsRented  bool      `json:"is_rented"`
	CreatedOn time.Time `json:"created_on"`
}
