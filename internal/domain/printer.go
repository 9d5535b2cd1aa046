package domain

import (
	"time"

	"github.com/google/uuid"
)

// Printer representa uma impressora cadastrada para sincronização dos NeoPDVs
type Printer struct {
	ID           uuid.UUID `json:"id"`
	SerialNumber string    `json:"serial_number"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
