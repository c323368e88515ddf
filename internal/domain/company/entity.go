package company

import "time"

// Company is the single organisation a deployment serves.
type Company struct {
	ID        int64     `json:"company_id"`
	Name      string    `json:"name"`
	Prefix    string    `json:"prefix"`
	CreatedAt time.Time `json:"created_at"`
}
