package domain

import "time"

// Company owns accounts and carries the balance policy applied to them.
type Company struct {
	ID                   string
	Name                 string
	AllowNegativeBalance bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
