package domain

import "time"

// Client represents a managed-services customer. Bookings and visit tasks
// reference the client record; names are kept in both Arabic and English.
type Client struct {
	ID     int64
	NameAr string
	NameEn string
	Phone  string
	Email  *string

	IsActive  bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the Arabic name, falling back to the English one
func (c *Client) DisplayName() string {
	if c.NameAr != "" {
		return c.NameAr
	}
	return c.NameEn
}
