package entity

import "time"

type AnnouncementInsert struct {
	Title    string `db:"title" json:"title" valid:"required"`
	Body     string `db:"body" json:"body" valid:"required"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

type Announcement struct {
	ID int `db:"id" json:"id"`
	AnnouncementInsert
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ResourceInsert struct {
	Title       string  `db:"title" json:"title" valid:"required"`
	Description *string `db:"description" json:"description,omitempty"`
	FileURL     string  `db:"file_url" json:"file_url"`
	ContentType string  `db:"content_type" json:"content_type"`
}

// Resource is a downloadable file (sell sheets, price lists) shared with retailers.
type Resource struct {
	ID int `db:"id" json:"id"`
	ResourceInsert
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type SampleRequestInsert struct {
	RetailerID int     `db:"retailer_id" json:"retailer_id"`
	Products   string  `db:"products" json:"products" valid:"required"`
	Notes      *string `db:"notes" json:"notes,omitempty"`
}

type SampleRequest struct {
	ID int `db:"id" json:"id"`
	SampleRequestInsert
	Handled   bool      `db:"handled" json:"handled"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MessageSender tells who wrote a message in a retailer thread.
type MessageSender string

const (
	SenderRetailer MessageSender = "retailer"
	SenderVendor   MessageSender = "vendor"
)

type Message struct {
	ID         int           `db:"id" json:"id"`
	RetailerID int           `db:"retailer_id" json:"retailer_id"`
	Sender     MessageSender `db:"sender" json:"sender"`
	Body       string        `db:"body" json:"body"`
	ReadAt     *time.Time    `db:"read_at" json:"read_at,omitempty"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}
