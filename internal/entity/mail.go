package entity

import (
	"database/sql"
	"time"
)

// SendEmailRequest is a row of the outgoing mail queue.
type SendEmailRequest struct {
	ID        int            `db:"id"`
	From      string         `db:"from_email"`
	To        string         `db:"to_email"`
	HTML      string         `db:"html"`
	Subject   string         `db:"subject"`
	ReplyTo   string         `db:"reply_to"`
	Sent      bool           `db:"sent"`
	SentAt    sql.NullTime   `db:"sent_at"`
	Attempts  int            `db:"attempts"`
	LastError sql.NullString `db:"last_error"`
	CreatedAt time.Time      `db:"created_at"`
}
