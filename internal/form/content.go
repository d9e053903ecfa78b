package form

import (
	"net/http"
	"strings"

	"github.com/jekabolt/wholesale-portal/internal/entity"
)

const maxMessageLength = 5000

type AnnouncementRequest struct {
	entity.AnnouncementInsert
}

func (f *AnnouncementRequest) Bind(r *http.Request) error {
	f.Title = strings.TrimSpace(f.Title)
	f.Body = strings.TrimSpace(f.Body)
	return ValidateStruct(f)
}

// ResourceRequest updates resource metadata; files are uploaded separately.
type ResourceRequest struct {
	Title       string  `json:"title" valid:"required,stringlength(1|200)"`
	Description *string `json:"description,omitempty" valid:"-"`
}

func (f *ResourceRequest) Bind(r *http.Request) error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = trimPtr(f.Description)
	return ValidateStruct(f)
}

type SampleRequestRequest struct {
	Products string  `json:"products" valid:"required,stringlength(1|1000)"`
	Notes    *string `json:"notes,omitempty" valid:"-"`
}

func (f *SampleRequestRequest) Bind(r *http.Request) error {
	f.Products = strings.TrimSpace(f.Products)
	f.Notes = trimPtr(f.Notes)
	return ValidateStruct(f)
}

type MessageRequest struct {
	Body string `json:"body" valid:"required"`
}

func (f *MessageRequest) Bind(r *http.Request) error {
	f.Body = strings.TrimSpace(f.Body)
	if err := ValidateStruct(f); err != nil {
		return err
	}
	if len(f.Body) > maxMessageLength {
		return badRequest("message is too long")
	}
	return nil
}
