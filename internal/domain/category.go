package domain

import "time"

type Category struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}
