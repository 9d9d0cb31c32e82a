package domain

import "time"

type Review struct {
	ID        int32     `json:"id"`
	ItemID    int32     `json:"item_id"`
	UserID    int32     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"` // populated on fetch
	Rating    int32     `json:"rating"`               // 1..5
	Comment   string    `json:"comment"`
	CreatedOn time.Time `json:"created_on"`
}

type Wishlist struct {
	UserID int32  `json:"user_id"`
	Items  []Item `json:"items"`
}
