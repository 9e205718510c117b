package models

import "time"

type Comment struct {
	ID        int64     `json:"comment_id"`
	ProductID int64     `json:"product_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"comment_text"`
	CreatedAt time.Time `json:"comment_date"`
}
