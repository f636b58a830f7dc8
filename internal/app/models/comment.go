package models

import "time"

// Comment is owned by exactly one parent resource or event and is deleted
// with it.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

func cloneComments(comments []Comment) []Comment {
	if comments == nil {
		return nil
	}
	return append([]Comment(nil), comments...)
}
