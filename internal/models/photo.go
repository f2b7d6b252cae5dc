package models

import "time"

// Photo represents a user-uploaded photo. UserName is a snapshot of the
// owner's name taken at upload time and is not kept in sync afterwards.
type Photo struct {
	ID        int64     `json:"id"`
	Image     string    `json:"image"`
	Title     string    `json:"title"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	Likes     []int64   `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is embedded in a photo. UserName and UserImage are snapshots of
// the commenter's profile at the time the comment was written.
type Comment struct {
	Text      string    `json:"comment"`
	UserID    int64     `json:"userId"`
	UserName  string    `json:"userName"`
	UserImage string    `json:"userImage,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UpdatePhotoRequest struct {
	Title string `json:"title"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}
