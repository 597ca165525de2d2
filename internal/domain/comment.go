package domain

import "time"

// Comment is a reply attached to an article. Comments are deleted along
// with their article by the database's referential cascade.
type Comment struct {
	CommentID int       `json:"comment_id"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}
