package domain

import "time"

// DefaultArticleImgURL is applied by the articles table when a new article
// omits article_img_url.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article is a posted piece of content filed under a topic and attributed
// to a user. Votes is a running total mutated only by relative increments
// and may go negative.
//
// CommentCount is derived at read time from the comments table and is
// serialized as a numeric-looking string to match the wire format the API
// has always produced. It is empty (and omitted) on results of operations
// that do not compute it, such as vote updates.
//
// Body is likewise omitted when empty: list results never read it, so
// only the single-article operations carry a body key.
type Article struct {
	ArticleID     int       `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	Body          string    `json:"body,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  string    `json:"comment_count,omitempty"`
}
