package domain

// Topic is a named category that articles are filed under. The slug doubles
// as the topic's identifier; topics are never updated or deleted through
// the API once created.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
