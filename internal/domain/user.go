package domain

// User is an author of articles and comments. Users are read-only through
// this API; rows are provisioned out of band.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
