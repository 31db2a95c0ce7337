package models

// User is the minimal dev-mode identity: any non-empty username/password
// pair logs in, and the user id is simply the username.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
