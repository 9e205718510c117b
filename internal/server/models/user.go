package models

// User is an account row. PasswordHash never leaves the server: the JSON
// projection omits it.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	PasswordHash   []byte `json:"-"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	Bio            string `json:"bio"`
	Age            int    `json:"age"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profilePicture"`
}

// ProfileUpdate carries the fields a user may change after registration.
type ProfileUpdate struct {
	Bio            string `json:"bio"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profilePicture"`
}
