package models

import "strings"

// User is the projection of a marketplace account. It never carries the
// password: credentials are write-only and travel in Registration/Credentials.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	Surname        string `json:"surname,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Age            int    `json:"age,omitempty"`
	Address        string `json:"address,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// DisplayName prefers "Name Surname" and falls back to the username.
func (u User) DisplayName() string {
	full := strings.TrimSpace(u.Name + " " + u.Surname)
	if full == "" {
		return u.Username
	}
	return full
}

// Registration is the payload of POST /users/register.
type Registration struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Age      int    `json:"age"`
	Address  string `json:"address,omitempty"`
}

// Validate checks the fields the server requires.
func (r Registration) Validate() error {
	v := &ValidationError{}
	v.require("username", r.Username)
	v.require("email", r.Email)
	v.require("password", r.Password)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		v.add("email", "must be an email address")
	}
	if r.Age < 0 {
		v.add("age", "must not be negative")
	}
	return v.orNil()
}

// Credentials is the payload of POST /users/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	v := &ValidationError{}
	v.require("email", c.Email)
	v.require("password", c.Password)
	return v.orNil()
}

// ProfileUpdate is the payload of PUT /users/{id}. Only these three fields
// are editable from the client.
type ProfileUpdate struct {
	Bio            string `json:"bio"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profilePicture"`
}

// ProfileUpdateFrom seeds an update with the user's current values.
func ProfileUpdateFrom(u User) ProfileUpdate {
	return ProfileUpdate{Bio: u.Bio, Address: u.Address, ProfilePicture: u.ProfilePicture}
}
