package models

import "strings"

// User is the singleton profile owner of a browser profile.
type User struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Initial is the avatar letter: first letter of the name, else of the email, upper-cased.
func (u User) Initial() string {
	src := strings.TrimSpace(u.Name)
	if src == "" {
		src = strings.TrimSpace(u.Email)
	}
	if src == "" {
		src = "A"
	}
	for _, r := range src {
		return strings.ToUpper(string(r))
	}
	return "A"
}
