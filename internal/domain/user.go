package domain

import (
	"regexp"
	"strings"
)

const maxNameLen = 50

var emailRx = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// User is a guest account. The password is only ever held as an opaque hash;
// hashing itself happens in the auth module.
type User struct {
	Base
	FirstName    string `json:"first_name" gorm:"column:first_name"`
	LastName     string `json:"last_name" gorm:"column:last_name"`
	Email        string `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	IsAdmin      bool   `json:"is_admin" gorm:"column:is_admin"`
}

func (User) TableName() string { return "users" }

func NewUser(firstName, lastName, email, passwordHash string, isAdmin bool) (*User, error) {
	u := &User{Base: newBase(), IsAdmin: isAdmin}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetPasswordHash(passwordHash); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetFirstName(name string) error {
	if name == "" {
		return invalidf("first name must not be empty")
	}
	if len(name) > maxNameLen {
		return invalidf("first name must not exceed %d characters", maxNameLen)
	}
	u.FirstName = name
	u.touch()
	return nil
}

func (u *User) SetLastName(name string) error {
	if name == "" {
		return invalidf("last name must not be empty")
	}
	if len(name) > maxNameLen {
		return invalidf("last name must not exceed %d characters", maxNameLen)
	}
	u.LastName = name
	u.touch()
	return nil
}

// SetEmail normalizes the address to lower case so that uniqueness checks and
// lookups can compare it directly.
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRx.MatchString(email) {
		return invalidf("email %q is not a valid address", email)
	}
	u.Email = email
	u.touch()
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return invalidf("password hash must not be empty")
	}
	u.PasswordHash = hash
	u.touch()
	return nil
}

func (u *User) SetIsAdmin(admin bool) {
	u.IsAdmin = admin
	u.touch()
}
