package user

import "time"

type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// CreateRequest is the body accepted by POST /users. Fields not listed here
// are ignored.
type CreateRequest struct {
	FirstName    *string `json:"firstName" validate:"required,min=1,notblank" msg_required:"A first name is required" msg_min:"Please provide a first name" msg_notblank:"Please provide a first name"`
	LastName     *string `json:"lastName" validate:"required,min=1,notblank" msg_required:"A last name is required" msg_min:"Please provide a last name" msg_notblank:"Please provide a last name"`
	EmailAddress *string `json:"emailAddress" validate:"required,min=1,notblank,email" msg_required:"An email address is required" msg_min:"Please provide an email address" msg_notblank:"Please provide an email address" msg_email:"Please provide a valid email address"`
	Password     *string `json:"password" validate:"required,min=1,notblank" msg_required:"A password is required" msg_min:"Please provide a password" msg_notblank:"Please provide a password"`
}

// Profile is the public projection of a user.
type Profile struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// Profile returns the public projection of u.
func (u *User) Profile() Profile {
	return Profile{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
