package domain

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("could not validate credentials")
var ErrEmailDomainNotAllowed = errors.New("email domain not allowed")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an authenticated account. The ID is the identity provider's
// subject claim, not a store-generated ObjectID: the provider owns identity,
// the store only mirrors it.
type User struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Picture   string    `json:"picture,omitempty" bson:"picture,omitempty"`
	IsAdmin   bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
