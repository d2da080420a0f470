package models

import "time"

// User roles.
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// UserAddress is the optional default address on a profile. Profile
// updates replace it wholesale; fields are never merged individually.
type UserAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// User is a storefront account. Email is the login key and unique
// (case-insensitive). PasswordHash is stored at registration but never
// checked at login; authentication here is demo-grade by design.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Role         string       `json:"role"`
	Phone        *string      `json:"phone,omitempty"`
	Address      *UserAddress `json:"address,omitempty"`
	PasswordHash string       `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// UserResponse is the public-facing user payload.
type UserResponse struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Role      string       `json:"role"`
	Phone     *string      `json:"phone,omitempty"`
	Address   *UserAddress `json:"address,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ToResponse converts User to UserResponse.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is returned after a successful login or registration.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// LoginRequest carries the credentials. The password is accepted as-is;
// only the email is checked against the directory.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email     string       `json:"email" binding:"required,email"`
	Password  string       `json:"password" binding:"required,min=4"`
	FirstName string       `json:"firstName" binding:"required"`
	LastName  string       `json:"lastName" binding:"required"`
	Phone     *string      `json:"phone"`
	Address   *UserAddress `json:"address"`
}

// UpdateProfileRequest merges provided fields into the stored record.
// Nil means "leave unchanged"; a non-nil Address replaces the stored
// address wholesale.
type UpdateProfileRequest struct {
	FirstName *string      `json:"firstName"`
	LastName  *string      `json:"lastName"`
	Phone     *string      `json:"phone"`
	Address   *UserAddress `json:"address"`
}
