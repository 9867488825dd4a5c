package model

import "time"

// User is a registered marketplace account (buyer and/or seller).
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"fullName" db:"full_name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsSeller     bool      `json:"isSeller" db:"is_seller"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// SignUpRequest is the request payload for account registration.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// SignInRequest is the request payload for authentication.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by sign-up and sign-in on success.
type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SellerStats aggregates revenue figures for a seller's dashboard.
// Amounts are in minor currency units, computed over completed orders only.
type SellerStats struct {
	TotalUseCases int   `json:"totalUseCases"`
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalOrders   int   `json:"totalOrders"`
	AvgOrderCents int64 `json:"avgOrderCents"`
}
