package entity

type UserSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
}

// AuthResponse is the success body of /signup and /login.
type AuthResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LikeResponse reports whether the like completed a match.
type LikeResponse struct {
	Status string `json:"status"`
	Match  bool   `json:"match"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
