package entity

import "context"

// SignupRequest carries the multipart form fields of POST /signup.
// The optional photo file is handled separately by the route layer.
type SignupRequest struct {
	FullName   string `json:"fullName"`
	College    string `json:"college"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Bio        string `json:"bio"`
	Gender     string `json:"gender"`
	Preference string `json:"preference"`
	Age        int    `json:"age"`
	Interests  string `json:"interests"`
}

func (r *SignupRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.FullName == "" {
		problems["fullName"] = append(problems["fullName"], "Full name is required")
	}
	if r.Email == "" {
		problems["email"] = append(problems["email"], "Email is required")
	}
	if r.Password == "" {
		problems["password"] = append(problems["password"], "Password is required")
	}
	if len([]byte(r.Password)) > 72 {
		problems["password"] = append(problems["password"], "Password length should not exceed 72 bytes")
	}

	return problems
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" {
		problems["email"] = append(problems["email"], "Email is required")
	}
	if r.Password == "" {
		problems["password"] = append(problems["password"], "Password is required")
	}

	return problems
}

type LikeRequest struct {
	LikerID uint `json:"liker_id"`
	LikedID uint `json:"liked_id"`
}

func (r *LikeRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.LikerID == 0 {
		problems["liker_id"] = append(problems["liker_id"], "liker_id is required")
	}
	if r.LikedID == 0 {
		problems["liked_id"] = append(problems["liked_id"], "liked_id is required")
	}

	return problems
}

type SendMessageRequest struct {
	MatchID     uint   `json:"match_id"`
	SenderID    uint   `json:"sender_id"`
	MessageText string `json:"message_text"`
}

func (r *SendMessageRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.MatchID == 0 {
		problems["match_id"] = append(problems["match_id"], "match_id is required")
	}
	if r.SenderID == 0 {
		problems["sender_id"] = append(problems["sender_id"], "sender_id is required")
	}
	if r.MessageText == "" {
		problems["message_text"] = append(problems["message_text"], "message_text is required")
	}

	return problems
}

type UpdateProfileRequest struct {
	UserID    uint     `json:"userId"`
	FullName  string   `json:"fullName"`
	College   string   `json:"college"`
	Age       int      `json:"age"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}

func (r *UpdateProfileRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.UserID == 0 {
		problems["userId"] = append(problems["userId"], "userId is required")
	}

	return problems
}
