package api

// StatusUpdateRequest is the body of the admin status PATCH endpoints.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}
