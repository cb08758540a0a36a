package api

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse defines the generic success envelope used by endpoints
// that have no payload to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskRequest defines the payload for creating or fully replacing a task.
// Description is optional and may be null.
type TaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=4096"`
}

// TaskSummary is the client-facing shape of a single task.
type TaskSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// TaskListResponse wraps the task collection for the list endpoint.
type TaskListResponse struct {
	Tasks []TaskSummary `json:"tasks"`
}

// TaskDetailResponse wraps a single task for the get endpoint.
type TaskDetailResponse struct {
	Task TaskSummary `json:"task"`
}
