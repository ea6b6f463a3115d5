package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type FileURLsResponse struct {
	FileID   string `json:"file_id"`
	BucketID string `json:"bucket_id"`
	Preview  string `json:"preview"`
	Download string `json:"download"`
	View     string `json:"view"`
}

type RoleCheckResponse struct {
	TeamID  string `json:"team_id"`
	Role    string `json:"role"`
	HasRole bool   `json:"has_role"`
}

type SubscriptionResponse struct {
	SubscriptionID string   `json:"subscription_id"`
	Channels       []string `json:"channels"`
}
