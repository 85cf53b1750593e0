package webhook

const (
	StatusOK      = "ok"
	StatusRunning = "Bot is running"
)

// StatusResponse is returned for processed updates and health checks.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is returned when an update could not be handled.
type ErrorResponse struct {
	Error string `json:"error"`
}
