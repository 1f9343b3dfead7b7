package server

// Error codes returned by the preview API.
const (
	CodeNotFound = "NOT_FOUND"
)

type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorData `json:"error,omitempty"`
}

type ErrorData struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// HealthStatus is the /api/health payload.
type HealthStatus struct {
	Status string `json:"status"`
	File   string `json:"file"`
}

// FileStats is the /api/stats payload describing the served heatmap file.
type FileStats struct {
	File      string `json:"file"`
	SizeBytes int64  `json:"size_bytes"`
	ModTime   string `json:"mod_time"`
}

func SuccessResponse(data any) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func ErrorResponse(message, code string) Response {
	return Response{
		Success: false,
		Error: &ErrorData{
			Message: message,
			Code:    code,
		},
	}
}
