package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the API envelope: {"success": bool, "data"?: ..., "error"?: "..."}
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
