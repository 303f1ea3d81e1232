package controllers

// StandardResponse is the common success envelope. Error paths return plain
// gin.H with an "error" key instead.
type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message,omitempty"`
}
