package response

// Envelope is the common response shape of the portal gateway
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Ok(data interface{}) *Envelope {
	return &Envelope{Success: true, Data: data}
}

func OkMessage(message string) *Envelope {
	return &Envelope{Success: true, Message: message}
}
