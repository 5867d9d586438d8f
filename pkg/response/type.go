package response

// Resp is the JSON body written for error responses.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Errors    any    `json:"errors,omitempty"`
}

// WarningResp is the body written for rejected logins.
type WarningResp struct {
	Warning string `json:"Warning"`
}

// MessageResp is a single-message body.
type MessageResp struct {
	Message string `json:"message"`
}

// StatusResp is the body written for CORS preflight requests.
type StatusResp struct {
	Status string `json:"status"`
}
