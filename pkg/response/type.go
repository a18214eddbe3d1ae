package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DetailResp is the bare error body served on the legacy /process endpoint.
type DetailResp struct {
	Detail string `json:"detail"`
}
