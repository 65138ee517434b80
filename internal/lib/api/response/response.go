package response

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func Ok(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func Message(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
	}
}

func Error(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}

// Fail carries data alongside the error message, e.g. per-field validation errors.
func Fail(msg string, data interface{}) Response {
	return Response{
		Success: false,
		Data:    data,
		Message: msg,
	}
}
