package apimodels

type Response struct {
	Status  string      `json:"status"`            // fail | success
	Message string      `json:"message,omitempty"` // error text
	Data    interface{} `json:"data,omitempty"`
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}
