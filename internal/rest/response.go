package rest

// ResponseError is the error payload shared by every handler.
type ResponseError struct {
	Message string `json:"message"`
}
