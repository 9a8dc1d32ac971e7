package types

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string `json:"message"`
	AppName string `json:"app_name"`
	Version string `json:"version"`
}
