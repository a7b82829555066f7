package query

// Request defines the input contract for the /query endpoint
type Request struct {
	Query string `json:"query"`
}

// Response carries the generated reply back to the caller
type Response struct {
	Response string `json:"response"`
}

// ErrorResponse is returned on validation or upstream failures
type ErrorResponse struct {
	Error string `json:"error"`
}
