package interactions

// Reply is the terminal result of dispatching an interaction.
// Every dispatch path produces exactly one Reply.
type Reply struct {
	// Status is the HTTP status code to respond with.
	Status int
	// Body is serialized as JSON.
	Body any
}

// ErrorResponse is returned for interactions that cannot be handled.
type ErrorResponse struct {
	// Error names the reason the interaction was rejected.
	Error string `json:"error"`
}

// GreetingResponse is returned for non POST requests.
type GreetingResponse struct {
	Name string `json:"name"`
}

// FaultResponse is returned when a verified request body cannot be processed.
type FaultResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}
