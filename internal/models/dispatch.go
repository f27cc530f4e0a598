package models

// DispatchResult is the outcome of handling one inbound message. It is owned
// by the request that produced it and discarded once the response is sent.
type DispatchResult struct {
	RequestID        string
	Success          bool
	DownstreamStatus int
	Body             map[string]interface{}
	Err              error
}
