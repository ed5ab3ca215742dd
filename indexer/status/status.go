package status

import "time"

const (
	LoginError   = "login"
	TargetError  = "bad-target"
	ContentError = "cant-fetch-content"
	Ok           = "ok"
)

// ErrorMessage is a single problem the provider ran into.
type ErrorMessage struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// SearchMessage describes the outcome of a search.
type SearchMessage struct {
	Code         string    `json:"code"`
	ResultsFound int       `json:"results_found"`
	Time         time.Time `json:"time"`
}
