// Package iresponse defines the envelope every HTTP handler answers with.
package iresponse

import "encoding/json"

// Response carries the verdict of one request. HttpStatus mirrors the HTTP
// code; Success and Error are its boolean views. Explanation names the
// operation for the caller, ErrorExplanation holds the failure detail
// (typically the child process stderr). Data is the operation payload,
// pre-serialized so handlers can attach gateway results untouched.
type Response struct {
	HttpStatus       int
	Explanation      string
	ErrorExplanation string
	Error            bool
	Success          bool
	Data             json.RawMessage
}
