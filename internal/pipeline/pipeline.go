// Package pipeline contains the request/response model handed between
// handlers and middleware before a response is flushed to the network.
package pipeline

import (
	"encoding/json"
	"io"
)

// Handler produces a response for a request.
type Handler func(*Request) (*Response, error)

// Request is the read-only view of the inbound request that middleware needs.
type Request struct {
	Method         string
	Path           string
	AcceptEncoding []string
}

// Response carries everything needed to send a reply. Contents is deferred:
// it is invoked exactly once, with the real output sink, when the pipeline
// flushes the response. A nil Contents means the response has no body.
type Response struct {
	StatusCode  int
	ContentType string
	Headers     Headers
	Contents    func(io.Writer) error
}

func (r *Response) HasBody() bool {
	return r.Contents != nil
}

// Text builds a plain-text response.
func Text(statusCode int, body string) *Response {
	return &Response{
		StatusCode:  statusCode,
		ContentType: "text/plain; charset=utf-8",
		Contents: func(w io.Writer) error {
			_, err := io.WriteString(w, body)
			return err
		},
	}
}

// Bytes builds a response serving a fixed byte slice with the given content type.
func Bytes(statusCode int, contentType string, body []byte) *Response {
	return &Response{
		StatusCode:  statusCode,
		ContentType: contentType,
		Contents: func(w io.Writer) error {
			_, err := w.Write(body)
			return err
		},
	}
}

// JSON builds a response that marshals v when the body is produced.
func JSON(statusCode int, v any) *Response {
	return &Response{
		StatusCode:  statusCode,
		ContentType: "application/json",
		Contents: func(w io.Writer) error {
			return json.NewEncoder(w).Encode(v)
		},
	}
}
