package gzip

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"testing"

	"github.com/s-turchinskiy/gzipresponse/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RoundTrip(t *testing.T) {

	repetitive := bytes.Repeat([]byte("the same line over and over\n"), 1_000_000/28+1)[:1_000_000]

	tests := []struct {
		name string
		body []byte
	}{
		{
			name: "empty",
			body: []byte{},
		},
		{
			name: "one byte",
			body: []byte("a"),
		},
		{
			name: "just under the buffer size",
			body: randomBytes(8191),
		},
		{
			name: "1MB random",
			body: randomBytes(1_000_000),
		},
		{
			name: "1MB repetitive",
			body: repetitive,
		},
	}

	m := newTestMiddleware()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			resp := pipeline.Bytes(200, "application/json", tt.body)
			req := &pipeline.Request{AcceptEncoding: []string{"gzip"}}

			require.NoError(t, m.Process(req, resp))

			encoding, ok := resp.Headers.Get("Content-Encoding")
			require.True(t, ok)
			require.Equal(t, "gzip", encoding)

			var buf bytes.Buffer
			require.NoError(t, resp.Contents(&buf))

			zr, err := gzip.NewReader(&buf)
			require.NoError(t, err)
			got, err := io.ReadAll(zr)
			require.NoError(t, err)
			require.NoError(t, zr.Close())

			assert.Equal(t, tt.body, got)
		})
	}
}

func TestMiddleware_AlreadyCompressed(t *testing.T) {

	m := newTestMiddleware()

	body := []byte(`{"status":"ok"}`)
	resp := pipeline.Bytes(200, "application/json", body)
	resp.Headers.Set("Content-Encoding", "gzip")
	req := &pipeline.Request{AcceptEncoding: []string{"gzip"}}

	require.NoError(t, m.Process(req, resp))

	// the body producer was not replaced: it still writes the raw bytes
	var buf bytes.Buffer
	require.NoError(t, resp.Contents(&buf))
	assert.Equal(t, body, buf.Bytes())
}

func TestMiddleware_HeaderMutationIsolation(t *testing.T) {

	m := newTestMiddleware()

	resp := pipeline.Text(200, "hello")
	resp.Headers.Set("X-Request-Id", "abc-123")
	resp.Headers.Set("Cache-Control", "no-store")
	req := &pipeline.Request{AcceptEncoding: []string{"gzip"}}

	require.NoError(t, m.Process(req, resp))

	want := pipeline.Headers{
		{Name: "X-Request-Id", Value: "abc-123"},
		{Name: "Cache-Control", Value: "no-store"},
		{Name: "Content-Encoding", Value: "gzip"},
	}
	assert.Equal(t, want, resp.Headers)
}

func TestMiddleware_NotEligibleUntouched(t *testing.T) {

	tests := []struct {
		name   string
		mutate func(resp *pipeline.Response, req *pipeline.Request)
	}{
		{
			name: "no body",
			mutate: func(resp *pipeline.Response, req *pipeline.Request) {
				resp.Contents = nil
			},
		},
		{
			name: "image content type",
			mutate: func(resp *pipeline.Response, req *pipeline.Request) {
				resp.ContentType = "image/png"
			},
		},
		{
			name: "font content type",
			mutate: func(resp *pipeline.Response, req *pipeline.Request) {
				resp.ContentType = "font/woff2"
			},
		},
		{
			name: "client does not accept gzip",
			mutate: func(resp *pipeline.Response, req *pipeline.Request) {
				req.AcceptEncoding = []string{"br"}
			},
		},
		{
			name: "small declared size",
			mutate: func(resp *pipeline.Response, req *pipeline.Request) {
				resp.Headers.Set("Content-Length", "512")
			},
		},
	}

	m := newTestMiddleware()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			resp := pipeline.Text(200, "hello")
			req := &pipeline.Request{AcceptEncoding: []string{"gzip"}}
			tt.mutate(resp, req)

			require.NoError(t, m.Process(req, resp))

			_, ok := resp.Headers.Get("Content-Encoding")
			assert.False(t, ok)
		})
	}
}

func TestMiddleware_MalformedContentLength(t *testing.T) {

	m := newTestMiddleware()

	resp := pipeline.Text(200, "hello")
	resp.Headers.Set("Content-Length", "not-a-number")
	req := &pipeline.Request{AcceptEncoding: []string{"gzip"}}

	err := m.Process(req, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Content-Length")
}

func TestMiddleware_FaultyDestination(t *testing.T) {

	m := newTestMiddleware()

	resp := pipeline.Bytes(200, "application/octet-stream", randomBytes(10001))
	req := &pipeline.Request{AcceptEncoding: []string{"gzip"}}
	require.NoError(t, m.Process(req, resp))

	err := resp.Contents(&faultyWriter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errLimitExceeded)
}

func TestMiddleware_ProducerErrorPropagates(t *testing.T) {

	m := newTestMiddleware()

	errBoom := errors.New("boom")
	resp := &pipeline.Response{
		StatusCode:  200,
		ContentType: "text/plain",
		Contents: func(w io.Writer) error {
			if _, err := io.WriteString(w, "partial"); err != nil {
				return err
			}
			return errBoom
		},
	}
	req := &pipeline.Request{AcceptEncoding: []string{"gzip"}}
	require.NoError(t, m.Process(req, resp))

	var buf bytes.Buffer
	err := resp.Contents(&buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)

	// the compressing writer was still finalized on the failure path
	zr, zerr := gzip.NewReader(&buf)
	require.NoError(t, zerr)
	got, rerr := io.ReadAll(zr)
	require.NoError(t, rerr)
	assert.Equal(t, "partial", string(got))
}
