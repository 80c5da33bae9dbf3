package gzip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/s-turchinskiy/gzipresponse/internal/pipeline"
)

// shouldCompress is a pure predicate over request and response metadata.
// It reports an error only for a malformed Content-Length header, which is
// never silently coerced into a yes or a no.
func (m *Middleware) shouldCompress(req *pipeline.Request, resp *pipeline.Response) (bool, error) {

	if !resp.HasBody() {
		return false, nil
	}

	if strings.Contains(resp.ContentType, "image") || strings.Contains(resp.ContentType, "font") {
		return false, nil
	}

	if !acceptsGzip(req.AcceptEncoding) {
		return false, nil
	}

	if encoding, ok := resp.Headers.Get("Content-Encoding"); ok && encoding == "gzip" {
		return false, nil
	}

	if length, ok := resp.Headers.Get("Content-Length"); ok {
		size, err := strconv.ParseInt(length, 10, 64)
		if err != nil {
			return false, fmt.Errorf("invalid Content-Length %q: %w", length, err)
		}
		if size < int64(m.minLength) {
			return false, nil
		}
	}

	return true, nil
}

// acceptsGzip matches by substring, so tokens like "x-gzip" and "gzip;q=0.5"
// qualify too.
func acceptsGzip(tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(token, "gzip") {
			return true
		}
	}
	return false
}
