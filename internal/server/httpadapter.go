package server

import (
	"net/http"
	"strings"

	"github.com/s-turchinskiy/gzipresponse/internal/pipeline"
	"github.com/s-turchinskiy/gzipresponse/internal/server/logger"
	"github.com/s-turchinskiy/gzipresponse/internal/server/middleware/gzip"
)

// Handle runs a pipeline handler behind net/http: the response object is
// produced first, then the compression middleware inspects it, and only
// after that are bytes flushed to the network.
func Handle(gz *gzip.Middleware, h pipeline.Handler) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		req := requestFromHTTP(r)

		resp, err := h(req)
		if err != nil {
			logger.Log.Errorw("handler error", "error", err.Error())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err := gz.Process(req, resp); err != nil {
			logger.Log.Errorw("response transformation error", "error", err.Error())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err := flush(resp, w); err != nil {
			// headers are already sent, nothing to do but log
			logger.Log.Errorw("write response error", "error", err.Error())
		}
	}
}

func requestFromHTTP(r *http.Request) *pipeline.Request {

	var tokens []string
	for _, value := range r.Header.Values("Accept-Encoding") {
		for _, token := range strings.Split(value, ",") {
			token = strings.TrimSpace(token)
			if token != "" {
				tokens = append(tokens, token)
			}
		}
	}

	return &pipeline.Request{
		Method:         r.Method,
		Path:           r.URL.Path,
		AcceptEncoding: tokens,
	}
}

func flush(resp *pipeline.Response, w http.ResponseWriter) error {

	// a re-encoded body no longer matches the declared length
	if encoding, ok := resp.Headers.Get("Content-Encoding"); ok && encoding == "gzip" {
		resp.Headers.Del("Content-Length")
	}

	for _, header := range resp.Headers {
		w.Header().Set(header.Name, header.Value)
	}
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}

	statusCode := resp.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)

	if !resp.HasBody() {
		return nil
	}
	return resp.Contents(w)
}
