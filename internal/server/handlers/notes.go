package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/s-turchinskiy/gzipresponse/internal/pipeline"
)

// Notes serves a plain-text page with a declared Content-Length, so the
// compression decision takes the body size into account.
func (h *PagesHandler) Notes(_ *pipeline.Request) (*pipeline.Response, error) {

	var sb strings.Builder
	for i := 1; i <= 50; i++ {
		sb.WriteString("note ")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": responses are compressed only when the client asks for gzip\n")
	}
	body := sb.String()

	resp := pipeline.Text(http.StatusOK, body)
	resp.Headers.Set("Content-Length", strconv.Itoa(len(body)))

	return resp, nil
}
