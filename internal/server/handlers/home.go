package handlers

import (
	"html/template"
	"io"
	"net/http"

	"github.com/s-turchinskiy/gzipresponse/internal/pipeline"
)

type OutputHome struct {
	Header string
	Links  []string
}

var (
	templateHome = `<div>{{.Header}}</div><ul style="margin-left: 40px">{{range .Links}}<li><a href="{{.}}">{{.}}</a></li>{{end}}</ul>`
)

func (h *PagesHandler) Home(_ *pipeline.Request) (*pipeline.Response, error) {

	tmpl, err := template.New("home").Parse(templateHome)
	if err != nil {
		return nil, err
	}

	data := OutputHome{
		Header: "gzipresponse demo server",
		Links:  []string{"/api/status", "/api/notes", "/logo.png"},
	}

	return &pipeline.Response{
		StatusCode:  http.StatusOK,
		ContentType: ContentTypeTextHTML,
		Contents: func(w io.Writer) error {
			return tmpl.Execute(w, data)
		},
	}, nil
}
