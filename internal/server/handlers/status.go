package handlers

import (
	"net/http"
	"time"

	"github.com/s-turchinskiy/gzipresponse/internal/pipeline"
)

type OutputStatus struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (h *PagesHandler) Status(_ *pipeline.Request) (*pipeline.Response, error) {

	status := OutputStatus{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
	}

	return pipeline.JSON(http.StatusOK, status), nil
}
