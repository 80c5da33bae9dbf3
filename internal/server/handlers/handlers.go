// Package handlers Обработчики демонстрационных страниц
package handlers

import (
	"time"
)

type PagesHandler struct {
	startedAt time.Time
}

const (
	ContentTypeTextHTML  = "text/html; charset=utf-8"
	ContentTypeTextPlain = "text/plain; charset=utf-8"
)

func NewHandler() *PagesHandler {
	return &PagesHandler{startedAt: time.Now()}
}
