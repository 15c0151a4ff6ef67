package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает балансировщику. При остановке сервиса начинает отдавать
// 503 раньше, чем закрывается listener: так инстанс выпадает из ротации
// до обрыва соединений.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
