package handlers

import (
	"net/http"

	"github.com/VijeshVS/LocalHire-sub001/internal/http/metrics"
)

type MetricsHandler struct {
	handler http.Handler
}

func NewMetricsHandler(collector *metrics.Collector) *MetricsHandler {
	return &MetricsHandler{handler: collector.Handler()}
}

func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
