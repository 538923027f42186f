package prometheus

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// Handler exposes the default registry, where pkg/metrics registers all
// application series via promauto.
func (h *Handler) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
