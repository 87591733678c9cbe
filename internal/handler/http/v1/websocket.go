package v1

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxClientMessageSize = 4096

// newCheckOrigin разрешает пустой Origin (не браузерные клиенты) и origin из списка CORS.
// "*" в списке разрешает любой origin.
func newCheckOrigin(allowed []string, logger *logrus.Logger) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin) {
			return true
		}
		logger.WithFields(logrus.Fields{
			"origin":      origin,
			"remote_addr": r.RemoteAddr,
		}).Warn("WebSocket origin rejected")
		return false
	}
}

// @Summary Live event channel
// @Description WebSocket. The first message is an init snapshot, then every committed mutation is pushed as an event.
// @Tags Live
// @Router /ws/rtcc [get]
func (h *Handler) liveChannel(c *gin.Context) {
	log := h.logger.WithField("method", "liveChannel").WithField("remote_addr", c.Request.RemoteAddr)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrader уже ответил клиенту
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	sub, err := h.hub.Register(c.Request.Context(), conn, h.service.Snapshot)
	if err != nil {
		log.WithError(err).Error("Failed to register subscriber")
		_ = conn.Close()
		return
	}
	defer h.hub.Unregister(sub)

	// Входящие сообщения клиента не несут смысла; чтение нужно, чтобы заметить закрытие соединения
	conn.SetReadLimit(maxClientMessageSize)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.WithError(err).Debug("Subscriber connection closed")
			return
		}
	}
}
