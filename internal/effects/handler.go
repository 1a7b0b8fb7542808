package effects

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Archemasachika7/Algorythm-auth/internal/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler streams matrix-rain frames to a websocket client. Purely
// decorative; a failed upgrade or dropped peer only ends this stream.
type Handler struct {
	engine *Engine
}

// NewHandler returns a websocket handler over the given engine.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorw("matrix stream upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	frames, unsub := h.engine.Subscribe()
	defer unsub()

	for frame := range frames {
		if err := conn.WriteJSON(frame); err != nil {
			logger.Log.Debugw("matrix stream closed", "err", err)
			return
		}
	}
}
