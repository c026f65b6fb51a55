// internal/api/websocket.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/scenespeak/scenespeak/internal/logger"
	"github.com/scenespeak/scenespeak/internal/models"
	"github.com/scenespeak/scenespeak/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The API is an open local tool; tighten this behind a proxy.
		return true
	},
}

const wsWriteTimeout = 10 * time.Second

type wsAnalyzeMessage struct {
	Text     string `json:"text"`
	HasImage bool   `json:"has_image"`
}

type wsResultMessage struct {
	Result *models.AnalysisResult `json:"result,omitempty"`
	Notice string                 `json:"notice,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// AnalyzeSocket serves live as-you-type analysis: each message is analyzed
// with the local pipeline only and the result is pushed back on the same
// connection. Remote calls are deliberately skipped here to keep the
// feedback loop fast.
func (h *Handler) AnalyzeSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.With("websocket").Warn("upgrading connection", "error", err)
		return
	}
	defer conn.Close()

	log := logger.With("websocket")

	for {
		var msg wsAnalyzeMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("reading analyze message", "error", err)
			}
			return
		}

		outcome, err := h.analyzer.Analyze(c.Request.Context(), services.AnalyzeRequest{
			Text:      msg.Text,
			HasImage:  msg.HasImage,
			LocalOnly: true,
		})

		reply := wsResultMessage{}
		if err != nil {
			reply.Error = err.Error()
		} else {
			reply.Result = outcome.Result
			reply.Notice = outcome.Notice
		}

		conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("writing analyze result", "error", err)
			return
		}
	}
}
