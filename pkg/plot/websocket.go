package plot

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/raykavin/launchboard/pkg/presenter"
	"github.com/raykavin/launchboard/pkg/view"
)

// Message types sent over the websocket
const (
	MessageUpdate = "update"
	MessageError  = "error"
)

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// ControlEvent is sent by the page whenever a selector changes.
// Missing fields keep their default value.
type ControlEvent struct {
	Site string   `json:"site"`
	Low  *float64 `json:"low"`
	High *float64 `json:"high"`
}

func (e ControlEvent) selection(fallback view.Selection) view.Selection {
	sel := fallback
	if e.Site != "" {
		sel.Site = e.Site
	}
	if e.Low != nil {
		sel.Range.Low = *e.Low
	}
	if e.High != nil {
		sel.Range.High = *e.High
	}
	return sel
}

// Update carries both recomputed charts for one selection
type Update struct {
	Selection   view.Selection `json:"selection"`
	Proportion  presenter.Spec `json:"proportion"`
	Correlation presenter.Spec `json:"correlation"`
}

// Update recomputes both charts for sel after normalizing it
func (d *Dashboard) Update(sel view.Selection) Update {
	sel = sel.Normalize(d.domain)
	return Update{
		Selection:   sel,
		Proportion:  presenter.Proportion(d.records, sel.Site),
		Correlation: presenter.Correlation(d.records, sel),
	}
}

// handleWebSocket answers every control event on the connection with an
// Update. Events on one connection are processed in order, one at a time.
func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	log := d.log.WithField("remote", r.RemoteAddr)
	log.Debug("WebSocket client connected")

	if err := conn.WriteJSON(WebSocketMessage{Type: MessageUpdate, Payload: d.Update(d.controls.Default)}); err != nil {
		log.WithError(err).Warn("Failed sending initial update")
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("WebSocket read failed")
			}
			return
		}

		var event ControlEvent
		if err := json.Unmarshal(data, &event); err != nil {
			if err := conn.WriteJSON(WebSocketMessage{Type: MessageError, Payload: "invalid control event: " + err.Error()}); err != nil {
				return
			}
			continue
		}

		update := d.Update(event.selection(d.controls.Default))
		log.WithFields(map[string]any{
			"site":   update.Selection.Site,
			"low":    update.Selection.Range.Low,
			"high":   update.Selection.Range.High,
			"points": update.Correlation.Total(),
		}).Debug("Control changed")

		if err := conn.WriteJSON(WebSocketMessage{Type: MessageUpdate, Payload: update}); err != nil {
			log.WithError(err).Warn("Failed sending update")
			return
		}
	}
}
