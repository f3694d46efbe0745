package plot

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/raykavin/launchboard/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type updateMessage struct {
	Type    string `json:"type"`
	Payload Update `json:"payload"`
}

func dial(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) updateMessage {
	t.Helper()

	var msg updateMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocket_InitialUpdate(t *testing.T) {
	_, srv := newTestServer(t)
	conn := dial(t, srv.URL)

	msg := readUpdate(t, conn)
	assert.Equal(t, MessageUpdate, msg.Type)
	assert.Equal(t, view.Selection{Site: view.AllSites, Range: view.Range{Low: 500, High: 2500}}, msg.Payload.Selection)
	assert.Equal(t, 2, msg.Payload.Proportion.Total())
	assert.Equal(t, 2, msg.Payload.Correlation.Total())
}

func TestWebSocket_ControlEvents(t *testing.T) {
	_, srv := newTestServer(t)
	conn := dial(t, srv.URL)
	readUpdate(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"site":"A","low":400,"high":2000}`)))
	msg := readUpdate(t, conn)
	assert.Equal(t, "A", msg.Payload.Selection.Site)
	assert.Equal(t, 3, msg.Payload.Proportion.Total())
	require.Len(t, msg.Payload.Correlation.Points, 2)
	assert.Equal(t, []string{"v1.0", "FT"}, msg.Payload.Correlation.Groups)

	// only the site changes, the range falls back to the default
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"site":"B"}`)))
	msg = readUpdate(t, conn)
	assert.Equal(t, view.Range{Low: 500, High: 2500}, msg.Payload.Selection.Range)
	assert.Equal(t, 1, msg.Payload.Proportion.Total())
	assert.Equal(t, 1, msg.Payload.Correlation.Total())

	// inverted range is swapped
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"site":"ALL","low":3000,"high":0}`)))
	msg = readUpdate(t, conn)
	assert.Equal(t, view.Range{Low: 0, High: 3000}, msg.Payload.Selection.Range)
	assert.Equal(t, 4, msg.Payload.Correlation.Total())
}

func TestWebSocket_MalformedEventKeepsConnection(t *testing.T) {
	_, srv := newTestServer(t)
	conn := dial(t, srv.URL)
	readUpdate(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"site":`)))

	var errMsg WebSocketMessage
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.Equal(t, MessageError, errMsg.Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"site":"A","low":1000,"high":1000}`)))
	msg := readUpdate(t, conn)
	assert.Equal(t, MessageUpdate, msg.Type)
	assert.True(t, msg.Payload.Correlation.Empty())
}

func TestDashboard_Update(t *testing.T) {
	d, _ := newTestServer(t)

	update := d.Update(view.Selection{Site: "", Range: view.Range{Low: -10, High: 20000}})
	assert.Equal(t, view.Selection{Site: view.AllSites, Range: view.Range{Low: 0, High: 10000}}, update.Selection)
	assert.Equal(t, 4, update.Correlation.Total())
	assert.Equal(t, 2, update.Proportion.Total())
}
