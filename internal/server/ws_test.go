package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/matzehuels/dsaviz/pkg/errors"
	"github.com/matzehuels/dsaviz/pkg/session"
)

func dialPlay(t *testing.T, opts Options, header map[string][]string) (*websocket.Conn, *httptest.Server, error) {
	t.Helper()
	ts := newTestServer(t, opts)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/play"
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		t.Cleanup(func() { conn.Close() })
	}
	return conn, ts, err
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var m ServerMessage
	require.NoError(t, conn.ReadJSON(&m))
	return m
}

func sendAction(t *testing.T, conn *websocket.Conn, m ClientMessage) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(m))
}

func TestPlaySession(t *testing.T) {
	conn, ts, err := dialPlay(t, Options{}, nil)
	require.NoError(t, err)

	hello := readMessage(t, conn)
	require.Equal(t, MessageSession, hello.Type)
	assert.NotEmpty(t, hello.Session)

	sendAction(t, conn, ClientMessage{Action: ActionForward})
	m := readMessage(t, conn)
	require.Equal(t, MessageError, m.Type)
	assert.Equal(t, dserrors.ErrCodeInvalidInput, m.Error.Code)

	sendAction(t, conn, ClientMessage{
		Action:    ActionExecute,
		Algorithm: "binary-search",
		Input:     []byte(`{"values":[1,3,5,7],"target":7}`),
	})
	loaded := readMessage(t, conn)
	require.Equal(t, MessageLoaded, loaded.Type)
	assert.Equal(t, "binary-search", loaded.Loaded.Algorithm)
	assert.Equal(t, []int{1, 3, 5, 7}, loaded.Loaded.Input.Values)
	n := loaded.Loaded.Length
	require.Greater(t, n, 2)

	first := readMessage(t, conn)
	require.Equal(t, MessageFrame, first.Type)
	assert.Equal(t, 0, first.State.Cursor)
	assert.Equal(t, n, first.State.Length)
	assert.False(t, first.State.Playing)

	sendAction(t, conn, ClientMessage{Action: ActionForward})
	assert.Equal(t, 1, readMessage(t, conn).State.Cursor)

	live := decodeBody[struct {
		Sessions []session.Session `json:"sessions"`
	}](t, get(t, ts, "/api/sessions"))
	require.Len(t, live.Sessions, 1)
	assert.Equal(t, hello.Session, live.Sessions[0].ID)
	assert.Equal(t, "binary-search", live.Sessions[0].Algorithm)
	assert.Equal(t, 1, live.Sessions[0].Cursor)

	sendAction(t, conn, ClientMessage{Action: ActionSeek, Index: n - 1})
	last := readMessage(t, conn)
	assert.Equal(t, n-1, last.State.Cursor)
	assert.True(t, last.State.Step.Done)

	sendAction(t, conn, ClientMessage{Action: ActionBack})
	assert.Equal(t, n-2, readMessage(t, conn).State.Cursor)

	sendAction(t, conn, ClientMessage{Action: ActionSpeed, SpeedMS: -5})
	assert.Equal(t, MessageError, readMessage(t, conn).Type)

	sendAction(t, conn, ClientMessage{Action: "jump"})
	assert.Equal(t, MessageError, readMessage(t, conn).Type)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	assert.Equal(t, MessageError, readMessage(t, conn).Type)

	sendAction(t, conn, ClientMessage{Action: ActionExecute, Algorithm: "quicksort"})
	m = readMessage(t, conn)
	require.Equal(t, MessageError, m.Type)
	assert.Equal(t, dserrors.ErrCodeUnknownAlgorithm, m.Error.Code)
}

func TestPlayAutoAdvances(t *testing.T) {
	conn, _, err := dialPlay(t, Options{}, nil)
	require.NoError(t, err)
	readMessage(t, conn)

	sendAction(t, conn, ClientMessage{Action: ActionExecute, Algorithm: "reverse-string", Input: []byte(`{"text":"abc"}`)})
	loaded := readMessage(t, conn)
	require.Equal(t, MessageLoaded, loaded.Type)
	readMessage(t, conn)

	sendAction(t, conn, ClientMessage{Action: ActionSpeed, SpeedMS: 1})
	readMessage(t, conn)
	sendAction(t, conn, ClientMessage{Action: ActionToggle})

	var m ServerMessage
	for range 3 * loaded.Loaded.Length {
		m = readMessage(t, conn)
		if m.State != nil && !m.State.Playing && m.State.Cursor == loaded.Loaded.Length-1 {
			break
		}
	}
	require.NotNil(t, m.State)
	assert.Equal(t, loaded.Loaded.Length-1, m.State.Cursor)
	assert.False(t, m.State.Playing)
}

func TestPlayRejectsOrigin(t *testing.T) {
	_, _, err := dialPlay(t, Options{AllowedOrigins: []string{"https://dsaviz.dev"}},
		map[string][]string{"Origin": {"https://evil.example"}})
	assert.Error(t, err)
}
