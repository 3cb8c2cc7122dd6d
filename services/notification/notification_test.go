package notification

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mikosha12/Hulu-beand-mern-b/constants"

	"github.com/gorilla/websocket"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, user string, role int) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + user + "&role=" + strconv.Itoa(role)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readWithin(conn *websocket.Conn, d time.Duration) (string, error) {
	conn.SetReadDeadline(time.Now().Add(d))
	_, msg, err := conn.ReadMessage()
	return string(msg), err
}

func TestMelodyService_Targets(t *testing.T) {
	m := melody.New()
	defer m.Close()

	connected := make(chan struct{}, 3)
	m.HandleConnect(func(*melody.Session) { connected <- struct{}{} })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := constants.RoleUser
		if r.URL.Query().Get("role") == "1" {
			role = constants.RoleAdmin
		}
		m.HandleRequestWithKeys(w, r, map[string]any{KeyUserID: r.URL.Query().Get("user"), KeyRole: role})
	}))
	defer srv.Close()

	a1 := dial(t, srv, "a1", constants.RoleAdmin)
	a2 := dial(t, srv, "a2", constants.RoleAdmin)
	u1 := dial(t, srv, "u1", constants.RoleUser)
	for i := 0; i < 3; i++ {
		select {
		case <-connected:
		case <-time.After(2 * time.Second):
			t.Fatal("websocket did not connect")
		}
	}

	svc := NewMelodyService(m)
	require.NoError(t, svc.SendToUsers([]string{"a1"}, Event{Type: EventHotelPending, Data: map[string]string{"hotelId": "h1"}}))

	msg, err := readWithin(a1, 2*time.Second)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"hotel.pending","data":{"hotelId":"h1"}}`, msg)

	require.NoError(t, svc.SendToAdmins(Event{Type: EventPendingReminder, Data: 2}))
	msg, err = readWithin(a2, 2*time.Second)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"hotel.pending.reminder","data":2}`, msg)

	_, err = readWithin(u1, 200*time.Millisecond)
	assert.Error(t, err)
}

func TestMelodyService_NilMelody(t *testing.T) {
	assert.Error(t, NewMelodyService(nil).SendToAdmins(Event{Type: "x"}))
}
