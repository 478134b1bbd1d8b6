package connectionhub

import (
	"ets-backend/db/dbtest"
	"ets-backend/models"
	"fmt"
	"net"
	"testing"
	"time"

	fastws "github.com/fasthttp/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// startHubServer serves /ws/:user the same way lib/ws does: register on connect,
// drop the connection's own session on exit.
func startHubServer(t *testing.T, hub Provider) (addr string, added, closed chan string) {
	added = make(chan string, 4)
	closed = make(chan string, 4)
	app := fiber.New()
	app.Get("/ws/:user", websocket.New(func(c *websocket.Conn) {
		userID := c.Params("user")
		hub.AddClient(userID, c)
		added <- userID
		defer func() {
			hub.DeleteClient(userID, c)
			closed <- userID
		}()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}))
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})
	return ln.Addr().String(), added, closed
}

func dial(t *testing.T, addr, userID string) *fastws.Conn {
	conn, _, err := fastws.DefaultDialer.Dial(fmt.Sprintf("ws://%s/ws/%s", addr, userID), nil)
	require.NoError(t, err)
	return conn
}

// wait skips signals of other users, e.g. a connection closed by an earlier subtest.
func wait(t *testing.T, ch chan string, userID string) {
	deadline := time.After(5 * time.Second)
	for {
		select {
		case v := <-ch:
			if v == userID {
				return
			}
		case <-deadline:
			require.FailNow(t, "timed out waiting for the ws handler")
		}
	}
}

func TestReconnect(t *testing.T) {
	hub := NewInstance(dbtest.New(t))
	addr, added, closed := startHubServer(t, hub)

	t.Run("second connection survives the first one closing check", func(t *testing.T) {
		first := dial(t, addr, "3")
		wait(t, added, "3")
		require.True(t, hub.IsConnected("3"))

		second := dial(t, addr, "3")
		defer second.Close()
		wait(t, added, "3")

		require.NoError(t, first.Close())
		wait(t, closed, "3")
		require.True(t, hub.IsConnected("3"))

		require.NoError(t, hub.Notify("3", models.ChatMessageEvent, "hello", map[string]string{"text": "hi"}))
		require.NoError(t, second.SetReadDeadline(time.Now().Add(5*time.Second)))
		msg := map[string]any{}
		require.NoError(t, second.ReadJSON(&msg))
		require.Equal(t, string(models.ChatMessageEvent), msg["code"])
		require.Equal(t, "hello", msg["msg"])
	})
	t.Run("closing the last connection goes offline check", func(t *testing.T) {
		conn := dial(t, addr, "4")
		wait(t, added, "4")
		require.True(t, hub.IsConnected("4"))
		require.NoError(t, conn.Close())
		wait(t, closed, "4")
		require.False(t, hub.IsConnected("4"))
	})
}
