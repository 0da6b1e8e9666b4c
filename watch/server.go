package watch

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// Registration is the first message a client sends after the upgrade: the
// event kinds it wants to receive. Empty means everything.
type Registration struct {
	Kinds []string `json:"kinds"`
}

// HTTPHandler upgrades incoming requests to websocket connections and
// subscribes each one to the hub according to its registration message.
func HTTPHandler(hub *Hub) http.Handler {
	return &requestHandler{hub: hub}
}

type requestHandler struct {
	hub *Hub
}

func (h *requestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Info("new watch request")
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.LogError(err, "upgrading watch request")
		return
	}

	msg, op, err := wsutil.ReadClientData(conn)
	if err != nil {
		log.LogError(err, "reading registration request")
		wsutil.WriteServerMessage(conn, ws.OpText, errorData(err.Error()))
		conn.Close()
		return
	}
	if op != ws.OpText {
		log.Error("registration request must be text data")
		wsutil.WriteServerMessage(conn, ws.OpText, errorData("text registration request required"))
		conn.Close()
		return
	}

	var registration Registration
	if err := json.Unmarshal(msg, &registration); err != nil {
		log.LogError(err, "decoding registration request")
		wsutil.WriteServerMessage(conn, op, errorData(err.Error()))
		conn.Close()
		return
	}

	log.Info("registering watch handler for kinds {{kinds}}", "kinds", registration.Kinds)
	h.hub.Subscribe(&connHandler{conn: conn, hub: h.hub}, registration.Kinds...)
}

type connHandler struct {
	conn net.Conn
	hub  *Hub
}

func (h *connHandler) HandleEvent(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.LogError(err, "encoding event")
		return
	}
	if err := wsutil.WriteServerMessage(h.conn, ws.OpText, data); err != nil {
		log.LogError(err, "cannot send event, closing connection")
		h.conn.Close()
		h.hub.Unsubscribe(h)
	}
}

func errorData(msg string) []byte {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return data
}
