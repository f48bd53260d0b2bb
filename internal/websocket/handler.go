package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches a connection to a chat session and blocks until it closes.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string, handler MessageHandler) {
	client := &Client{Hub: hub, Conn: c, SessionID: sessionID, Send: make(chan []byte, 256), handler: handler}
	client.Hub.Register(client)

	go client.writePump()
	client.readPump()
}
