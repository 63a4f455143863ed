package realtime

import (
	"log"
	"time"

	game_constants "Fivestack/constants/game"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

// Feed pushes freshly created listings to connected browsers over socket.io.
// Clients subscribe to the "party" or "lfg" room and receive a
// "listing_created" event for each new post, so browse pages can surface new
// listings without polling. Everything pushed here is public browse data; no
// auth is required to subscribe.
type Feed struct {
	server *socket.Server
}

func NewFeed() *Feed {
	return &Feed{}
}

// Start configures the socket.io server and mounts it on the router.
func (f *Feed) Start(router *gin.Engine) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// Higher ping interval and timeout to reduce network load and support
	// slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	f.server = socket.NewServer(nil, nil)
	f.server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		client.On("subscribe", func(args ...interface{}) {
			room, ok := feedRoom(args)
			if !ok {
				client.Emit("error", gin.H{"error": "unknown feed, expected 'party' or 'lfg'"})
				return
			}
			client.Join(socket.Room(room))
			client.Emit("subscribed", gin.H{"feed": room})
		})

		client.On("unsubscribe", func(args ...interface{}) {
			room, ok := feedRoom(args)
			if !ok {
				return
			}
			client.Leave(socket.Room(room))
		})
	})

	router.GET("/socket.io/*f", gin.WrapH(f.server.ServeHandler(c)))
	router.POST("/socket.io/*f", gin.WrapH(f.server.ServeHandler(c)))

	log.Println("Realtime feed started")
}

// ListingCreated broadcasts a new listing to the room for its kind. A nil or
// unstarted feed drops the event; creation must never fail because the feed is
// down.
func (f *Feed) ListingCreated(kind string, listing interface{}) {
	if f == nil || f.server == nil {
		return
	}
	f.server.To(socket.Room(kind)).Emit("listing_created", gin.H{
		"kind":    kind,
		"listing": listing,
	})
}

// Close shuts the socket.io server down.
func (f *Feed) Close() {
	if f != nil && f.server != nil {
		f.server.Close(nil)
	}
}

func feedRoom(args []interface{}) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	room, ok := args[0].(string)
	if !ok {
		return "", false
	}
	switch room {
	case game_constants.KindParty, game_constants.KindLFG:
		return room, true
	}
	return "", false
}
