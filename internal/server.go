package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AshutoshKD/MonkeyChat/internal/db"
	"github.com/AshutoshKD/MonkeyChat/internal/middleware"
	"github.com/AshutoshKD/MonkeyChat/internal/routes"
	"github.com/AshutoshKD/MonkeyChat/internal/signaling"
	"golang.org/x/net/websocket"
)

func CreateAndListen(debug bool, host string, port int) {
	db := db.GetDB()
	defer db.Close()

	// Initialize handlers with dependencies
	registry := signaling.NewRegistry()
	h := routes.NewRouteHandler(db, registry)

	mux := http.NewServeMux()
	createRoutes(mux, h)

	// apply middlewares
	var handler http.Handler
	if debug {
		handler = middleware.DebugLogging(mux)
	} else {
		handler = mux
	}
	handler = middleware.BasicAuth(handler, db)

	// No blanket read/idle timeouts: the signaling websockets are long-lived
	// and a connection is considered gone only when its read fails.
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		ReadHeaderTimeout: 500 * time.Millisecond,
		Handler:           handler,
	}

	// graceful shutdown channel
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// run server
	go func() {
		log.Printf("Starting server on %s", server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
		log.Println("Stopped serving new connections.")
	}()

	// recieve stop signals
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("http shutdown error: %v", err)
	}
	log.Println("Graceful shutdown complete.")
}

// createRoutes creates the routing rules for the webserver
func createRoutes(mux *http.ServeMux, h *routes.RouteHandler) {
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	signalHandler := websocket.Server{
		Handshake: websocketHandshake,
		Handler:   h.SignalWS,
	}
	mux.Handle("GET /ws", signalHandler)

	mux.HandleFunc("GET /rooms", h.Rooms)
	mux.HandleFunc("POST /rooms/delete", h.DeleteRoom)
	mux.HandleFunc("GET /ice-servers", h.IceServers)
}

func websocketHandshake(_ *websocket.Config, _ *http.Request) error { return nil }
