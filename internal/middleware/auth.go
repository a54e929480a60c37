package middleware

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/AshutoshKD/MonkeyChat/internal/crypto"
	"github.com/AshutoshKD/MonkeyChat/internal/dal"
	"golang.org/x/net/websocket"
)

type contextKey string

const authKey contextKey = "authorization"

// Principal is the identity resolved from basic auth: the public username and
// the numeric users-table id. The zero value means anonymous.
type Principal struct {
	Username string
	UserID   int64
}

// BasicAuth is a middleware that mandates basic auth is present in the headers and validates.
// /register and /health are open. /ws accepts anonymous clients: credentials are
// resolved when present, but a missing or invalid header still upgrades, carrying
// the zero Principal. Only durable room bookkeeping needs the real identity.
func BasicAuth(next http.Handler, db *sql.DB) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// whitelisted endpoints
		if r.URL.Path == "/register" || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := resolvePrincipal(r, db)

		if r.URL.Path == "/ws" {
			if err != nil {
				log.Printf("anonymous websocket client: %v", err)
				principal = Principal{}
			}
			ctx := context.WithValue(r.Context(), authKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if err != nil {
			log.Println(fmt.Errorf("auth error: %w", err))
			writeAuthError(w)
			return
		}

		ctx := context.WithValue(r.Context(), authKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolvePrincipal(r *http.Request, db *sql.DB) (Principal, error) {
	username, password, ok := r.BasicAuth()
	username = strings.Trim(username, " ")
	if !ok {
		return Principal{}, fmt.Errorf("no credentials")
	}

	user, err := dal.GetUserByUsername(db, username)
	if err != nil {
		return Principal{}, err
	}
	if err := crypto.CompareHashAndPassword(user.Password, password); err != nil {
		return Principal{}, fmt.Errorf("bad password for %s", username)
	}
	return Principal{Username: user.Name, UserID: user.Id}, nil
}

func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="basic-client"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// GetPrincipal is used in endpoint handlers to retrieve the identity of the client
// that created the request.
func GetPrincipal(r *http.Request) Principal {
	principal, _ := r.Context().Value(authKey).(Principal)
	return principal
}

// GetPrincipalWS retrieves the identity resolved during the upgrade handshake.
func GetPrincipalWS(ws *websocket.Conn) Principal {
	return GetPrincipal(ws.Request())
}
