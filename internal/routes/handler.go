// package routes contains the exposed API endpoints
package routes

import (
	"database/sql"

	"github.com/AshutoshKD/MonkeyChat/internal/signaling"
)

// RouteHandler provides the dependencies for any endpoint, and is the reciever of the endpoint handling functions
type RouteHandler struct {
	db       *sql.DB
	registry *signaling.Registry
}

// NewRouteHandler creates the reciever for all endpoint handling functions
func NewRouteHandler(db *sql.DB, registry *signaling.Registry) *RouteHandler {
	return &RouteHandler{
		db:       db,
		registry: registry,
	}
}
