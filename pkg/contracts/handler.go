package contracts

import "github.com/julienschmidt/httprouter"

// Handler is anything that can attach its routes to the shared router.
// The application shell wires middleware around the router as a whole.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
