package handler

import (
	"github.com/julienschmidt/httprouter"
)

type routeRegistrar interface {
	RegisterRoutes(router *httprouter.Router)
}

// API groups the service's handlers into one registrable unit.
type API struct {
	handlers []routeRegistrar
}

func NewAPI(handlers ...routeRegistrar) *API {
	return &API{handlers: handlers}
}

func (a *API) RegisterRoutes(router *httprouter.Router) {
	for _, h := range a.handlers {
		h.RegisterRoutes(router)
	}
}
