package handlers

import (
	"github.com/diozenio/ecommerce-app-backend/store"
	"github.com/diozenio/ecommerce-app-backend/synth"
)

// Handler carries the store and generator into each request handler, so
// tests can build a router around a substitute fixture.
type Handler struct {
	Store *store.Store
	Synth *synth.Generator
}

func New(s *store.Store, g *synth.Generator) *Handler {
	return &Handler{Store: s, Synth: g}
}
