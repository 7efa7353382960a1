package main

import (
	"log"

	httpapi "bingo-arena/internal/api/http"
	"bingo-arena/internal/api/ws"
	"bingo-arena/internal/config"
	"bingo-arena/internal/room"
	"bingo-arena/internal/store"
)

func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm, cfg)
	r := httpapi.NewRouter(rm, hub)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
