package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr string

	MaxPlayers int
	MinPlayers int

	RoomNameMin   int
	RoomNameMax   int
	PlayerNameMin int
	PlayerNameMax int
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		HTTPAddr:      getenvStr("HTTP_ADDR", ":8080"),
		MaxPlayers:    getenvInt("MAX_PLAYERS", 4),
		MinPlayers:    getenvInt("MIN_PLAYERS", 2),
		RoomNameMin:   getenvInt("ROOM_NAME_MIN", 2),
		RoomNameMax:   getenvInt("ROOM_NAME_MAX", 50),
		PlayerNameMin: getenvInt("PLAYER_NAME_MIN", 2),
		PlayerNameMax: getenvInt("PLAYER_NAME_MAX", 30),
	}
}
