package handlers

import (
	"encoding/json"
	"net/http"
)

const (
	ServiceMessage = "kakeibo household finance backend"
	TestMessage    = "API is working"
)

func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": ServiceMessage,
		})
	}
}

func APITest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"message": TestMessage,
		})
	}
}
