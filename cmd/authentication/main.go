// This is a **mock authentication service**, designed to provide JWT tokens
// for the CRM service. It stands in for the real identity provider during
// local development: the token it issues carries the email claim the login
// flow matches users by.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/kolab/crm/internal/crm/auth"
)

const (
	defaultPort   = "8081"       // Default port for the authentication service
	defaultSecret = "jwt_secret" // Secret for signing JWT
	defaultEmail  = "admin@kolab.local"
)

// TokenResponse represents the response structure
type TokenResponse struct {
	Token string `json:"token"`
}

// tokenHandler generates a JWT and returns it in JSON response. The email
// identity can be picked with the ?email= query parameter.
func tokenHandler(w http.ResponseWriter, r *http.Request) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultSecret
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		email = defaultEmail
	}

	token, err := auth.GenerateToken(email, secret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	resp := TokenResponse{Token: token}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		http.Error(w, "Failed to encode token", http.StatusInternalServerError)
	}
}

func main() {
	port := os.Getenv("AUTH_PORT")
	if port == "" {
		port = defaultPort
	}
	http.HandleFunc("/token", tokenHandler)

	log.Printf("Authentication service running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
