package testutils

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

// FakeServer is an in-process AnimalSpotter API rooted at URL + "/api".
// Images are served from URL + "/images/{file}"; "empty.jpg" has an empty body.
type FakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]string
	secret   []byte
	requests atomic.Int64
}

// NewFakeServer starts a FakeServer which is closed when the test ends.
func NewFakeServer(t *testing.T) *FakeServer {
	s := &FakeServer{
		users:  map[string]string{},
		secret: []byte("fake-server-secret"),
	}

	r := mux.NewRouter()
	r.Use(s.count)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users/signup", s.signUp).Methods(http.MethodPost)
	api.HandleFunc("/users/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/animals/all", s.authenticated(s.allAnimals)).Methods(http.MethodGet)
	api.HandleFunc("/animals/{name}", s.authenticated(s.animal)).Methods(http.MethodGet)
	r.HandleFunc("/images/{file}", s.image).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root to configure a client with.
func (s *FakeServer) BaseURL() string {
	return s.URL + "/api"
}

// Requests returns the number of requests received so far.
func (s *FakeServer) Requests() int64 {
	return s.requests.Load()
}

// RotateSecret invalidates every token issued so far.
func (s *FakeServer) RotateSecret() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secret = append(s.secret, '!')
}

func (s *FakeServer) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *FakeServer) signUp(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil || c.Username == "" || c.Password == "" {
		http.Error(w, "invalid credentials", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[c.Username]; exists {
		http.Error(w, "username taken", http.StatusConflict)
		return
	}
	s.users[c.Username] = c.Password
}

func (s *FakeServer) login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid credentials", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	password, exists := s.users[c.Username]
	secret := s.secret
	s.mu.Unlock()
	if !exists || password != c.Password {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  c.Username,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}).SignedString(secret)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"id": c.Username, "token": token, "userID": 1})
}

func (s *FakeServer) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		secret := s.secret
		s.mu.Unlock()

		_, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			slog.Debug("fake server rejected token", "error", err)
			http.Error(w, "invalid bearer token", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

func (s *FakeServer) allAnimals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, AnimalNames)
}

func (s *FakeServer) animal(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	path, ok := map[string]string{
		"Lion":     AnimalLionPath,
		"Zebra":    AnimalZebraPath,
		"Flamingo": AnimalFlamingoPath,
	}[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := MockData.ReadFile(path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *FakeServer) image(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if mux.Vars(r)["file"] == "empty.jpg" {
		return
	}
	_, _ = w.Write(ImageBytes)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
