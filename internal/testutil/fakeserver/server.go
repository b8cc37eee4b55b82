// Package fakeserver runs an in-process stand-in for the encryption service and
// the chat app server, for tests.
package fakeserver

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Mobo140/vupp-cli/internal/model"
	"github.com/gorilla/mux"
)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	users    map[string]string
	messages []model.Message
	nextID   int64
	listRaw  *string

	encryptStatus int
	sendStatus    int
	listStatus    int

	EncryptCalls  atomic.Int32
	LoginCalls    atomic.Int32
	RegisterCalls atomic.Int32
	ListCalls     atomic.Int32
	SendCalls     atomic.Int32
}

func New() *Server {
	s := &Server{users: map[string]string{}, nextID: 1}

	router := mux.NewRouter()
	router.HandleFunc("/encrypt", s.encrypt).Methods(http.MethodPost)
	router.HandleFunc("/api/register", s.register).Methods(http.MethodPost)
	router.HandleFunc("/api/login", s.login).Methods(http.MethodPost)
	router.HandleFunc("/api/messages", s.list).Methods(http.MethodGet)
	router.HandleFunc("/api/messages", s.send).Methods(http.MethodPost)

	s.Server = httptest.NewServer(router)

	return s
}

// Encrypted is the transform the fake encryption service applies.
func Encrypted(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// AddUser registers a user directly, password given in plaintext.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = Encrypted(password)
}

// AddMessage appends a message as if another client had posted it.
func (s *Server) AddMessage(sender, content string) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendLocked(sender, content)
}

func (s *Server) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Message(nil), s.messages...)
}

// SetEncryptStatus forces /encrypt to answer with status. 0 restores normal behaviour.
func (s *Server) SetEncryptStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encryptStatus = status
}

func (s *Server) SetSendStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStatus = status
}

func (s *Server) SetListStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listStatus = status
}

// SetListBody makes GET /api/messages return body verbatim.
func (s *Server) SetListBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listRaw = &body
}

func (s *Server) appendLocked(sender, content string) model.Message {
	msg := model.Message{
		ID:        s.nextID,
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	s.nextID++
	s.messages = append(s.messages, msg)

	return msg
}

func (s *Server) encrypt(w http.ResponseWriter, r *http.Request) {
	s.EncryptCalls.Add(1)

	s.mu.Lock()
	status := s.encryptStatus
	s.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"encrypted_password": Encrypted(req.Password)})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	s.RegisterCalls.Add(1)

	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[creds.Username]; ok {
		writeError(w, http.StatusConflict, "User already exists.")
		return
	}
	s.users[creds.Username] = creds.Password

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	s.LoginCalls.Add(1)

	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	s.mu.Lock()
	stored, ok := s.users[creds.Username]
	s.mu.Unlock()

	switch {
	case !ok:
		writeError(w, http.StatusUnauthorized, "User not found.")
	case stored != creds.Password:
		writeError(w, http.StatusUnauthorized, "Invalid password.")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"token": "fake-token"})
	}
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.ListCalls.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listStatus != 0 {
		writeError(w, s.listStatus, "Failed to fetch messages")
		return
	}

	if s.listRaw != nil {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(*s.listRaw))
		return
	}

	// a nil slice encodes as null, like the real server with an empty table
	writeJSON(w, http.StatusOK, s.messages)
}

func (s *Server) send(w http.ResponseWriter, r *http.Request) {
	s.SendCalls.Add(1)

	var msg model.OutgoingMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sendStatus != 0 {
		writeError(w, s.sendStatus, "Failed to store message")
		return
	}

	s.appendLocked(msg.Sender, msg.Content)
	w.WriteHeader(http.StatusCreated)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
