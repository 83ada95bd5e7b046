// Package api exposes the HTTP/WebSocket surface that creates solver
// sessions and lets a client drive them, grounded on the original
// backend's Gin handler layer.
package api

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/crossplay/wfc/internal/auth"
	"github.com/crossplay/wfc/internal/middleware"
	"github.com/crossplay/wfc/internal/puzzle"
	"github.com/crossplay/wfc/internal/realtime"
	"github.com/crossplay/wfc/internal/worker"
	"github.com/crossplay/wfc/pkg/wfc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxGridDimension = 50
	minGridDimension = 1
)

// Handlers owns every session currently live on this process. A
// session pairs one worker goroutine (and its solver) with the token
// that grants access to it.
type Handlers struct {
	hub         *realtime.Hub
	authService *auth.AuthService
	words       *puzzle.WordListService

	mu       sync.RWMutex
	sessions map[string]*worker.Worker
}

// NewHandlers wires a Handlers against a running Hub. The caller is
// responsible for starting hub.Run in its own goroutine beforehand.
func NewHandlers(hub *realtime.Hub, authService *auth.AuthService) *Handlers {
	return &Handlers{
		hub:         hub,
		authService: authService,
		words:       puzzle.NewWordListService(),
		sessions:    make(map[string]*worker.Worker),
	}
}

// CreateSessionRequest describes the grid a new session should solve.
type CreateSessionRequest struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Alphabet string   `json:"alphabet"`
	Words    []string `json:"words"`
}

// CreateSessionResponse is returned once the session's solver and
// worker goroutine are ready to accept commands.
type CreateSessionResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// CreateSession allocates a crossword of the requested dimensions,
// starts a worker for it, and mints a bearer token scoped to the new
// session id.
func (h *Handlers) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Width < minGridDimension || req.Height < minGridDimension ||
		req.Width > maxGridDimension || req.Height > maxGridDimension {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be between 1 and 50"})
		return
	}

	alphabet := req.Alphabet
	if alphabet == "" {
		alphabet = wfc.EnglishAlphabet
	}

	words := req.Words
	if len(words) == 0 {
		words = h.words.AllWords()
	}

	dict := wfc.NewDictionary(words, wfc.DictionaryConfig{Alphabet: alphabet})
	crossword := wfc.NewCrossword(req.Width, req.Height, dict)
	solver := wfc.NewSolver(crossword, rand.New(rand.NewSource(time.Now().UnixNano())))
	w := worker.New(solver)
	go w.Run()

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = w
	h.mu.Unlock()
	middleware.SessionOpened()

	token, err := h.authService.GenerateToken(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mint session token"})
		return
	}

	c.JSON(http.StatusCreated, CreateSessionResponse{ID: id, Token: token})
}

// ServeSessionWS upgrades the connection to a websocket and wires it to
// the session's worker. Authorization is via a query-string token
// rather than a header since browsers cannot set arbitrary headers on
// the WebSocket handshake.
func (h *Handlers) ServeSessionWS(c *gin.Context) {
	sessionID := c.Param("id")

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if claims.SessionID != sessionID {
		c.JSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this session"})
		return
	}

	h.mu.RLock()
	w, ok := h.sessions[sessionID]
	h.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	if err := realtime.ServeWs(h.hub, c.Writer, c.Request, sessionID, w); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
	}
}

// CloseSession tears down a session's worker and frees it. The worker
// goroutine exits once its Commands channel is closed.
func (h *Handlers) CloseSession(c *gin.Context) {
	sessionID := c.Param("id")

	claims := middleware.GetAuthUser(c)
	if claims == nil || claims.SessionID != sessionID {
		c.JSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this session"})
		return
	}

	h.mu.Lock()
	w, ok := h.sessions[sessionID]
	if ok {
		delete(h.sessions, sessionID)
	}
	h.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	close(w.Commands)
	middleware.SessionClosed()
	c.Status(http.StatusNoContent)
}
