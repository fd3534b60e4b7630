package handlers

// handlers translate HTTP requests into core calls and map core errors to
// status codes. 400 for bad input, 404 for unknown personas, 409 for illegal
// navigation transitions. The core never fabricates a reply on failure; any
// user-facing fallback text is the client's business.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/CasterlyGit/Home/communication"
	"github.com/CasterlyGit/Home/models"
	"github.com/CasterlyGit/Home/navigation"
	"github.com/CasterlyGit/Home/registry"
	"github.com/CasterlyGit/Home/responder"
	"github.com/CasterlyGit/Home/sentry"
)

// Confidence is the fixed confidence reported with every chat reply. The
// backend does no real inference, so there is nothing to vary.
const Confidence = 0.85

// SuggestedActions is the fixed action list attached to every chat reply.
var SuggestedActions = []string{"Add to Personality", "Ask Follow-up", "Change Topic"}

type ChatContext struct {
	PreviousMessages []string    `json:"previousMessages"`
	UserPreferences  interface{} `json:"userPreferences"`
}

type ChatRequest struct {
	Message   string       `json:"message"`
	PersonaID string       `json:"personaId"`
	SessionID string       `json:"sessionId"`
	Context   *ChatContext `json:"context,omitempty"`
}

type ChatResponse struct {
	Message          string         `json:"message"`
	PersonaID        string         `json:"personaId"`
	SessionID        string         `json:"sessionId"`
	Traits           []models.Trait `json:"traits"`
	Confidence       float64        `json:"confidence"`
	SuggestedActions []string       `json:"suggestedActions"`
}

type PersonalityUpdateRequest struct {
	PersonaID string  `json:"personaId"`
	TraitID   string  `json:"traitId"`
	Action    string  `json:"action"`
	Intensity float64 `json:"intensity"`
}

type NavigationRequest struct {
	Action    string          `json:"action"`
	PersonaID string          `json:"personaId,omitempty"`
	TraitID   string          `json:"traitId,omitempty"`
	Position  *models.Vector3 `json:"position,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // demo app, any origin may connect
	},
}

type Manager struct {
	Registry  *registry.Registry
	Responder *responder.Responder
	Nav       *navigation.Manager
	Hub       *communication.Hub
}

func NewManager(reg *registry.Registry, res *responder.Responder, nav *navigation.Manager, hub *communication.Hub) *Manager {
	return &Manager{
		Registry:  reg,
		Responder: res,
		Nav:       nav,
		Hub:       hub,
	}
}

// Chat handles POST /api/chat.
func (manager *Manager) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if req.PersonaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "personaId is required"})
		return
	}

	persona, err := manager.Registry.Get(req.PersonaID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona not found"})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	ctx, span := sentry.StartChatTransaction(c.Request.Context(), persona.ID, sessionID)
	defer span.Finish()

	// Prior messages are accepted but never drive classification; they only
	// show up as debugging context.
	if req.Context != nil && len(req.Context.PreviousMessages) > 0 {
		sentry.AddBreadcrumb(ctx, &sentrygo.Breadcrumb{
			Category: "chat",
			Message:  fmt.Sprintf("%d prior messages in session", len(req.Context.PreviousMessages)),
			Level:    sentrygo.LevelDebug,
		})
	}

	reply, err := manager.Responder.Respond(ctx, req.Message, &persona)
	if err != nil {
		switch {
		case errors.Is(err, responder.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// client went away while we were "thinking"
			c.Status(http.StatusRequestTimeout)
		default:
			sentry.ReportError(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to select response"})
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Message:          reply,
		PersonaID:        persona.ID,
		SessionID:        sessionID,
		Traits:           persona.Traits,
		Confidence:       Confidence,
		SuggestedActions: SuggestedActions,
	})
}

// ListPersonas handles GET /api/personas.
func (manager *Manager) ListPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"personas": manager.Registry.All()})
}

// GetPersona handles GET /api/personas/:id.
func (manager *Manager) GetPersona(c *gin.Context) {
	persona, err := manager.Registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "persona not found"})
		return
	}
	c.JSON(http.StatusOK, persona)
}

// UpdatePersonality handles POST /api/personality/update.
//
// The catalogue is immutable, so this endpoint only acknowledges. It logs
// loudly so nobody mistakes the ack for an applied change.
func (manager *Manager) UpdatePersonality(c *gin.Context) {
	var req PersonalityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	log.WithFields(log.Fields{
		"persona":   req.PersonaID,
		"trait":     req.TraitID,
		"action":    req.Action,
		"intensity": req.Intensity,
	}).Warn("personality update acknowledged but not applied (catalogue is static)")

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Health handles GET /health.
func (manager *Manager) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Navigate handles POST /api/sessions/:sessionId/navigation, applying one
// camera event to the session's state machine.
func (manager *Manager) Navigate(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	var req NavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	machine := manager.Nav.Session(sessionID)

	var snapshot navigation.Snapshot
	var err error

	switch req.Action {
	case "selectPersona":
		if req.PersonaID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "personaId is required for selectPersona"})
			return
		}
		persona, lookupErr := manager.Registry.Get(req.PersonaID)
		if lookupErr != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "persona not found"})
			return
		}
		snapshot, err = machine.SelectPersona(persona)

	case "selectTrait":
		if req.TraitID == "" || req.Position == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "traitId and position are required for selectTrait"})
			return
		}
		snapshot, err = machine.SelectTrait(req.TraitID, *req.Position)

	case "back":
		snapshot, err = machine.Back()

	case "backToSolar":
		snapshot, err = machine.BackToSolar()

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}

	if err != nil {
		if errors.Is(err, navigation.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		sentry.ReportError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "navigation failed"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// NavigationSocket handles GET /ws/navigation. Clients pass ?sessionId= to
// follow one session's camera; without it they see every session.
func (manager *Manager) NavigationSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warnf("websocket upgrade failed: %v", err)
		return
	}

	sessionID := c.Query("sessionId")
	manager.Hub.Register(conn, sessionID)

	// Drain reads so we notice the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				manager.Hub.Unregister(conn)
				return
			}
		}
	}()
}
