package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CasterlyGit/Home/communication"
	"github.com/CasterlyGit/Home/navigation"
	"github.com/CasterlyGit/Home/registry"
	"github.com/CasterlyGit/Home/responder"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	res, err := responder.New(responder.DefaultPools(), responder.FallbackPersonaID, responder.WithDelay(0))
	if err != nil {
		t.Fatalf("responder.New failed: %v", err)
	}

	hub := communication.NewHub()
	manager := NewManager(registry.Default(), res, navigation.NewManager(hub.Observer()), hub)

	router := gin.New()
	router.GET("/health", manager.Health)
	api := router.Group("/api")
	{
		api.POST("/chat", manager.Chat)
		api.GET("/personas", manager.ListPersonas)
		api.GET("/personas/:id", manager.GetPersona)
		api.POST("/personality/update", manager.UpdatePersonality)
		api.POST("/sessions/:sessionId/navigation", manager.Navigate)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChat(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/chat", ChatRequest{
		Message:   "hello",
		PersonaID: "gym",
		SessionID: "sess-1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var resp ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.PersonaID != "gym" {
		t.Errorf("personaId = %q; want gym", resp.PersonaID)
	}
	if resp.SessionID != "sess-1" {
		t.Errorf("sessionId = %q; want sess-1", resp.SessionID)
	}
	if resp.Confidence != Confidence {
		t.Errorf("confidence = %v; want %v", resp.Confidence, Confidence)
	}
	if len(resp.SuggestedActions) != 3 || resp.SuggestedActions[0] != "Add to Personality" {
		t.Errorf("suggestedActions = %v", resp.SuggestedActions)
	}
	if len(resp.Traits) == 0 {
		t.Error("expected the persona's trait list in the response")
	}

	pool := responder.DefaultPools()["gym"].Greeting
	found := false
	for _, s := range pool {
		if s == resp.Message {
			found = true
		}
	}
	if !found {
		t.Errorf("message %q not drawn from the gym greeting pool", resp.Message)
	}
}

func TestChatGeneratesSessionID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/chat", ChatRequest{Message: "hi", PersonaID: "tutor"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var resp ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID == "" {
		t.Error("expected a generated sessionId when the client omits one")
	}
}

func TestChatValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		req  ChatRequest
		want int
	}{
		{"missing_message", ChatRequest{PersonaID: "tutor"}, http.StatusBadRequest},
		{"missing_persona", ChatRequest{Message: "hi"}, http.StatusBadRequest},
		{"unknown_persona", ChatRequest{Message: "hi", PersonaID: "nonexistent"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(t, router, "POST", "/api/chat", tt.req); w.Code != tt.want {
				t.Errorf("status = %d; want %d", w.Code, tt.want)
			}
		})
	}
}

func TestListAndGetPersonas(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/personas", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d; want 200", w.Code)
	}
	var list struct {
		Personas []struct {
			ID string `json:"id"`
		} `json:"personas"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Personas) != 3 {
		t.Fatalf("persona count = %d; want 3", len(list.Personas))
	}

	w = doJSON(t, router, "GET", "/api/personas/spiritual", nil)
	if w.Code != http.StatusOK {
		t.Errorf("get status = %d; want 200", w.Code)
	}

	w = doJSON(t, router, "GET", "/api/personas/pluto", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown persona status = %d; want 404", w.Code)
	}
}

func TestUpdatePersonalityAlwaysAcks(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "POST", "/api/personality/update", PersonalityUpdateRequest{
		PersonaID: "made-up",
		TraitID:   "imaginary",
		Action:    "increase",
		Intensity: 0.3,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success: true")
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("status field = %q; want OK", resp.Status)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
}

func TestNavigateFlow(t *testing.T) {
	router := newTestRouter(t)
	path := "/api/sessions/nav-test/navigation"

	w := doJSON(t, router, "POST", path, NavigationRequest{Action: "selectPersona", PersonaID: "tutor"})
	if w.Code != http.StatusOK {
		t.Fatalf("selectPersona status = %d; want 200 (%s)", w.Code, w.Body.String())
	}
	var snap navigation.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Stage != navigation.StagePlanetFocus {
		t.Errorf("stage = %v; want planet", snap.Stage)
	}

	w = doJSON(t, router, "POST", path, NavigationRequest{
		Action:   "selectTrait",
		TraitID:  "analytical",
		Position: &snap.TargetPosition,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("selectTrait status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "POST", path, NavigationRequest{Action: "backToSolar"})
	if w.Code != http.StatusOK {
		t.Fatalf("backToSolar status = %d; want 200", w.Code)
	}
}

func TestNavigateErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		req  NavigationRequest
		want int
	}{
		{"unknown_action", NavigationRequest{Action: "warp"}, http.StatusBadRequest},
		{"missing_persona_id", NavigationRequest{Action: "selectPersona"}, http.StatusBadRequest},
		{"unknown_persona", NavigationRequest{Action: "selectPersona", PersonaID: "pluto"}, http.StatusNotFound},
		{"back_from_solar", NavigationRequest{Action: "back"}, http.StatusConflict},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("/api/sessions/nav-err-%d/navigation", i)
			if w := doJSON(t, router, "POST", path, tt.req); w.Code != tt.want {
				t.Errorf("status = %d; want %d (%s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
