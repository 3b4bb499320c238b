package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func newChatRouter(h *Handler, userID int) *gin.Engine {
	router := gin.New()
	router.POST("/api/chat", withTestUserID(userID), h.Chat)
	return router
}

func TestChatEmptyMessageSkipsUpstream(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()

	replier := &stubReplier{configured: true, reply: "unused"}
	h.chat = replier

	router := newChatRouter(h, 42)
	resp := postJSON(t, router, "/api/chat", map[string]string{"message": "   "})
	mustStatus(t, resp.Code, http.StatusBadRequest)

	if replier.calls != 0 {
		t.Fatalf("expected no upstream call, got %d", replier.calls)
	}
}

func TestChatNotConfigured(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()

	h.chat = &stubReplier{configured: false}

	router := newChatRouter(h, 42)
	resp := postJSON(t, router, "/api/chat", map[string]string{"message": "How often should I squat?"})
	mustStatus(t, resp.Code, http.StatusServiceUnavailable)
}

func TestChatSuccess(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()

	h.chat = &stubReplier{configured: true, reply: "Twice a week is a solid start."}

	router := newChatRouter(h, 42)
	resp := postJSON(t, router, "/api/chat", map[string]string{"message": "How often should I squat?"})
	expectHTTP200(t, resp.Code)

	out := decodeBody(t, resp)
	if out["response"] != "Twice a week is a solid start." {
		t.Fatalf("unexpected response: %v", out["response"])
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()

	h.chat = &stubReplier{configured: true, err: errors.New("upstream timeout")}

	router := newChatRouter(h, 42)
	resp := postJSON(t, router, "/api/chat", map[string]string{"message": "How often should I squat?"})
	mustStatus(t, resp.Code, http.StatusInternalServerError)

	out := decodeBody(t, resp)
	if out["message"] != "Failed to get AI response" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}
