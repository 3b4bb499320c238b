package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

const insertCardioQuery = `INSERT INTO cardio_sessions (user_id, date, activity_type, duration_minutes, distance, distance_unit, calories_burned, avg_heart_rate, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`

func newCardioRouter(h *Handler, userID int) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", withTestUserID(userID))
	group.GET("/cardio", h.ListCardioSessions)
	group.POST("/cardio", h.CreateCardioSession)
	group.DELETE("/cardio/:session_id", h.DeleteCardioSession)
	return router
}

func TestCreateCardioSessionInvalidDate(t *testing.T) {
	h, mock, cleanup := newTestHandler(t)
	defer cleanup()

	router := newCardioRouter(h, 42)
	resp := postJSON(t, router, "/api/cardio", map[string]any{
		"date":             "2024-13-40",
		"activity_type":    "running",
		"duration_minutes": 30,
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)

	out := decodeBody(t, resp)
	if out["message"] != "Invalid date format. Use YYYY-MM-DD" {
		t.Fatalf("unexpected message: %v", out["message"])
	}

	// Nothing reached the database.
	mustMeetExpectations(t, mock)
}

func TestCreateCardioSessionMissingFields(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()

	router := newCardioRouter(h, 42)
	resp := postJSON(t, router, "/api/cardio", map[string]any{
		"date": "2024-03-05",
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)

	out := decodeBody(t, resp)
	if out["message"] != "Date, activity type, and duration are required" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}

func TestCreateCardioSessionSuccess(t *testing.T) {
	h, mock, cleanup := newTestHandler(t)
	defer cleanup()

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	mock.
		ExpectQuery(regexp.QuoteMeta(insertCardioQuery)).
		WithArgs(42, date, "running", 30, 5.2, "km", nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))

	router := newCardioRouter(h, 42)
	resp := postJSON(t, router, "/api/cardio", map[string]any{
		"date":             "2024-03-05",
		"activity_type":    "running",
		"duration_minutes": 30,
		"distance":         5.2,
	})
	mustStatus(t, resp.Code, http.StatusCreated)

	out := decodeBody(t, resp)
	if out["date"] != "2024-03-05" {
		t.Fatalf("expected date to round-trip, got %v", out["date"])
	}
	if out["distance_unit"] != "km" {
		t.Fatalf("expected distance_unit to default to km, got %v", out["distance_unit"])
	}

	mustMeetExpectations(t, mock)
}

func TestListCardioSessions(t *testing.T) {
	h, mock, cleanup := newTestHandler(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, date, activity_type, duration_minutes, distance, distance_unit, calories_burned, avg_heart_rate, notes, created_at FROM cardio_sessions WHERE user_id = $1 ORDER BY date DESC, id DESC`)).
		WithArgs(42).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "user_id", "date", "activity_type", "duration_minutes", "distance", "distance_unit", "calories_burned", "avg_heart_rate", "notes", "created_at"}).
				AddRow(4, 42, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), "cycling", 45, 20.0, "km", 600, nil, nil, time.Now()).
				AddRow(3, 42, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "running", 30, nil, "km", nil, 150, "easy pace", time.Now()),
		)

	router := newCardioRouter(h, 42)
	req := httptest.NewRequest(http.MethodGet, "/api/cardio", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	expectHTTP200(t, resp.Code)

	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(out))
	}
	if out[0]["date"] != "2024-03-06" || out[1]["date"] != "2024-03-05" {
		t.Fatalf("unexpected session ordering: %v, %v", out[0]["date"], out[1]["date"])
	}

	mustMeetExpectations(t, mock)
}

func TestDeleteCardioSessionNotOwned(t *testing.T) {
	h, mock, cleanup := newTestHandler(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id FROM cardio_sessions WHERE id = $1 AND user_id = $2`)).
		WithArgs(3, 42).
		WillReturnError(sql.ErrNoRows)

	router := newCardioRouter(h, 42)
	req := httptest.NewRequest(http.MethodDelete, "/api/cardio/3", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	mustStatus(t, resp.Code, http.StatusNotFound)

	out := decodeBody(t, resp)
	if out["message"] != "Cardio session not found" {
		t.Fatalf("unexpected message: %v", out["message"])
	}

	mustMeetExpectations(t, mock)
}

func TestDeleteCardioSessionSuccess(t *testing.T) {
	h, mock, cleanup := newTestHandler(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id FROM cardio_sessions WHERE id = $1 AND user_id = $2`)).
		WithArgs(3, 42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM cardio_sessions WHERE id = $1`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := newCardioRouter(h, 42)
	req := httptest.NewRequest(http.MethodDelete, "/api/cardio/3", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	expectHTTP200(t, resp.Code)

	mustMeetExpectations(t, mock)
}
