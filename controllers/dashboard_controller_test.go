package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Fivestack/middleware"
	"Fivestack/services/listings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ping", Ping)

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "pong", response.Message)
}

func TestMyListingsIncludesExpiredEntries(t *testing.T) {
	db, mock := newTestDB(t)
	svc := listings.NewService(db)

	router := gin.New()
	router.GET("/auth/my/listings", middleware.AuthRequired, MyListings(svc))

	now := time.Now()
	// Dashboard skips the visibility scope: the expired party still shows up
	mock.ExpectQuery(`SELECT (.+) FROM "party_invitations"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "created_at", "expires_at", "views", "status",
		}).AddRow("expiredparty", 3, now.Add(-2*time.Hour), now.Add(-time.Hour), 10, "Active"))
	mock.ExpectQuery(`SELECT (.+) FROM "lfg_requests"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "created_at", "expires_at", "views", "status",
		}).AddRow("cancelledlfg", 3, now, now.Add(time.Hour), 0, "Cancelled"))

	req, _ := http.NewRequest(http.MethodGet, "/auth/my/listings", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, 3))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Parties []struct {
			ID string `json:"id"`
		} `json:"parties"`
		LFGRequests []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"lfg_requests"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Parties, 1)
	assert.Equal(t, "expiredparty", response.Parties[0].ID)
	require.Len(t, response.LFGRequests, 1)
	assert.Equal(t, "Cancelled", response.LFGRequests[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
