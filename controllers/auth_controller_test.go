package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Fivestack/middleware"
	models "Fivestack/models/postgres"
	"Fivestack/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func authToken(t *testing.T, userID uint) string {
	token, err := utils.GenerateToken(userID)
	require.NoError(t, err)
	return token
}

func jsonBody(body string) io.Reader {
	return strings.NewReader(body)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)

	router := gin.New()
	router.POST("/signup", Register(db))
	router.POST("/login", Login(db))
	router.GET("/auth/me", middleware.AuthRequired, Me(db))
	return router, db, mock
}

func hashFor(t *testing.T, password string) string {
	var u models.User
	require.NoError(t, u.SetPassword(password))
	return u.PasswordHash
}

func TestLoginSuccess(t *testing.T) {
	router, _, mock := newAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "riot_id"}).
			AddRow(1, "player@example.com", hashFor(t, "testpass123"), "Venter#EUW"))

	body := `{"email":"Player@Example.com","password":"testpass123"}`
	req, _ := http.NewRequest(http.MethodPost, "/login", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "player@example.com", response.User.Email)

	// The token must resolve back to the same account
	id, err := utils.ParseToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	router, _, mock := newAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash"}).
			AddRow(1, "player@example.com", hashFor(t, "testpass123")))

	body := `{"email":"player@example.com","password":"wrong-password"}`
	req, _ := http.NewRequest(http.MethodPost, "/login", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	router, _, mock := newAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	body := `{"email":"nobody@example.com","password":"whatever123"}`
	req, _ := http.NewRequest(http.MethodPost, "/login", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsBadRiotID(t *testing.T) {
	router, _, mock := newAuthRouter(t)

	body := `{"email":"new@example.com","password":"testpass123","riot_id":"no-tagline"}`
	req, _ := http.NewRequest(http.MethodPost, "/signup", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _, mock := newAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(1, "taken@example.com"))

	body := `{"email":"taken@example.com","password":"testpass123","riot_id":"Venter#EUW"}`
	req, _ := http.NewRequest(http.MethodPost, "/signup", jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeRequiresToken(t *testing.T) {
	router, _, mock := newAuthRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeReturnsProfile(t *testing.T) {
	router, _, mock := newAuthRouter(t)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "riot_id", "bio", "verified"}).
			AddRow(5, "me@example.com", "Venter#EUW", "igl, evenings only", true))

	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+authToken(t, 5))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		User struct {
			Email    string `json:"email"`
			RiotID   string `json:"riot_id"`
			Verified bool   `json:"verified"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "me@example.com", response.User.Email)
	assert.True(t, response.User.Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}
