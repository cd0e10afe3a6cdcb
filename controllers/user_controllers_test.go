package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/store"
)

func authRouter(s *store.Store) *gin.Engine {
	ctrl := NewUserController(s, time.Hour)
	r := gin.New()
	r.POST("/auth/register", ctrl.Register)
	r.POST("/auth/login", ctrl.Login)
	authed := r.Group("/", middlewares.AuthMiddleware())
	authed.POST("/auth/logout", ctrl.Logout)
	authed.GET("/profile", ctrl.GetProfile)
	return r
}

type authPayload struct {
	Data struct {
		Token string `json:"token"`
		Hotel struct {
			ID     uint   `json:"id"`
			OrgID  string `json:"org_id"`
			Status string `json:"status"`
		} `json:"hotel"`
	} `json:"data"`
}

func TestRegisterCreatesHotelAndAdmin(t *testing.T) {
	s := newTestStore(t)
	r := authRouter(s)

	w := doJSON(t, r, "POST", "/auth/register", gin.H{
		"hotel_name": "Grand Lane",
		"email":      "owner@grandlane.test",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.True(t, strings.HasPrefix(resp.Data.Hotel.OrgID, "HTL-"))
	assert.Equal(t, models.HotelStatusPending, resp.Data.Hotel.Status)

	user, err := s.Users.ByEmail("owner@grandlane.test")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be hashed")
	require.NotNil(t, user.HotelID)

	// The onboarding record exists at the registration step.
	progress, err := s.Onboarding.Get(*user.HotelID)
	require.NoError(t, err)
	assert.Equal(t, models.StepRegistration, progress.Step)

	// Re-registering the same email conflicts.
	w = doJSON(t, r, "POST", "/auth/register", gin.H{
		"hotel_name": "Other", "email": "owner@grandlane.test", "password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginAndProfile(t *testing.T) {
	s := newTestStore(t)
	r := authRouter(s)

	w := doJSON(t, r, "POST", "/auth/register", gin.H{
		"hotel_name": "Grand Lane",
		"email":      "owner@grandlane.test",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/auth/login", gin.H{
		"email": "owner@grandlane.test", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "POST", "/auth/login", gin.H{
		"email": "owner@grandlane.test", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	pw := httptest.NewRecorder()
	r.ServeHTTP(pw, req)
	assert.Equal(t, http.StatusOK, pw.Code)

	// Without a token the profile is closed.
	req = httptest.NewRequest("GET", "/profile", nil)
	pw = httptest.NewRecorder()
	r.ServeHTTP(pw, req)
	assert.Equal(t, http.StatusUnauthorized, pw.Code)
}

func TestSuspendedHotelCannotLogIn(t *testing.T) {
	s := newTestStore(t)
	r := authRouter(s)

	w := doJSON(t, r, "POST", "/auth/register", gin.H{
		"hotel_name": "Grand Lane",
		"email":      "owner@grandlane.test",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user, err := s.Users.ByEmail("owner@grandlane.test")
	require.NoError(t, err)
	require.NoError(t, s.Hotels.Update(*user.HotelID, map[string]interface{}{
		"status": models.HotelStatusSuspended,
	}))

	w = doJSON(t, r, "POST", "/auth/login", gin.H{
		"email": "owner@grandlane.test", "password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	s := newTestStore(t)
	r := authRouter(s)

	w := doJSON(t, r, "POST", "/auth/register", gin.H{
		"hotel_name": "Grand Lane",
		"email":      "owner@grandlane.test",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token := resp.Data.Token

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	require.Equal(t, http.StatusOK, lw.Code)

	// The token is dead from here on.
	req = httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	pw := httptest.NewRecorder()
	r.ServeHTTP(pw, req)
	assert.Equal(t, http.StatusUnauthorized, pw.Code)
}
