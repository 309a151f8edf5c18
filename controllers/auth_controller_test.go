package controllers_test

import (
	"net/http"
	"testing"

	"go-postgres-ziswaf/config"
	"go-postgres-ziswaf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginSetsTokenCookie(t *testing.T) {
	r, _ := setupApp(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{Nama: "Admin", Email: "admin@ziswaf.local", PasswordHash: string(hashed), Role: "admin", IsActive: true}
	require.NoError(t, config.DB.Create(&user).Error)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@ziswaf.local",
		"password": "rahasia1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tokenCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie, "login harus memasang cookie token")
	assert.NotEmpty(t, tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)
	assert.Equal(t, 3600, tokenCookie.MaxAge)

	// cookie hasil login bisa dipakai ke route terlindungi
	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(tokenCookie)
	w2 := doRaw(t, r, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	// password hash tidak boleh bocor di response
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := setupApp(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia1"), bcrypt.DefaultCost)
	user := models.User{Nama: "Admin", Email: "admin@ziswaf.local", PasswordHash: string(hashed), Role: "admin", IsActive: true}
	require.NoError(t, config.DB.Create(&user).Error)

	w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@ziswaf.local",
		"password": "salah",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "tidak-ada@ziswaf.local",
		"password": "rahasia1",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	r, _ := setupApp(t)

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tokenCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			tokenCookie = c
		}
	}
	require.NotNil(t, tokenCookie)
	assert.Empty(t, tokenCookie.Value)
	assert.Less(t, tokenCookie.MaxAge, 0)
}
