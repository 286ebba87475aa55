package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"yatube/internal/db"
	"yatube/internal/models"
	"yatube/internal/testutil"
	"yatube/internal/utils"

	"github.com/stretchr/testify/require"
)

func TestSignupCreatesUserAndLogsIn(t *testing.T) {
	db.DB = testutil.NewTestDB(t)
	r := newTestRouter(t, nil)

	w := postForm(r, "/auth/signup", url.Values{
		"username": {"anna"},
		"email":    {"anna@example.com"},
		"password": {"hunter22"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	require.NotEmpty(t, w.Header().Get("Set-Cookie"), "signup starts a session")

	var user models.User
	require.NoError(t, db.DB.Where("username = ?", "anna").First(&user).Error)
	require.NotEqual(t, "hunter22", user.Password, "password is stored hashed")
	require.True(t, utils.CheckPasswordHash("hunter22", user.Password))

	// Duplicate username bounces back to the form
	w = postForm(r, "/auth/signup", url.Values{
		"username": {"anna"},
		"email":    {"other@example.com"},
		"password": {"hunter22"},
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "auth/signup.html", w.Body.String())
}

func TestSignupValidation(t *testing.T) {
	db.DB = testutil.NewTestDB(t)
	r := newTestRouter(t, nil)

	cases := []url.Values{
		{"username": {""}, "email": {"a@example.com"}, "password": {"hunter22"}},
		{"username": {"anna"}, "email": {"not-an-email"}, "password": {"hunter22"}},
		{"username": {"anna"}, "email": {"a@example.com"}, "password": {"short"}},
	}
	for _, form := range cases {
		w := postForm(r, "/auth/signup", form)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	db.DB.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestLogin(t *testing.T) {
	db.DB = testutil.NewTestDB(t)

	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)
	require.NoError(t, db.DB.Create(&models.User{
		Username: "anna", Email: "anna@example.com", Password: hash,
	}).Error)

	r := newTestRouter(t, nil)

	// Wrong password re-renders the form
	w := postForm(r, "/auth/login", url.Values{"username": {"anna"}, "password": {"wrong"}})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "auth/login.html", w.Body.String())

	// Success honors the next parameter
	w = postForm(r, "/auth/login", url.Values{
		"username": {"anna"}, "password": {"hunter22"}, "next": {"/follow"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/follow", w.Header().Get("Location"))

	// Off-site next targets are ignored
	w = postForm(r, "/auth/login", url.Values{
		"username": {"anna"}, "password": {"hunter22"}, "next": {"//evil.example.com"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}
