package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"catatan/app/controllers"
	"catatan/app/dto"
	jwtutil "catatan/app/jwt"
	"catatan/app/middleware"
	"catatan/app/models"
	"catatan/app/repo"
	"catatan/app/services"
	"catatan/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Note{}))

	userSvc := services.NewUserService(repo.NewUserRepository(db))
	noteSvc := services.NewNoteService(repo.NewNoteRepository(db))
	sessions := services.NewSessionService(nil)
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "catatan", ExpMin: 5}

	h := router.NewRouter(
		controllers.NewHTTPController(),
		controllers.NewAuthController(userSvc, sessions, signer),
		controllers.NewNoteController(noteSvc),
		controllers.NewExportController(noteSvc, services.NewExporter()),
		&middleware.Auth{Signer: signer, Sessions: sessions},
	)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getAuthed(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func loginAs(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	resp := postJSON(t, srv.URL+"/register", "", dto.RegisterRequest{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/login", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	var tok dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	require.NotEmpty(t, tok.AccessToken)
	return tok.AccessToken
}

func TestRegisterLoginCreateListFlow(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "alice", "pw123")

	resp := postJSON(t, srv.URL+"/notes", token, dto.NoteRequest{
		Title: "Shopping", Category: models.CategoryPribadi, Content: "milk, eggs",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.False(t, created.IsFavorite)

	resp = getAuthed(t, srv.URL+"/notes", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notes []models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notes))
	resp.Body.Close()
	require.Len(t, notes, 1)
	assert.Equal(t, "Shopping", notes[0].Title)

	// Pin and confirm via the favorites filter.
	resp = postJSON(t, srv.URL+"/notes/pin", token, dto.PinRequest{ID: created.ID, Favorite: true})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = getAuthed(t, srv.URL+"/notes?favorites=true", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notes))
	resp.Body.Close()
	require.Len(t, notes, 1)
	assert.True(t, notes[0].IsFavorite)
}

func TestAuthFailures(t *testing.T) {
	srv := newTestServer(t)
	loginAs(t, srv, "alice", "pw123")

	resp := postJSON(t, srv.URL+"/login", "", dto.LoginRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/register", "", dto.RegisterRequest{Username: "alice", Password: "pw"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = getAuthed(t, srv.URL+"/notes", "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestUsersCannotTouchForeignNotes(t *testing.T) {
	srv := newTestServer(t)
	aliceToken := loginAs(t, srv, "alice", "pw123")
	bobToken := loginAs(t, srv, "bob", "pw456")

	resp := postJSON(t, srv.URL+"/notes", aliceToken, dto.NoteRequest{
		Title: "Private", Category: models.CategoryPribadi, Content: "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	// Bob sees nothing and his delete is a no-op on alice's data.
	resp = getAuthed(t, srv.URL+"/notes", bobToken)
	var bobNotes []models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bobNotes))
	resp.Body.Close()
	assert.Empty(t, bobNotes)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/notes/delete?id=%d", srv.URL, created.ID), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+bobToken)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = getAuthed(t, srv.URL+"/notes", aliceToken)
	var aliceNotes []models.Note
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&aliceNotes))
	resp.Body.Close()
	assert.Len(t, aliceNotes, 1)
}

func TestExportDownload(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "alice", "pw123")

	resp := postJSON(t, srv.URL+"/notes", token, dto.NoteRequest{
		Title: "Shopping", Category: models.CategoryPribadi, Content: "milk, eggs",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = getAuthed(t, srv.URL+"/notes/export?category=Semua", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	assert.Contains(t, string(body), "Shopping")
}

func TestValidationErrorsSurfaceAs400(t *testing.T) {
	srv := newTestServer(t)
	token := loginAs(t, srv, "alice", "pw123")

	resp := postJSON(t, srv.URL+"/notes", token, dto.NoteRequest{
		Title: "", Category: models.CategoryPribadi, Content: "body",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
