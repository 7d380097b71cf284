package client_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jokoapp/joko-go/pkg/jokosdk"
	"github.com/jokoapp/joko-go/pkg/sessionx/drivers/sqlite"
)

/*
 * Common helpers for client end-to-end tests. The backend is an in-process
 * httptest server that issues real signed JWTs and serves a small fixed
 * catalog, so every scenario exercises the SDK, the session guard and the
 * SQLite session store together.
 */

const (
	testAccountID = "abc"
	testPassword  = "secret1"
	testUserID    = 42
)

var signingKey = []byte("e2e-signing-key")

// backend is the fake joko server. Request counts are atomic so tests can
// assert how many times the SDK actually hit an endpoint.
type backend struct {
	srv *httptest.Server

	tokenTTL time.Duration

	// When set, every authenticated endpoint answers with this status and
	// an empty body. Used to simulate revoked sessions.
	rejectWith atomic.Int32

	loginCount atomic.Int32
	shopCount  atomic.Int32
	quizCount  atomic.Int32
}

func newBackend(t *testing.T) *backend {
	t.Helper()

	b := &backend{tokenTTL: time.Hour}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", b.handleLogin)
	mux.HandleFunc("GET /shop/all", b.authenticated(b.handleShop))
	mux.HandleFunc("GET /quiz/ids", b.authenticated(b.handleQuizIDs))
	mux.HandleFunc("GET /quiz/{id}", b.authenticated(b.handleQuiz))
	mux.HandleFunc("POST /quiz/submit", b.authenticated(b.handleQuizSubmit))
	mux.HandleFunc("GET /user/info", b.authenticated(b.handleUserInfo))

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *backend) URL() string { return b.srv.URL }

// mintAccessToken issues a signed token carrying the userId claim the way
// the production backend does.
func mintAccessToken(t *testing.T, userID int64, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "session",
		"exp": time.Now().Add(ttl).Unix(),
	}
	if userID > 0 {
		claims["userId"] = userID
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	require.NoError(t, err)
	return token
}

func (b *backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	b.loginCount.Add(1)

	var body struct {
		AccountID string `json:"accountId"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
		body.AccountID != testAccountID || body.Password != testPassword {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "invalid_credentials",
			"message": "account id or password is wrong",
		})
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    "session",
		"userId": testUserID,
		"exp":    now.Add(b.tokenTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"accessToken":           access,
		"accessTokenExpiresAt":  now.Add(b.tokenTTL).Format(time.RFC3339),
		"refreshToken":          "opaque-refresh-" + strconv.FormatInt(now.UnixNano(), 10),
		"refreshTokenExpiresAt": now.Add(14 * 24 * time.Hour).Format(time.RFC3339),
	})
}

// authenticated verifies the bearer token signature and expiry before
// delegating, or answers with the configured rejection status.
func (b *backend) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status := b.rejectWith.Load(); status != 0 {
			w.WriteHeader(int(status))
			return
		}

		raw, found := bearerToken(r)
		if !found {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		_, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return signingKey, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix {
		return "", false
	}
	return auth[len(prefix):], true
}

func (b *backend) handleShop(w http.ResponseWriter, r *http.Request) {
	b.shopCount.Add(1)
	_, _ = w.Write([]byte(`[
		{"rank":"S","items":[{"itemId":1,"name":"crown","price":500,"imageUrl":null}]},
		{"rank":"A","items":[
			{"itemId":2,"name":"scroll","price":120,"imageUrl":null},
			{"itemId":3,"name":"brush","price":80,"imageUrl":null}
		]}
	]`))
}

func (b *backend) handleQuizIDs(w http.ResponseWriter, r *http.Request) {
	b.quizCount.Add(1)
	_, _ = w.Write([]byte(`[7]`))
}

func (b *backend) handleQuiz(w http.ResponseWriter, r *http.Request) {
	b.quizCount.Add(1)
	_, _ = fmt.Fprintf(w, `{"id":%s,"question":"Who founded Goryeo?","options":["Wang Geon","Yi Seong-gye"],"coin":50,"imageUrl":null}`, r.PathValue("id"))
}

func (b *backend) handleQuizSubmit(w http.ResponseWriter, r *http.Request) {
	b.quizCount.Add(1)
	if r.URL.Query().Get("id") != strconv.Itoa(testUserID) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	_, _ = w.Write([]byte(`{"correct":true,"correctAnswer":"Wang Geon","explanation":"Founded Goryeo in 918.","coinReward":50}`))
}

func (b *backend) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprintf(w, `{"userId":%s,"coin":1200,"era":"goryeo","job":"scholar","rank":"A"}`, r.URL.Query().Get("userId"))
}

// newFileSession builds a Session backed by a SQLite store in dir, so tests
// can reopen the same file and prove the session survives a restart.
func newFileSession(t *testing.T, baseURL, dir string, opts ...jokosdk.SessionOption) (*jokosdk.Session, *sqlite.Store) {
	t.Helper()

	store, err := sqlite.NewStore(filepath.Join(dir, "session.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return jokosdk.NewSession(jokosdk.NewClient(baseURL), store, opts...), store
}
