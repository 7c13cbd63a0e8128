package api_test

import (
	"Microblog/internal/api/config"
	"Microblog/internal/model"
	"Microblog/internal/pkg/database"
	"Microblog/internal/pkg/logger"
	"Microblog/internal/pkg/redis"
	"Microblog/internal/pkg/storage"
	"Microblog/internal/wire"
	"bytes"
	"fmt"
	"io"
	log "log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLoggerWithWriter(io.Discard, log.LevelError)
	os.Exit(m.Run())
}

type testServer struct {
	router http.Handler
	userA  *model.User
	userB  *model.User
}

func newTestServer(t *testing.T, maxUpload int64) *testServer {
	t.Helper()
	db := database.CreateTempDB(t)

	a := &model.User{Name: "A", ApiKey: "test"}
	b := &model.User{Name: "B", ApiKey: "key-b"}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(b).Error)

	cfg := &config.Config{
		Media: config.MediaConfig{
			Driver:           storage.DriverLocal,
			UploadDir:        t.TempDir(),
			MaxFileSizeBytes: maxUpload,
			CleanupCron:      "@hourly",
			OrphanTTLHours:   24,
		},
	}
	app, err := wire.BuildApplication(&wire.Infra{
		DB:    db,
		Cache: redis.NewCache(nil),
		Store: storage.NewLocalStore(cfg.Media.UploadDir),
	}, cfg)
	require.NoError(t, err)

	return &testServer{router: app.Router, userA: a, userB: b}
}

func (s *testServer) do(t *testing.T, method, path, apiKey string, body io.Reader, contentType string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if apiKey != "" {
		req.Header.Set("Api-Key", apiKey)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "body: %s", w.Body.String())
	return w.Code, res
}

func (s *testServer) doJSON(t *testing.T, method, path, apiKey, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return s.do(t, method, path, apiKey, reader, "application/json")
}

func requireError(t *testing.T, res map[string]any, errorType, message string) {
	t.Helper()
	assert.Equal(t, false, res["result"])
	assert.Equal(t, errorType, res["error_type"])
	if message != "" {
		assert.Equal(t, message, res["error_message"])
	}
}

func TestPing(t *testing.T) {
	s := newTestServer(t, 1<<20)

	code, res := s.doJSON(t, http.MethodGet, "/api/ping", "", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, res["result"])
}

func TestFollowScenario(t *testing.T) {
	s := newTestServer(t, 1<<20)
	path := fmt.Sprintf("/api/users/%d/follow", s.userB.ID)

	code, res := s.doJSON(t, http.MethodPost, path, "test", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, map[string]any{"result": true}, res)

	code, res = s.doJSON(t, http.MethodPost, path, "test", "")
	require.Equal(t, http.StatusConflict, code)
	requireError(t, res, "Conflict", fmt.Sprintf("You have already subscribed to this user with id: %d", s.userB.ID))

	code, res = s.doJSON(t, http.MethodGet, "/api/users/me", "test", "")
	require.Equal(t, http.StatusOK, code)
	user := res["user"].(map[string]any)
	require.Equal(t, "A", user["name"])
	require.Equal(t, []any{map[string]any{"id": float64(s.userB.ID), "name": "B"}}, user["following"])
	require.Equal(t, []any{}, user["followers"])

	code, res = s.doJSON(t, http.MethodGet, fmt.Sprintf("/api/users/%d", s.userB.ID), "", "")
	require.Equal(t, http.StatusOK, code)
	user = res["user"].(map[string]any)
	require.Len(t, user["followers"], 1)

	code, res = s.doJSON(t, http.MethodDelete, path, "test", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, res["result"])

	code, res = s.doJSON(t, http.MethodDelete, path, "test", "")
	require.Equal(t, http.StatusNotFound, code)
	requireError(t, res, "NotFound", fmt.Sprintf("You are not subscribed to a user with id %d", s.userB.ID))
}

func TestFollowErrors(t *testing.T) {
	s := newTestServer(t, 1<<20)

	code, res := s.doJSON(t, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", s.userA.ID), "test", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "You cannot subscribe to yourself")

	code, res = s.doJSON(t, http.MethodPost, "/api/users/999/follow", "test", "")
	require.Equal(t, http.StatusNotFound, code)
	requireError(t, res, "NotFound", "User with id: 999 not found")

	code, res = s.doJSON(t, http.MethodPost, "/api/users/0/follow", "test", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "")

	code, res = s.doJSON(t, http.MethodGet, "/api/users/abc", "", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "")

	code, res = s.doJSON(t, http.MethodGet, "/api/users/999", "", "")
	require.Equal(t, http.StatusNotFound, code)
	requireError(t, res, "NotFound", "User with id: 999 not found")
}

func TestApiKeyValidation(t *testing.T) {
	s := newTestServer(t, 1<<20)

	code, res := s.doJSON(t, http.MethodGet, "/api/users/me", "", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "")

	code, res = s.doJSON(t, http.MethodGet, "/api/users/me", strings.Repeat("k", 31), "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "")

	code, res = s.doJSON(t, http.MethodGet, "/api/users/me", "unknown", "")
	require.Equal(t, http.StatusNotFound, code)
	requireError(t, res, "NotFound", "User with api_key: unknown not found")
}

func TestTweetLifecycle(t *testing.T) {
	s := newTestServer(t, 1<<20)

	code, res := s.doJSON(t, http.MethodPost, "/api/tweets", "test", `{"tweet_data":"hello","tweet_media_ids":[]}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, res["result"])
	tweetID := uint64(res["tweet_id"].(float64))
	require.NotZero(t, tweetID)

	// 结尾斜杠同样可用
	code, res = s.doJSON(t, http.MethodGet, "/api/tweets/", "", "")
	require.Equal(t, http.StatusOK, code)
	tweets := res["tweets"].([]any)
	require.Len(t, tweets, 1)
	tweet := tweets[0].(map[string]any)
	require.Equal(t, "hello", tweet["content"])
	require.Equal(t, []any{}, tweet["attachments"])
	require.Equal(t, map[string]any{"id": float64(s.userA.ID), "name": "A"}, tweet["author"])

	likePath := fmt.Sprintf("/api/tweets/%d/likes", tweetID)
	code, _ = s.doJSON(t, http.MethodPost, likePath, "key-b", "")
	require.Equal(t, http.StatusOK, code)
	code, res = s.doJSON(t, http.MethodPost, likePath, "key-b", "")
	require.Equal(t, http.StatusConflict, code)
	requireError(t, res, "Conflict", "You have already liked this tweet.")

	code, res = s.doJSON(t, http.MethodGet, "/api/tweets", "", "")
	require.Equal(t, http.StatusOK, code)
	tweet = res["tweets"].([]any)[0].(map[string]any)
	require.Equal(t, []any{map[string]any{"user_id": float64(s.userB.ID), "tweet_id": float64(tweetID)}}, tweet["likes"])

	code, _ = s.doJSON(t, http.MethodDelete, likePath, "key-b", "")
	require.Equal(t, http.StatusOK, code)
	code, res = s.doJSON(t, http.MethodDelete, likePath, "key-b", "")
	require.Equal(t, http.StatusNotFound, code)
	requireError(t, res, "NotFound", "Tweet_like does not exist.")

	code, res = s.doJSON(t, http.MethodPost, "/api/tweets/999/likes", "key-b", "")
	require.Equal(t, http.StatusNotFound, code)
	requireError(t, res, "NotFound", "Tweet with id: 999 does not exist.")

	deletePath := fmt.Sprintf("/api/tweets/%d", tweetID)
	code, res = s.doJSON(t, http.MethodDelete, deletePath, "key-b", "")
	require.Equal(t, http.StatusNotFound, code)
	requireError(t, res, "NotFound", "Tweet doesn't exist or doesn't belong to you")

	code, _ = s.doJSON(t, http.MethodDelete, deletePath, "test", "")
	require.Equal(t, http.StatusOK, code)

	code, res = s.doJSON(t, http.MethodGet, "/api/tweets", "", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []any{}, res["tweets"])
}

func TestCreateTweetValidation(t *testing.T) {
	s := newTestServer(t, 1<<20)

	cases := map[string]string{
		"too long":      fmt.Sprintf(`{"tweet_data":"%s","tweet_media_ids":[]}`, strings.Repeat("x", 501)),
		"missing field": `{"tweet_media_ids":[1]}`,
		"missing media": `{"tweet_data":"no media ids"}`,
		"zero media id": `{"tweet_data":"x","tweet_media_ids":[0]}`,
		"wrong type":    `{"tweet_data":42,"tweet_media_ids":[]}`,
		"broken json":   `{"tweet_data":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			code, res := s.doJSON(t, http.MethodPost, "/api/tweets", "test", body)
			require.Equal(t, http.StatusUnprocessableEntity, code)
			requireError(t, res, "ValidationFailure", "")
		})
	}

	code, res := s.doJSON(t, http.MethodPost, "/api/tweets", "test", `{"tweet_data":42,"tweet_media_ids":[]}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "Field [tweet_data] has invalid type")

	code, res = s.doJSON(t, http.MethodPost, "/api/tweets", "test", `{"tweet_data":"no media ids"}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "Field [TweetMediaIDs] failed on the 'required' rule")

	code, _ = s.doJSON(t, http.MethodPost, "/api/tweets", "test", fmt.Sprintf(`{"tweet_data":"%s","tweet_media_ids":[]}`, strings.Repeat("x", 500)))
	require.Equal(t, http.StatusOK, code)
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestMediaUploadAndAttach(t *testing.T) {
	s := newTestServer(t, 1<<20)

	body, contentType := multipartBody(t, "cat.png", []byte("png-bytes"))
	code, res := s.do(t, http.MethodPost, "/api/medias", "", body, contentType)
	require.Equal(t, http.StatusOK, code)
	mediaID := uint64(res["media_id"].(float64))
	require.NotZero(t, mediaID)

	code, _ = s.doJSON(t, http.MethodPost, "/api/tweets/", "test",
		fmt.Sprintf(`{"tweet_data":"look","tweet_media_ids":[%d]}`, mediaID))
	require.Equal(t, http.StatusOK, code)

	code, res = s.doJSON(t, http.MethodGet, "/api/tweets", "", "")
	require.Equal(t, http.StatusOK, code)
	tweet := res["tweets"].([]any)[0].(map[string]any)
	require.Equal(t, []any{"tweets_images/cat.png"}, tweet["attachments"])
}

func TestMediaUploadErrors(t *testing.T) {
	s := newTestServer(t, 1024)

	body, contentType := multipartBody(t, "notes.txt", []byte("text"))
	code, res := s.do(t, http.MethodPost, "/api/medias/", "", body, contentType)
	require.Equal(t, http.StatusUnsupportedMediaType, code)
	requireError(t, res, "UnsupportedMediaType", "File type not supported")

	body, contentType = multipartBody(t, "big.png", bytes.Repeat([]byte("x"), 4096))
	code, res = s.do(t, http.MethodPost, "/api/medias", "", body, contentType)
	require.Equal(t, http.StatusRequestEntityTooLarge, code)
	requireError(t, res, "PayloadTooLarge", "File too large. Maximum allowed size is 1KB")

	code, res = s.do(t, http.MethodPost, "/api/medias", "", strings.NewReader("nothing"), "multipart/form-data; boundary=xyz")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	requireError(t, res, "ValidationFailure", "")
}
