package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-faker/faker/v4"
	"github.com/go-redis/redis"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campusmatch/backend/internal"
	"github.com/campusmatch/backend/internal/config"
	"github.com/campusmatch/backend/internal/datastore/media"
	redisClient "github.com/campusmatch/backend/internal/datastore/redis"
	"github.com/campusmatch/backend/internal/entity"
	"github.com/campusmatch/backend/pkg/http_util"
)

var dbSeq atomic.Int64

// TestServerResources holds everything a test needs to talk to an
// in-process server backed by throwaway stores.
type TestServerResources struct {
	ORM       *gorm.DB
	Redis     *redisClient.RedisClient
	UploadDir string
	BaseURL   string

	httpServer *httptest.Server
	miniRedis  *miniredis.Miniredis
}

// SetupTestServer starts the full HTTP stack on in-memory SQLite and
// miniredis. Postgres-backed runs live in the integration tests.
func SetupTestServer(t *testing.T) *TestServerResources {
	t.Helper()

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Like{}, &entity.Match{}, &entity.Message{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redisClient.NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	uploadDir, err := os.MkdirTemp("", "uploads")
	if err != nil {
		t.Fatalf("failed to create upload dir: %v", err)
	}
	mediaStore, err := media.NewStore(uploadDir)
	if err != nil {
		t.Fatalf("failed to create media store: %v", err)
	}

	cfg, err := config.NewConfig("TEST")
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}

	server := internal.NewServer(context.Background(), io.Discard, cfg, db, rdb, mediaStore)
	httpServer := httptest.NewServer(server.Handler())

	resources := &TestServerResources{
		ORM:        db,
		Redis:      rdb,
		UploadDir:  uploadDir,
		BaseURL:    httpServer.URL,
		httpServer: httpServer,
		miniRedis:  mr,
	}
	t.Cleanup(resources.Cleanup)

	return resources
}

func (r *TestServerResources) Cleanup() {
	if r.httpServer != nil {
		r.httpServer.Close()
	}
	os.RemoveAll(r.UploadDir)
}

// SignUpUser posts the signup form and returns the created user summary.
func SignUpUser(t *testing.T, baseURL string, fields map[string]string) entity.UserSummary {
	t.Helper()

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	resp, err := http.PostForm(baseURL+"/signup", form)
	if err != nil {
		t.Fatalf("Failed to send signup request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status code %d, got %d: %s", http.StatusOK, resp.StatusCode, body)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	response, err := http_util.DecodeBody(bodyBytes, entity.AuthResponse{})
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return response.User
}

// PostJSON sends a JSON body and returns the response. Caller closes it.
func PostJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	return resp
}

// GetJSON fetches url and decodes the body into v.
func GetJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if v != nil {
		if err := json.Unmarshal(bodyBytes, v); err != nil {
			t.Fatalf("Failed to decode response %s: %v", bodyBytes, err)
		}
	}
	return resp
}

// PopulateUsers inserts count faker-generated users with the given
// gender directly into the store.
func PopulateUsers(db *gorm.DB, count int, gender string) (users []entity.User, err error) {
	for i := 0; i < count; i++ {
		user := entity.User{
			FullName: faker.Name(),
			Email:    faker.Email(),
			Password: faker.Password(),
			Gender:   gender,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
