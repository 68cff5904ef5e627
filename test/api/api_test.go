package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmatch/backend/internal/entity"
	"github.com/campusmatch/backend/test/helper"
)

func signupAlice(t *testing.T, baseURL string) entity.UserSummary {
	return helper.SignUpUser(t, baseURL, map[string]string{
		"fullName":   "Alice",
		"college":    "State",
		"email":      "alice@example.com",
		"password":   "password123",
		"bio":        "hello",
		"gender":     "Woman",
		"preference": "Men",
		"age":        "24",
		"interests":  "hiking,films",
	})
}

func signupBob(t *testing.T, baseURL string) entity.UserSummary {
	return helper.SignUpUser(t, baseURL, map[string]string{
		"fullName":   "Bob",
		"college":    "Tech",
		"email":      "bob@example.com",
		"password":   "password123",
		"gender":     "Man",
		"preference": "Women",
		"age":        "26",
	})
}

func TestEndToEndMatchFlow(t *testing.T) {
	res := helper.SetupTestServer(t)

	alice := signupAlice(t, res.BaseURL)
	bob := signupBob(t, res.BaseURL)
	require.NotZero(t, alice.ID)
	require.NotZero(t, bob.ID)

	// browsing as Alice (preference Men) shows only Bob
	var candidates []entity.User
	resp := helper.GetJSON(t, fmt.Sprintf("%s/users?userId=%d", res.BaseURL, alice.ID), &candidates)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, candidates, 1)
	assert.Equal(t, bob.ID, candidates[0].ID)

	// Alice likes Bob: no match yet
	resp = helper.PostJSON(t, res.BaseURL+"/like", entity.LikeRequest{LikerID: alice.ID, LikedID: bob.ID})
	var likeResp entity.LikeResponse
	decodeAndClose(t, resp, &likeResp)
	assert.False(t, likeResp.Match)

	// Bob likes Alice back: match
	resp = helper.PostJSON(t, res.BaseURL+"/like", entity.LikeRequest{LikerID: bob.ID, LikedID: alice.ID})
	decodeAndClose(t, resp, &likeResp)
	assert.True(t, likeResp.Match)

	// match list for Alice includes Bob
	var matches []entity.MatchProfile
	resp = helper.GetJSON(t, fmt.Sprintf("%s/matches?userId=%d", res.BaseURL, alice.ID), &matches)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, matches, 1)
	assert.Equal(t, bob.ID, matches[0].UserID)
	assert.Equal(t, "Bob", matches[0].FullName)
	matchID := matches[0].MatchID

	// Alice sends a message
	resp = helper.PostJSON(t, res.BaseURL+"/send_message", entity.SendMessageRequest{
		MatchID:     matchID,
		SenderID:    alice.ID,
		MessageText: "hi",
	})
	var status entity.StatusResponse
	decodeAndClose(t, resp, &status)
	assert.Equal(t, "success", status.Status)

	// and it comes back, alone and in order
	var messages []entity.Message
	resp = helper.GetJSON(t, fmt.Sprintf("%s/messages/%d", res.BaseURL, matchID), &messages)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].MessageText)
	assert.Equal(t, alice.ID, messages[0].SenderID)
}

func TestLikeIsIdempotentOverHTTP(t *testing.T) {
	res := helper.SetupTestServer(t)

	alice := signupAlice(t, res.BaseURL)
	bob := signupBob(t, res.BaseURL)

	var likeResp entity.LikeResponse
	for i := 0; i < 2; i++ {
		resp := helper.PostJSON(t, res.BaseURL+"/like", entity.LikeRequest{LikerID: alice.ID, LikedID: bob.ID})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeAndClose(t, resp, &likeResp)
		assert.False(t, likeResp.Match)
	}

	var likes int64
	require.NoError(t, res.ORM.Model(&entity.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(1), likes)
}

func TestLoginFlow(t *testing.T) {
	res := helper.SetupTestServer(t)

	alice := signupAlice(t, res.BaseURL)

	resp := helper.PostJSON(t, res.BaseURL+"/login", entity.LoginRequest{Email: "alice@example.com", Password: "password123"})
	var auth entity.AuthResponse
	decodeAndClose(t, resp, &auth)
	assert.Equal(t, "success", auth.Status)
	assert.Equal(t, alice.ID, auth.User.ID)
	assert.Equal(t, "Alice", auth.User.FullName)

	resp = helper.PostJSON(t, res.BaseURL+"/login", entity.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = helper.PostJSON(t, res.BaseURL+"/login", entity.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSignupRequiresFields(t *testing.T) {
	res := helper.SetupTestServer(t)

	resp, err := http.PostForm(res.BaseURL+"/signup", map[string][]string{
		"fullName": {"NoEmail"},
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupStoresPhoto(t *testing.T) {
	res := helper.SetupTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"fullName": "Carol",
		"email":    "carol@example.com",
		"password": "password123",
		"gender":   "Woman",
	} {
		require.NoError(t, writer.WriteField(k, v))
	}
	part, err := writer.CreateFormFile("photo", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(res.BaseURL+"/signup", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth entity.AuthResponse
	decodeAndClose(t, resp, &auth)
	require.NotZero(t, auth.User.ID)

	var profile entity.User
	helper.GetJSON(t, fmt.Sprintf("%s/profile/%d", res.BaseURL, auth.User.ID), &profile)
	require.NotEmpty(t, profile.ProfileImageURL)

	stored, err := os.ReadFile(filepath.Join(res.UploadDir, filepath.Base(profile.ProfileImageURL)))
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-png", string(stored))
}

func TestProfileLifecycle(t *testing.T) {
	res := helper.SetupTestServer(t)

	alice := signupAlice(t, res.BaseURL)

	var profile entity.User
	resp := helper.GetJSON(t, fmt.Sprintf("%s/profile/%d", res.BaseURL, alice.ID), &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alice", profile.FullName)
	assert.Equal(t, "hiking,films", profile.Interests)

	resp = helper.PostJSON(t, res.BaseURL+"/update_profile", entity.UpdateProfileRequest{
		UserID:    alice.ID,
		FullName:  "Alice B",
		College:   "State",
		Age:       25,
		Bio:       "updated",
		Interests: []string{"hiking", "poetry"},
	})
	var status entity.StatusResponse
	decodeAndClose(t, resp, &status)
	assert.Equal(t, "success", status.Status)

	resp = helper.GetJSON(t, fmt.Sprintf("%s/profile/%d", res.BaseURL, alice.ID), &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alice B", profile.FullName)
	assert.Equal(t, "hiking,poetry", profile.Interests)

	resp = helper.GetJSON(t, res.BaseURL+"/profile/99999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func decodeAndClose(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bodyBytes, v))
}
