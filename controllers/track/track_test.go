package track_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"lacak/database"
	"lacak/models"
	_ "lacak/providers/geo"
	"lacak/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	app := fiber.New()
	routes.Setup(app)
	return app
}

var userSeq int64

func createUser(t *testing.T, tokens int64) (models.User, string) {
	t.Helper()

	user := models.User{
		Name:     "Agus",
		Email:    fmt.Sprintf("agus%d@example.com", atomic.AddInt64(&userSeq, 1)),
		Tokens:   tokens,
		IsActive: true,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	session := models.Session{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, database.DB.Create(&session).Error)

	return user, session.SID
}

func doTrack(t *testing.T, app *fiber.App, token string, body fiber.Map) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest("POST", "/api/track", &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestTrackUnauthorized(t *testing.T) {
	app := setupApp(t)

	resp := doTrack(t, app, "", fiber.Map{"query": "8.8.8.8", "type": "ip"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTrackInsufficientTokens(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, 0)

	resp := doTrack(t, app, token, fiber.Map{"query": "8.8.8.8", "type": "ip"})
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)

	// tidak ada debit dan tidak ada record
	var fresh models.User
	require.NoError(t, database.DB.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(0), fresh.Tokens)

	var count int64
	database.DB.Model(&models.TrackingRecord{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTrackIPFallbackStillDebitsAndRecords(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, 3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"fail","message":"quota"}`)
	}))
	defer srv.Close()
	t.Setenv("GEOIP_API_BASE", srv.URL)

	resp := doTrack(t, app, token, fiber.Map{"query": "8.8.8.8", "type": "ip"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success         bool           `json:"success"`
		Data            map[string]any `json:"data"`
		Lat             float64        `json:"lat"`
		Lng             float64        `json:"lng"`
		RemainingTokens int64          `json:"remainingTokens"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, -6.2088, body.Lat)
	assert.Equal(t, 106.8456, body.Lng)
	assert.Equal(t, "Jakarta", body.Data["city"])
	assert.Equal(t, int64(2), body.RemainingTokens)

	var record models.TrackingRecord
	require.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&record).Error)
	assert.Equal(t, "ip", record.Type)
	assert.Equal(t, "8.8.8.8", record.Query)
	assert.Equal(t, -6.2088, record.Lat)

	var fresh models.User
	require.NoError(t, database.DB.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(2), fresh.Tokens)
}

func TestTrackIPSuccessUsesProviderCoordinates(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","country":"United States","city":"Ashburn","lat":39.03,"lon":-77.5,"query":"8.8.8.8"}`)
	}))
	defer srv.Close()
	t.Setenv("GEOIP_API_BASE", srv.URL)

	resp := doTrack(t, app, token, fiber.Map{"query": "8.8.8.8", "type": "ip"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 39.03, body.Lat)
	assert.Equal(t, -77.5, body.Lng)
}

func TestTrackPhoneJitter(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, 2)

	resp := doTrack(t, app, token, fiber.Map{"query": "+6281234567890", "type": "phone"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data            map[string]any `json:"data"`
		Lat             float64        `json:"lat"`
		Lng             float64        `json:"lng"`
		RemainingTokens int64          `json:"remainingTokens"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.InDelta(t, -6.2088, body.Lat, 0.05)
	assert.InDelta(t, 106.8456, body.Lng, 0.05)
	assert.Equal(t, "PHONE", body.Data["type"])
	assert.Equal(t, "+6281234567890", body.Data["target"])
	assert.Equal(t, int64(1), body.RemainingTokens)

	var count int64
	database.DB.Model(&models.TrackingRecord{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestTrackDebitsExactlyOnePerLookup(t *testing.T) {
	app := setupApp(t)
	user, token := createUser(t, 2)

	for i := 0; i < 2; i++ {
		resp := doTrack(t, app, token, fiber.Map{"query": "353918052000000", "type": "imei"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// token ketiga tidak ada: ditolak tanpa debit
	resp := doTrack(t, app, token, fiber.Map{"query": "353918052000000", "type": "imei"})
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)

	var fresh models.User
	require.NoError(t, database.DB.First(&fresh, user.ID).Error)
	assert.Equal(t, int64(0), fresh.Tokens)
}

func TestTrackValidation(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, 1)

	resp := doTrack(t, app, token, fiber.Map{"query": "", "type": "ip"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doTrack(t, app, token, fiber.Map{"query": "8.8.8.8", "type": "mac"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
