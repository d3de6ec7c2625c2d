package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"life-missions-system/handlers"
	"life-missions-system/models"
	"life-missions-system/services"
	"life-missions-system/store"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	st := store.New(db)
	require.NoError(t, st.AutoMigrate())

	app := fiber.New()
	handlers.SetupMissionRoutes(app, services.NewMissionService(st))
	handlers.SetupLifeRoutes(app, services.NewLifeService(st))
	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func seedLifeAndMission(t *testing.T, st *store.Store) (*models.Life, *models.Mission) {
	t.Helper()
	life := &models.Life{Name: "Boulangerie", Slug: "boulangerie"}
	require.NoError(t, st.CreateLife(life))
	mission := &models.Mission{
		LifeID: life.ID, LevelNumber: 1, Title: "Cuire une baguette",
		Slug: "cuire-une-baguette", Points: 10,
	}
	require.NoError(t, st.CreateMission(mission))
	return life, mission
}

func TestGetProfileNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/users/1/profile", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "progress not found", body["error"])
}

func TestGetProfile(t *testing.T) {
	app, st := newTestApp(t)
	life, _ := seedLifeAndMission(t, st)
	require.NoError(t, st.CreateLifeProgress(&models.UserLifeProgress{
		UserID: 1, LifeID: life.ID, XP: 45, Level: 1,
	}))

	status, body := doJSON(t, app, http.MethodGet, "/users/1/profile", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["user_id"])
	assert.Equal(t, float64(life.ID), body["life_id"])
	assert.Equal(t, float64(45), body["xp"])
	assert.Equal(t, float64(1), body["level_number"])
	assert.Equal(t, "90%", body["progress_to_next_level"])
}

func TestCompleteMissionEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	_, mission := seedLifeAndMission(t, st)

	target := fmt.Sprintf("/users/1/complete_mission/%d", mission.ID)
	status, body := doJSON(t, app, http.MethodPost, target, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Mission completed! XP updated.", body["message"])
	assert.Equal(t, float64(10), body["new_xp"])
	assert.Equal(t, float64(1), body["new_level"])
	assert.Equal(t, "No new reward", body["reward"])

	// Completing the same mission again is a domain conflict.
	status, body = doJSON(t, app, http.MethodPost, target, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "mission already completed", body["error"])
}

func TestCompleteMissionUnknown(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/users/1/complete_mission/7", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "mission not found", body["error"])
}

func TestCompleteMissionWithPhotoURL(t *testing.T) {
	app, st := newTestApp(t)
	_, mission := seedLifeAndMission(t, st)

	photo := "https://cdn.example.com/p.jpg"
	target := fmt.Sprintf("/users/1/complete_mission/%d?user_photo_url=%s", mission.ID, photo)
	status, _ := doJSON(t, app, http.MethodPost, target, "")
	require.Equal(t, http.StatusOK, status)

	completion, err := st.Completion(1, mission.ID)
	require.NoError(t, err)
	require.NotNil(t, completion.UserPhotoURL)
	assert.Equal(t, photo, *completion.UserPhotoURL)
}

func TestAvailableMissionsEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	life, _ := seedLifeAndMission(t, st)
	require.NoError(t, st.CreateMission(&models.Mission{
		LifeID: life.ID, LevelNumber: 3, Title: "Monter une pièce montée",
		Slug: "piece-montee", Points: 30,
	}))
	require.NoError(t, st.CreateLifeProgress(&models.UserLifeProgress{
		UserID: 1, LifeID: life.ID, XP: 55, Level: 2,
	}))

	status, body := doJSON(t, app, http.MethodGet, "/users/1/available_missions", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["level"])
	missions, ok := body["missions"].([]any)
	require.True(t, ok)
	require.Len(t, missions, 1)
	assert.Equal(t, "Cuire une baguette", missions[0])
}

func TestAvailableMissionsNoProgress(t *testing.T) {
	app, st := newTestApp(t)
	seedLifeAndMission(t, st)

	status, _ := doJSON(t, app, http.MethodGet, "/users/1/available_missions", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRewardsEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	life, _ := seedLifeAndMission(t, st)
	big := &models.Mission{
		LifeID: life.ID, LevelNumber: 1, Title: "Grosse mission",
		Slug: "grosse-mission", Points: 50,
	}
	require.NoError(t, st.CreateMission(big))

	status, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/users/1/complete_mission/%d", big.ID), "")
	require.Equal(t, http.StatusOK, status)

	req := httptest.NewRequest(http.MethodGet, "/users/1/rewards", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rewards []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rewards))
	require.Len(t, rewards, 1)
	assert.Equal(t, "Récompense: Badge de Boulanger Novice", rewards[0]["reward_name"])
	assert.NotEmpty(t, rewards[0]["rewarded_at"])
}

func TestInvalidUserID(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/users/abc/profile", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLifeRoutes(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/lives", `{"name":"Boulangerie"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "boulangerie", body["slug"])

	status, body = doJSON(t, app, http.MethodPost, "/missions",
		`{"life_id":1,"level_number":2,"title":"Réaliser des croissants","points":20}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(2), body["level_number"])
	assert.Equal(t, "realiser-des-croissants", body["slug"])

	status, body = doJSON(t, app, http.MethodGet, "/lives/boulangerie", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Boulangerie", body["name"])

	req := httptest.NewRequest(http.MethodGet, "/lives/boulangerie/missions?max_level=1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var missions []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&missions))
	assert.Empty(t, missions, "level-2 mission is above the ceiling")

	status, _ = doJSON(t, app, http.MethodGet, "/lives/inconnue", "")
	assert.Equal(t, http.StatusNotFound, status)
}
