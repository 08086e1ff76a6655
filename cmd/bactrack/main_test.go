package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/bactrack/internal/config"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/recommend"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestEstimateCmd(t *testing.T) {
	out, err := runCmd(t, "estimate", "--sex", "male", "--weight", "84.1", "--bac", "0.05")
	require.NoError(t, err)
	assert.Contains(t, out, "increase per standard drink: 0.0204")
	assert.Contains(t, out, "current BAC: 0.0500")
	assert.Contains(t, out, "time until under 0.05: 0s")
}

func TestEstimateCmd_FromDrinks(t *testing.T) {
	out, err := runCmd(t, "estimate", "--sex", "female", "--weight", "60", "--drinks", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "current BAC: 0.0000")
}

func TestEstimateCmd_Errors(t *testing.T) {
	_, err := runCmd(t, "estimate", "--sex", "other", "--weight", "70")
	assert.ErrorIs(t, err, models.ErrUnsupportedSex)

	_, err = runCmd(t, "estimate", "--sex", "male", "--weight", "70", "--bac", "-1")
	assert.ErrorIs(t, err, models.ErrInvalidBAC)

	_, err = runCmd(t, "estimate", "--sex", "male")
	assert.Error(t, err)
}

func TestSensorCmd_RequiresDevice(t *testing.T) {
	t.Setenv("SENSOR_DEVICE", "")
	_, err := runCmd(t, "sensor")
	assert.Error(t, err)
}

func TestWiring_EndToEnd(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc, err := newService(client, &config.Config{
		DrivePolicy:         "sober",
		RecommendationLimit: 3,
	})
	require.NoError(t, err)

	ctx := context.Background()
	imported, err := importCatalogFile(ctx, svc, filepath.Join("..", "..", "configs", "catalog.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8, imported)

	_, err = svc.Register(ctx, &tracker.RegisterInput{Username: "alice", Password: "pw", Sex: "female", WeightKg: 62})
	require.NoError(t, err)

	_, err = svc.GetRecommendations(ctx, &tracker.GetRecommendationsInput{Username: "alice"})
	assert.ErrorIs(t, err, tracker.ErrNoActiveSession)

	_, err = svc.StartSession(ctx, &tracker.StartSessionInput{Username: "alice", MaxBAC: 0.08})
	require.NoError(t, err)

	logged, err := svc.LogDrink(ctx, &tracker.LogDrinkInput{Username: "alice", DrinkName: "lager"})
	require.NoError(t, err)
	assert.Greater(t, logged.EstimatedBAC, 0.0)

	recs, err := svc.GetRecommendations(ctx, &tracker.GetRecommendationsInput{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, recommend.PathMaxBAC, recs.Path)
	assert.Equal(t, models.ReadingSourceEstimate, recs.BACSource)
	assert.LessOrEqual(t, len(recs.Drinks), 3)
	assert.NotEmpty(t, recs.Drinks)

	_, err = svc.RecordReading(ctx, &tracker.RecordReadingInput{Username: "alice", BAC: 0.079, Source: models.ReadingSourceSensor})
	require.NoError(t, err)

	recs, err = svc.GetRecommendations(ctx, &tracker.GetRecommendationsInput{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, models.ReadingSourceSensor, recs.BACSource)
	require.Len(t, recs.Drinks, 1)
	assert.Equal(t, "Water", recs.Drinks[0].Name)
}
