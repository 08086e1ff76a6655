package recommend

import (
	"testing"
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow = time.Date(2025, 4, 5, 21, 0, 0, 0, time.UTC)

	water  = models.Drink{Name: "Water", AlcoholContentMl: 0, Type: "soft"}
	drinkA = models.Drink{Name: "DrinkA", AlcoholContentMl: 30, Type: "beer"}
	drinkB = models.Drink{Name: "DrinkB", AlcoholContentMl: 500, Type: "punch"}
)

func testProfile() *models.Profile {
	return &models.Profile{Username: "alice", Sex: models.SexMale, WeightKg: 84}
}

func testSession(driveIn *time.Duration) *models.Session {
	s := &models.Session{ID: "s1", Username: "alice", MaxBAC: 0.08, StartTime: testNow.Add(-time.Hour)}
	if driveIn != nil {
		drive := testNow.Add(*driveIn)
		s.DriveTime = &drive
	}
	return s
}

func names(drinks []models.Drink) []string {
	out := make([]string, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, d.Name)
	}
	return out
}

func TestCandidatesUnderMaxBAC(t *testing.T) {
	got, err := CandidatesUnderMaxBAC(testProfile(), testSession(nil), 0.03, []models.Drink{drinkA, drinkB})
	require.NoError(t, err)
	assert.Equal(t, []string{"DrinkA"}, names(got))
}

func TestCandidatesUnderMaxBAC_StrictlyBelow(t *testing.T) {
	session := testSession(nil)
	session.MaxBAC = 0.03

	// water projects to exactly the current BAC, which equals the ceiling
	got, err := CandidatesUnderMaxBAC(testProfile(), session, 0.03, []models.Drink{water})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidatesUnderMaxBAC_NoSession(t *testing.T) {
	_, err := CandidatesUnderMaxBAC(testProfile(), nil, 0.03, []models.Drink{drinkA})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestCandidatesUnderMaxBAC_MissingMaxBAC(t *testing.T) {
	session := testSession(nil)
	session.MaxBAC = 0

	_, err := CandidatesUnderMaxBAC(testProfile(), session, 0.03, []models.Drink{drinkA})
	assert.ErrorIs(t, err, models.ErrMissingMaxBAC)
}

func TestCandidatesUnderMaxBAC_UnsupportedSex(t *testing.T) {
	profile := testProfile()
	profile.Sex = "unknown"

	_, err := CandidatesUnderMaxBAC(profile, testSession(nil), 0.03, []models.Drink{drinkA})
	assert.ErrorIs(t, err, models.ErrUnsupportedSex)
}

func TestCandidatesUnderMaxBAC_NothingQualifies(t *testing.T) {
	got, err := CandidatesUnderMaxBAC(testProfile(), testSession(nil), 0.2, []models.Drink{drinkA, drinkB})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidatesUnderMaxBAC_Idempotent(t *testing.T) {
	catalog := []models.Drink{water, drinkA, drinkB}

	first, err := CandidatesUnderMaxBAC(testProfile(), testSession(nil), 0.03, catalog)
	require.NoError(t, err)
	second, err := CandidatesUnderMaxBAC(testProfile(), testSession(nil), 0.03, catalog)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
	assert.Equal(t, []models.Drink{water, drinkA, drinkB}, catalog)
}

func TestCandidatesForDriveTime_NoDriveTime(t *testing.T) {
	catalog := []models.Drink{water, drinkA, drinkB}

	for _, policy := range []DrivePolicy{DrivePolicySober, DrivePolicyLegacy} {
		got, err := CandidatesForDriveTime(testProfile(), testSession(nil), 0.03, catalog, testNow, policy)
		require.NoError(t, err)
		assert.Equal(t, []string{"Water", "DrinkA"}, names(got))
	}
}

func TestCandidatesForDriveTime_Sober(t *testing.T) {
	catalog := []models.Drink{water, drinkA, drinkB}

	// DrinkA at 0.05 takes about 80 minutes to clear back to the limit
	oneHour := time.Hour
	got, err := CandidatesForDriveTime(testProfile(), testSession(&oneHour), 0.05, catalog, testNow, DrivePolicySober)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water"}, names(got))

	twoHours := 2 * time.Hour
	got, err = CandidatesForDriveTime(testProfile(), testSession(&twoHours), 0.05, catalog, testNow, DrivePolicySober)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water", "DrinkA"}, names(got))
}

func TestCandidatesForDriveTime_SoberAfterDriveTime(t *testing.T) {
	driveIn := -30 * time.Minute
	session := testSession(&driveIn)

	// a standard drink takes the 84kg drinker from 0.04 over the limit
	got, err := CandidatesForDriveTime(testProfile(), session, 0.04, []models.Drink{water, drinkA, drinkB}, testNow, DrivePolicySober)
	require.NoError(t, err)
	assert.Equal(t, []string{"Water"}, names(got))

	got, err = CandidatesForDriveTime(testProfile(), session, 0.06, []models.Drink{water, drinkA}, testNow, DrivePolicySober)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCandidatesForDriveTime_Legacy(t *testing.T) {
	catalog := []models.Drink{water, drinkA, drinkB}

	oneHour := time.Hour
	got, err := CandidatesForDriveTime(testProfile(), testSession(&oneHour), 0.05, catalog, testNow, DrivePolicyLegacy)
	require.NoError(t, err)
	assert.Equal(t, []string{"DrinkA"}, names(got))
}

func TestCandidatesForDriveTime_NoSession(t *testing.T) {
	_, err := CandidatesForDriveTime(testProfile(), nil, 0.05, []models.Drink{water}, testNow, DrivePolicySober)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestParseDrivePolicy(t *testing.T) {
	got, err := ParseDrivePolicy("")
	require.NoError(t, err)
	assert.Equal(t, DrivePolicySober, got)

	got, err = ParseDrivePolicy(" Legacy ")
	require.NoError(t, err)
	assert.Equal(t, DrivePolicyLegacy, got)

	_, err = ParseDrivePolicy("yolo")
	assert.Error(t, err)
}
