package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"grow-coach-be/internal/dto"
	"grow-coach-be/internal/entity"
	"grow-coach-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calendarJSON = `{
	"totalWeeks": 14,
	"estimatedHarvestDate": "2026-12-05",
	"weeks": [{"week": 1, "stage": "germination"}]
}`

func calendarRequest() *dto.GenerateCalendarRequest {
	return &dto.GenerateCalendarRequest{
		ExperienceLevel: "beginner",
		StrainType:      "hybrid",
		Medium:          "soil",
		LightType:       "led",
		SpaceSize:       "2x2",
		StartDate:       "2026-09-01",
		Goals:           []string{"quality"},
	}
}

func newCalendarFixture(llmResponse string) (*calendarService, *fakeCalendarRepo, *fakeProfileRepo, *fakeLLM, *fakeEmailService) {
	calendarRepo := &fakeCalendarRepo{}
	profileRepo := newFakeProfileRepo()
	provider := &fakeLLM{chatResponse: llmResponse}
	email := &fakeEmailService{}
	svc := NewCalendarService(calendarRepo, profileRepo, provider, email, testLogger, "haiku-calendar").(*calendarService)
	return svc, calendarRepo, profileRepo, provider, email
}

func TestGenerateCreatesCalendarAndEmailsSummary(t *testing.T) {
	svc, calendarRepo, profileRepo, provider, email := newCalendarFixture(calendarJSON)
	userId := uuid.New()

	res, err := svc.Generate(context.Background(), userId, "grower@example.com", calendarRequest())

	require.NoError(t, err)
	assert.Equal(t, 14, res.TotalWeeks)
	assert.Equal(t, "2026-12-05", res.EstimatedHarvestDate)
	assert.JSONEq(t, `[{"week": 1, "stage": "germination"}]`, string(res.Weeks))

	require.Len(t, calendarRepo.calendars, 1)
	assert.Equal(t, userId, calendarRepo.calendars[0].UserId)
	assert.Equal(t, "hybrid", calendarRepo.calendars[0].Setup["strainType"])

	assert.Equal(t, 1, email.sent)
	assert.Equal(t, "grower@example.com", email.lastTo)

	// first call starts a fresh trial
	profile := profileRepo.profiles[userId]
	require.NotNil(t, profile)
	assert.Equal(t, entity.TierFree, profile.SubscriptionTier)
	require.NotNil(t, profile.TrialStartDate)

	assert.Equal(t, "haiku-calendar", provider.lastOptions.Model)
}

func TestGenerateToleratesProseAroundJSON(t *testing.T) {
	svc, _, _, _, _ := newCalendarFixture("Here is your plan:\n```json\n" + calendarJSON + "\n```\nHappy growing!")

	res, err := svc.Generate(context.Background(), uuid.New(), "", calendarRequest())

	require.NoError(t, err)
	assert.Equal(t, 14, res.TotalWeeks)
}

func TestGenerateRejectsExpiredTrial(t *testing.T) {
	svc, calendarRepo, profileRepo, _, _ := newCalendarFixture(calendarJSON)
	userId := uuid.New()

	started := time.Now().Add(-72 * time.Hour)
	profileRepo.profiles[userId] = &entity.Profile{
		Id:               userId,
		SubscriptionTier: entity.TierFree,
		TrialStartDate:   &started,
	}

	_, err := svc.Generate(context.Background(), userId, "x@example.com", calendarRequest())

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusPaymentRequired, apiErr.Status)
	assert.Empty(t, calendarRepo.calendars)
}

func TestGenerateAllowsPremiumPastTrialWindow(t *testing.T) {
	svc, _, profileRepo, _, _ := newCalendarFixture(calendarJSON)
	userId := uuid.New()

	started := time.Now().Add(-30 * 24 * time.Hour)
	profileRepo.profiles[userId] = &entity.Profile{
		Id:               userId,
		SubscriptionTier: entity.TierPremium,
		TrialStartDate:   &started,
	}

	_, err := svc.Generate(context.Background(), userId, "x@example.com", calendarRequest())

	assert.NoError(t, err)
}

func TestGenerateRejectsUnparseableResponse(t *testing.T) {
	svc, calendarRepo, _, _, _ := newCalendarFixture("sorry, I cannot produce a calendar right now")

	_, err := svc.Generate(context.Background(), uuid.New(), "", calendarRequest())

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusBadGateway, apiErr.Status)
	assert.Empty(t, calendarRepo.calendars)
}

func TestGenerateSurvivesEmailFailure(t *testing.T) {
	svc, calendarRepo, _, _, email := newCalendarFixture(calendarJSON)
	email.sendErr = errors.New("smtp down")

	_, err := svc.Generate(context.Background(), uuid.New(), "x@example.com", calendarRequest())

	require.NoError(t, err)
	assert.Len(t, calendarRepo.calendars, 1)
}

func TestParseCalendarData(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"bare json", calendarJSON, false},
		{"wrapped in prose", "preamble " + calendarJSON + " postamble", false},
		{"no json at all", "nope", true},
		{"empty weeks", `{"totalWeeks": 10, "estimatedHarvestDate": "x", "weeks": []}`, true},
		{"zero weeks", `{"totalWeeks": 0, "estimatedHarvestDate": "x", "weeks": [{}]}`, true},
		{"malformed json", `{"totalWeeks": `, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCalendarData(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetAndDeleteScopeToOwner(t *testing.T) {
	svc, calendarRepo, _, _, _ := newCalendarFixture(calendarJSON)
	owner := uuid.New()
	stranger := uuid.New()

	res, err := svc.Generate(context.Background(), owner, "", calendarRequest())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), stranger, res.Id)
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusNotFound, apiErr.Status)

	err = svc.Delete(context.Background(), stranger, res.Id)
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, calendarRepo.calendars, 1)

	require.NoError(t, svc.Delete(context.Background(), owner, res.Id))
	assert.Empty(t, calendarRepo.calendars)
}
