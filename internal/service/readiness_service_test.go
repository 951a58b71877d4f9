package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/fernvaleriano/coachpilot/internal/error_values"
	"github.com/fernvaleriano/coachpilot/internal/repository/mocks"
	"github.com/fernvaleriano/coachpilot/internal/service"
	servicemocks "github.com/fernvaleriano/coachpilot/internal/service/mocks"
	"github.com/fernvaleriano/coachpilot/pkg/clock"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

var (
	testClientID = uuid.New()
	testCoachID  = uuid.New()
	testToday    = time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)
	testDate     = time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
)

func init() {
	service.InitValidator()
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func newReadinessService(t *testing.T, ctrl *gomock.Controller) (*service.ReadinessService, *mocks.MockReadinessRepositoryI, *mocks.MockClientsRepositoryI, *servicemocks.MockStreakServiceI) {
	t.Helper()
	readinessRepo := mocks.NewMockReadinessRepositoryI(ctrl)
	clientsRepo := mocks.NewMockClientsRepositoryI(ctrl)
	streaks := servicemocks.NewMockStreakServiceI(ctrl)
	serv := service.NewReadinessService(readinessRepo, clientsRepo, streaks, clock.Fixed{T: testToday})
	return serv, readinessRepo, clientsRepo, streaks
}

func TestSubmitScoring(t *testing.T) {
	cases := []struct {
		name          string
		req           service.SubmitReadinessRequest
		wantScore     int
		wantIntensity entity.Intensity
	}{
		{
			name: "full check-in",
			req: service.SubmitReadinessRequest{
				SleepQuality:   intp(7),
				SleepHours:     floatp(8),
				EnergyLevel:    intp(6),
				StressLevel:    intp(4),
				MuscleSoreness: intp(3),
				Mood:           intp(7),
			},
			wantScore:     72,
			wantIntensity: entity.IntensityHard,
		},
		{
			name:          "no inputs defaults to midpoint",
			req:           service.SubmitReadinessRequest{},
			wantScore:     50,
			wantIntensity: entity.IntensityEasy,
		},
		{
			name:          "single perfect input renormalizes to full score",
			req:           service.SubmitReadinessRequest{EnergyLevel: intp(10)},
			wantScore:     100,
			wantIntensity: entity.IntensityPeak,
		},
		{
			name:          "single low input renormalizes to full weight",
			req:           service.SubmitReadinessRequest{EnergyLevel: intp(1)},
			wantScore:     10,
			wantIntensity: entity.IntensityDeload,
		},
		{
			name:          "peak boundary",
			req:           service.SubmitReadinessRequest{SleepQuality: intp(8), EnergyLevel: intp(9)},
			wantScore:     85,
			wantIntensity: entity.IntensityPeak,
		},
		{
			name:          "just under peak",
			req:           service.SubmitReadinessRequest{SleepQuality: intp(8), EnergyLevel: intp(9), Mood: intp(8)},
			wantScore:     84,
			wantIntensity: entity.IntensityHard,
		},
		{
			name:          "hard boundary",
			req:           service.SubmitReadinessRequest{EnergyLevel: intp(7)},
			wantScore:     70,
			wantIntensity: entity.IntensityHard,
		},
		{
			name:          "moderate band",
			req:           service.SubmitReadinessRequest{SleepQuality: intp(6), EnergyLevel: intp(7)},
			wantScore:     65,
			wantIntensity: entity.IntensityModerate,
		},
		{
			name:          "moderate boundary",
			req:           service.SubmitReadinessRequest{SleepQuality: intp(5), EnergyLevel: intp(6)},
			wantScore:     55,
			wantIntensity: entity.IntensityModerate,
		},
		{
			name:          "easy boundary",
			req:           service.SubmitReadinessRequest{SleepQuality: intp(4), EnergyLevel: intp(4)},
			wantScore:     40,
			wantIntensity: entity.IntensityEasy,
		},
		{
			name:          "deload band",
			req:           service.SubmitReadinessRequest{SleepQuality: intp(3), EnergyLevel: intp(4)},
			wantScore:     35,
			wantIntensity: entity.IntensityDeload,
		},
		{
			name:          "short sleep clamps at zero",
			req:           service.SubmitReadinessRequest{SleepHours: floatp(0.5)},
			wantScore:     0,
			wantIntensity: entity.IntensityDeload,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			serv, readinessRepo, _, streaks := newReadinessService(t, ctrl)

			readinessRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			streaks.EXPECT().UpdateStreak(gomock.Any(), testClientID, service.StreakTypeReadiness, testDate)

			req := tc.req
			req.ClientID = testClientID
			req.CoachID = &testCoachID
			result, err := serv.Submit(context.Background(), &req)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantScore, result.Score)
			assert.Equal(t, tc.wantIntensity, result.Intensity)
		})
	}
}

func TestSubmitCoachingNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, readinessRepo, _, streaks := newReadinessService(t, ctrl)
	readinessRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	streaks.EXPECT().UpdateStreak(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)

	t.Run("struggling day", func(t *testing.T) {
		result, err := serv.Submit(context.Background(), &service.SubmitReadinessRequest{
			ClientID:       testClientID,
			CoachID:        &testCoachID,
			SleepHours:     floatp(4),
			StressLevel:    intp(9),
			MuscleSoreness: intp(8),
			EnergyLevel:    intp(2),
		})
		assert.NoError(t, err)
		assert.Contains(t, result.Recommendation, "Sleep was below optimal")
		assert.Contains(t, result.Recommendation, "High stress detected")
		assert.Contains(t, result.Recommendation, "Significant soreness")
		assert.Contains(t, result.Recommendation, "Your body needs more recovery")
		assert.True(t, strings.HasSuffix(result.Recommendation, "Recovery mode activated. Light movement, stretching, or complete rest recommended."))
	})

	t.Run("excellent day", func(t *testing.T) {
		result, err := serv.Submit(context.Background(), &service.SubmitReadinessRequest{
			ClientID:     testClientID,
			CoachID:      &testCoachID,
			SleepHours:   floatp(8.5),
			SleepQuality: intp(9),
			EnergyLevel:  intp(9),
		})
		assert.NoError(t, err)
		assert.Contains(t, result.Recommendation, "Great sleep recovery")
		assert.Contains(t, result.Recommendation, "readiness is excellent today")
		assert.Contains(t, result.Recommendation, "Push for PRs")
	})
}

func TestSubmitValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, _, _, _ := newReadinessService(t, ctrl)

	_, err := serv.Submit(context.Background(), &service.SubmitReadinessRequest{
		ClientID:    testClientID,
		CoachID:     &testCoachID,
		EnergyLevel: intp(11),
	})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	_, err = serv.Submit(context.Background(), &service.SubmitReadinessRequest{
		CoachID: &testCoachID,
	})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestSubmitCoachDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, readinessRepo, clientsRepo, streaks := newReadinessService(t, ctrl)

	t.Run("coach looked up from client", func(t *testing.T) {
		clientsRepo.EXPECT().GetByID(gomock.Any(), testClientID).Return(&entity.Client{
			ID:      testClientID,
			CoachID: &testCoachID,
			Name:    "Test Client",
		}, nil)
		readinessRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *entity.ReadinessAssessment) error {
				assert.Equal(t, &testCoachID, a.CoachID)
				assert.Equal(t, testDate, a.AssessmentDate)
				return nil
			})
		streaks.EXPECT().UpdateStreak(gomock.Any(), testClientID, service.StreakTypeReadiness, testDate)

		_, err := serv.Submit(context.Background(), &service.SubmitReadinessRequest{
			ClientID:    testClientID,
			EnergyLevel: intp(5),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown client", func(t *testing.T) {
		clientsRepo.EXPECT().GetByID(gomock.Any(), testClientID).Return(nil, errorvalues.ErrClientNotFound)
		_, err := serv.Submit(context.Background(), &service.SubmitReadinessRequest{
			ClientID:    testClientID,
			EnergyLevel: intp(5),
		})
		assert.ErrorIs(t, err, errorvalues.ErrClientNotFound)
	})
}

func TestSubmitRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, readinessRepo, _, _ := newReadinessService(t, ctrl)
	readinessRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

	_, err := serv.Submit(context.Background(), &service.SubmitReadinessRequest{
		ClientID:    testClientID,
		CoachID:     &testCoachID,
		EnergyLevel: intp(5),
	})
	assert.Error(t, err)
}

func TestGetRecentStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, readinessRepo, _, _ := newReadinessService(t, ctrl)

	history := []entity.ReadinessAssessment{
		{ReadinessScore: 80, IntensityRecommendation: entity.IntensityHard, AssessmentDate: testDate},
		{ReadinessScore: 60, IntensityRecommendation: entity.IntensityModerate, AssessmentDate: testDate.AddDate(0, 0, -1)},
		{ReadinessScore: 70, IntensityRecommendation: entity.IntensityHard, AssessmentDate: testDate.AddDate(0, 0, -2)},
	}
	readinessRepo.EXPECT().GetRecent(gomock.Any(), testClientID, 7).Return(history, nil)

	result, stats, err := serv.GetRecent(context.Background(), testClientID, 7)
	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, 70, *stats.Avg7d)
	assert.Equal(t, 20, stats.Trend)
	assert.Equal(t, 80, *stats.TodayScore)
	assert.Equal(t, entity.IntensityHard, *stats.TodayIntensity)
}

func TestGetRecentEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, readinessRepo, _, _ := newReadinessService(t, ctrl)
	readinessRepo.EXPECT().GetRecent(gomock.Any(), testClientID, 7).Return(nil, nil)

	_, stats, err := serv.GetRecent(context.Background(), testClientID, 0)
	assert.NoError(t, err)
	assert.Nil(t, stats.Avg7d)
	assert.Nil(t, stats.TodayScore)
	assert.Zero(t, stats.Trend)
}
