package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/fernvaleriano/coachpilot/internal/error_values"
	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/internal/repository/mocks"
	"github.com/fernvaleriano/coachpilot/internal/service"
	servicemocks "github.com/fernvaleriano/coachpilot/internal/service/mocks"
	"github.com/fernvaleriano/coachpilot/pkg/clock"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type triageMocks struct {
	flags     *mocks.MockFlagsRepositoryI
	clients   *mocks.MockClientsRepositoryI
	workouts  *mocks.MockWorkoutsRepositoryI
	readiness *mocks.MockReadinessRepositoryI
	checkins  *mocks.MockCheckinsRepositoryI
	notifier  *servicemocks.MockNotifierI
}

func newTriageService(ctrl *gomock.Controller) (*service.TriageService, triageMocks) {
	service.InitValidator()
	m := triageMocks{
		flags:     mocks.NewMockFlagsRepositoryI(ctrl),
		clients:   mocks.NewMockClientsRepositoryI(ctrl),
		workouts:  mocks.NewMockWorkoutsRepositoryI(ctrl),
		readiness: mocks.NewMockReadinessRepositoryI(ctrl),
		checkins:  mocks.NewMockCheckinsRepositoryI(ctrl),
		notifier:  servicemocks.NewMockNotifierI(ctrl),
	}
	serv := service.NewTriageService(m.flags, m.clients, m.workouts, m.readiness, m.checkins, m.notifier, clock.Fixed{T: testToday})
	return serv, m
}

func testClient() *entity.Client {
	return &entity.Client{
		ID:      testClientID,
		CoachID: &testCoachID,
		Name:    "Jordan",
		Email:   "jordan@example.com",
	}
}

func workoutOn(daysAgo int, rating *int) entity.WorkoutLog {
	return entity.WorkoutLog{
		ClientID:      testClientID,
		WorkoutDate:   testDate.AddDate(0, 0, -daysAgo),
		WorkoutName:   "Session",
		Status:        "completed",
		WorkoutRating: rating,
	}
}

func readinessOn(daysAgo, score int) entity.ReadinessAssessment {
	return entity.ReadinessAssessment{
		ClientID:       testClientID,
		AssessmentDate: testDate.AddDate(0, 0, -daysAgo),
		ReadinessScore: score,
	}
}

// expectTriageLookups wires the data the Run loop always fetches.
func expectTriageLookups(m triageMocks, workouts []entity.WorkoutLog, readiness []entity.ReadinessAssessment,
	checkins []entity.CheckIn, open map[entity.FlagType]struct{}) {
	m.clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(testClient(), nil)
	m.workouts.EXPECT().GetSince(gomock.Any(), testClientID, gomock.Any()).Return(workouts, nil)
	m.readiness.EXPECT().GetSince(gomock.Any(), testClientID, gomock.Any()).Return(readiness, nil)
	m.checkins.EXPECT().GetSince(gomock.Any(), testClientID, gomock.Any()).Return(checkins, nil)
	m.flags.EXPECT().OpenFlagTypes(gomock.Any(), testClientID).Return(open, nil)
}

func flagTypes(flags []*entity.TriageFlag) []entity.FlagType {
	types := make([]entity.FlagType, 0, len(flags))
	for _, f := range flags {
		types = append(types, f.FlagType)
	}
	return types
}

func TestRunNoSignals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	workouts := []entity.WorkoutLog{workoutOn(1, intp(4)), workoutOn(2, intp(5))}
	readiness := []entity.ReadinessAssessment{readinessOn(1, 70), readinessOn(2, 75), readinessOn(3, 72)}
	expectTriageLookups(m, workouts, readiness, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Empty(t, flags)
}

func TestRunMissedWorkoutsMedium(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	workouts := []entity.WorkoutLog{workoutOn(4, intp(4))}
	expectTriageLookups(m, workouts, nil, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)
	m.flags.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFlag(gomock.Any(), gomock.Any())

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Len(t, flags, 1)

	f := flags[0]
	assert.Equal(t, entity.FlagMissedWorkouts, f.FlagType)
	assert.Equal(t, entity.SeverityMedium, f.Severity)
	assert.Equal(t, "Jordan hasn't trained in 4 days", f.Title)
	assert.Equal(t, 4, f.ContextData["days_since_workout"])
	assert.Equal(t, "2026-03-07", f.ContextData["last_workout_date"])
	assert.Equal(t, 1, f.ContextData["total_workouts_14d"])

	assert.NotEqual(t, uuid.Nil, f.ID)
	assert.Equal(t, testClientID, f.ClientID)
	assert.Equal(t, testCoachID, f.CoachID)
	assert.Equal(t, entity.FlagOpen, f.Status)
}

func TestRunMissedWorkoutsHighAndSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	// No workouts in the window at all
	expectTriageLookups(m, nil, nil, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)
	m.flags.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFlag(gomock.Any(), gomock.Any())

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Len(t, flags, 1)

	f := flags[0]
	assert.Equal(t, entity.FlagMissedWorkouts, f.FlagType)
	assert.Equal(t, entity.SeverityHigh, f.Severity)
	assert.Equal(t, "Jordan hasn't trained in 999 days", f.Title)
	assert.Nil(t, f.ContextData["last_workout_date"])
}

func TestRunMissedWorkoutsDeduplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	open := map[entity.FlagType]struct{}{entity.FlagMissedWorkouts: {}}
	expectTriageLookups(m, nil, nil, nil, open)
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Empty(t, flags)
}

func TestRunLowMotivationFromRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	workouts := []entity.WorkoutLog{
		workoutOn(1, intp(2)),
		workoutOn(2, intp(3)),
		workoutOn(3, intp(2)),
	}
	expectTriageLookups(m, workouts, nil, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)
	m.flags.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFlag(gomock.Any(), gomock.Any())

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Equal(t, []entity.FlagType{entity.FlagLowMotivation}, flagTypes(flags))

	f := flags[0]
	assert.Equal(t, entity.SeverityMedium, f.Severity)
	assert.Contains(t, f.Description, "average 2.3/5")
	assert.Contains(t, f.Description, "energy levels average N/A/10")
}

func TestRunLowMotivationIgnoresCheckinEnergy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	// A single readiness energy sample is below the minimum of three, and
	// low-energy check-ins do not count toward it.
	workouts := []entity.WorkoutLog{workoutOn(1, intp(4))}
	readiness := []entity.ReadinessAssessment{readinessOn(1, 70), readinessOn(2, 70), readinessOn(3, 70)}
	readiness[0].EnergyLevel = intp(3)
	checkins := []entity.CheckIn{
		{ClientID: testClientID, CheckinDate: testDate.AddDate(0, 0, -2), EnergyLevel: intp(2)},
		{ClientID: testClientID, CheckinDate: testDate.AddDate(0, 0, -4), EnergyLevel: intp(3)},
	}
	expectTriageLookups(m, workouts, readiness, checkins, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Empty(t, flags)
}

func TestRunLowMotivationFromReadinessEnergy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	workouts := []entity.WorkoutLog{workoutOn(1, intp(4))}
	readiness := []entity.ReadinessAssessment{readinessOn(1, 70), readinessOn(2, 70), readinessOn(3, 70)}
	readiness[0].EnergyLevel = intp(2)
	readiness[1].EnergyLevel = intp(3)
	readiness[2].EnergyLevel = intp(3)
	expectTriageLookups(m, workouts, readiness, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)
	m.flags.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFlag(gomock.Any(), gomock.Any())

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Equal(t, []entity.FlagType{entity.FlagLowMotivation}, flagTypes(flags))
	assert.Contains(t, flags[0].Description, "energy levels average 2.7/10")
}

func TestRunLowMotivationInsufficientSamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	// Two terrible ratings are below the minimum sample size
	workouts := []entity.WorkoutLog{workoutOn(1, intp(1)), workoutOn(2, intp(1))}
	expectTriageLookups(m, workouts, nil, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Empty(t, flags)
}

func TestRunOvertraining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	workouts := []entity.WorkoutLog{
		workoutOn(1, intp(4)), workoutOn(2, intp(4)), workoutOn(3, intp(4)),
		workoutOn(5, intp(4)), workoutOn(6, intp(4)),
	}
	readiness := []entity.ReadinessAssessment{readinessOn(1, 35), readinessOn(2, 38), readinessOn(3, 30)}
	readiness[0].StressLevel = intp(8)
	readiness[1].StressLevel = intp(9)
	expectTriageLookups(m, workouts, readiness, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)
	m.flags.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFlag(gomock.Any(), gomock.Any())

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Equal(t, []entity.FlagType{entity.FlagOvertraining}, flagTypes(flags))

	f := flags[0]
	assert.Equal(t, entity.SeverityHigh, f.Severity)
	assert.Equal(t, "Jordan may be overtraining", f.Title)
	assert.Contains(t, f.Description, "Readiness averaging 34/100 with 5 workouts")
	assert.Contains(t, f.Description, "Stress level at 8.5/10")
	assert.Equal(t, 5, f.ContextData["workouts_7d"])
}

func TestRunOvertrainingNeedsWorkoutVolume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	// Low readiness but only two workouts this week, so fatigue is not
	// explained by training volume and no flag is raised.
	workouts := []entity.WorkoutLog{workoutOn(1, intp(4)), workoutOn(3, intp(4))}
	readiness := []entity.ReadinessAssessment{readinessOn(1, 35), readinessOn(2, 38), readinessOn(3, 30)}
	expectTriageLookups(m, workouts, readiness, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Empty(t, flags)
}

func TestRunPlateau(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	workouts := []entity.WorkoutLog{workoutOn(1, intp(4))}
	sessions := make([]entity.ExerciseSession, 0, 8)
	for i := 0; i < 6; i++ {
		sessions = append(sessions, entity.ExerciseSession{
			ExerciseName: "Bench Press",
			MaxWeight:    102.5,
			WorkoutDate:  testDate.AddDate(0, 0, -i*2),
		})
	}
	// A progressing exercise mixed in must not mask the stalled one
	sessions = append(sessions,
		entity.ExerciseSession{ExerciseName: "Squat", MaxWeight: 140, WorkoutDate: testDate.AddDate(0, 0, -1)},
		entity.ExerciseSession{ExerciseName: "Squat", MaxWeight: 135, WorkoutDate: testDate.AddDate(0, 0, -3)},
	)
	expectTriageLookups(m, workouts, nil, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(sessions, nil)
	m.flags.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFlag(gomock.Any(), gomock.Any())

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Equal(t, []entity.FlagType{entity.FlagPlateau}, flagTypes(flags))

	f := flags[0]
	assert.Equal(t, entity.SeverityLow, f.Severity)
	assert.Equal(t, "Jordan plateaued on Bench Press", f.Title)
	assert.Contains(t, f.Description, "Same weight (102.5)")
	assert.Equal(t, "Bench Press", f.ContextData["exercise"])
	assert.Equal(t, 102.5, f.ContextData["stagnant_weight"])
}

func TestRunPlateauIgnoresShortAndBodyweightHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	workouts := []entity.WorkoutLog{workoutOn(1, intp(4))}
	var sessions []entity.ExerciseSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, entity.ExerciseSession{ExerciseName: "Deadlift", MaxWeight: 180})
	}
	for i := 0; i < 6; i++ {
		sessions = append(sessions, entity.ExerciseSession{ExerciseName: "Pull Up", MaxWeight: 0})
	}
	expectTriageLookups(m, workouts, nil, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(sessions, nil)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Empty(t, flags)
}

func TestRunMultipleFlagsNotifiedIndividually(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	// No workouts at all plus three low-energy readiness entries
	readiness := []entity.ReadinessAssessment{readinessOn(1, 60), readinessOn(2, 60), readinessOn(3, 60)}
	for i := range readiness {
		readiness[i].EnergyLevel = intp(3)
	}
	expectTriageLookups(m, nil, readiness, nil, map[entity.FlagType]struct{}{})
	m.workouts.EXPECT().GetExerciseHistory(gomock.Any(), testClientID, 100).Return(nil, nil)
	m.flags.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyFlag(gomock.Any(), gomock.Any()).Times(2)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Equal(t, []entity.FlagType{entity.FlagMissedWorkouts, entity.FlagLowMotivation}, flagTypes(flags))
}

func TestRunClientWithoutCoach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	client := testClient()
	client.CoachID = nil
	m.clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(client, nil)

	flags, err := serv.Run(context.Background(), testClientID)
	assert.NoError(t, err)
	assert.Empty(t, flags)
}

func TestRunClientNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	m.clients.EXPECT().GetByID(gomock.Any(), testClientID).Return(nil, errorvalues.ErrClientNotFound)

	_, err := serv.Run(context.Background(), testClientID)
	assert.ErrorIs(t, err, errorvalues.ErrClientNotFound)
}

func TestUpdateStatusAcknowledge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	flagID := uuid.New()
	m.flags.EXPECT().GetByID(gomock.Any(), flagID).Return(&entity.TriageFlag{ID: flagID, Status: entity.FlagOpen}, nil)
	m.flags.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)

	flag, err := serv.UpdateStatus(context.Background(), flagID, entity.FlagAcknowledged, nil)
	assert.NoError(t, err)
	assert.Equal(t, entity.FlagAcknowledged, flag.Status)
	assert.Nil(t, flag.ResolvedAt)
}

func TestUpdateStatusResolveStampsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	flagID := uuid.New()
	notes := "Spoke with client, schedule conflict now sorted"
	m.flags.EXPECT().GetByID(gomock.Any(), flagID).Return(&entity.TriageFlag{ID: flagID, Status: entity.FlagAcknowledged}, nil)
	m.flags.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)

	flag, err := serv.UpdateStatus(context.Background(), flagID, entity.FlagResolved, &notes)
	assert.NoError(t, err)
	assert.Equal(t, entity.FlagResolved, flag.Status)
	assert.Equal(t, testToday.UTC(), *flag.ResolvedAt)
	assert.Equal(t, &notes, flag.ResolutionNotes)
}

func TestUpdateStatusRejectsTerminalFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	flagID := uuid.New()
	resolvedAt := testToday.Add(-time.Hour)
	m.flags.EXPECT().GetByID(gomock.Any(), flagID).
		Return(&entity.TriageFlag{ID: flagID, Status: entity.FlagResolved, ResolvedAt: &resolvedAt}, nil)

	_, err := serv.UpdateStatus(context.Background(), flagID, entity.FlagDismissed, nil)
	assert.ErrorIs(t, err, errorvalues.ErrFlagClosed)
}

func TestUpdateStatusRejectsInvalidTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	// Reopening is never allowed
	_, err := serv.UpdateStatus(context.Background(), uuid.New(), entity.FlagOpen, nil)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidFlagStatus)

	_, err = serv.UpdateStatus(context.Background(), uuid.New(), entity.FlagStatus("archived"), nil)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidFlagStatus)

	// Acknowledging twice is rejected
	flagID := uuid.New()
	m.flags.EXPECT().GetByID(gomock.Any(), flagID).Return(&entity.TriageFlag{ID: flagID, Status: entity.FlagAcknowledged}, nil)
	_, err = serv.UpdateStatus(context.Background(), flagID, entity.FlagAcknowledged, nil)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidFlagStatus)
}

func TestUpdateStatusFlagNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	flagID := uuid.New()
	m.flags.EXPECT().GetByID(gomock.Any(), flagID).Return(nil, errorvalues.ErrFlagNotFound)

	_, err := serv.UpdateStatus(context.Background(), flagID, entity.FlagResolved, nil)
	assert.ErrorIs(t, err, errorvalues.ErrFlagNotFound)
}

func TestListPassesFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	status := entity.FlagOpen
	filter := repository.FlagsFilter{CoachID: &testCoachID, Status: &status}
	stored := []entity.TriageFlag{{ID: uuid.New(), CoachID: testCoachID, Status: entity.FlagOpen}}
	m.flags.EXPECT().List(gomock.Any(), filter).Return(stored, nil)

	flags, err := serv.List(context.Background(), filter)
	assert.NoError(t, err)
	assert.Equal(t, stored, flags)
}

func TestListRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	serv, m := newTriageService(ctrl)

	m.flags.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	_, err := serv.List(context.Background(), repository.FlagsFilter{CoachID: &testCoachID})
	assert.Error(t, err)
}
