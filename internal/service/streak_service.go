package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/pkg/clock"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type StreakService struct {
	streaksRepo repository.StreaksRepositoryI
}

func NewStreakService(streaksRepo repository.StreaksRepositoryI) *StreakService {
	if streaksRepo == nil {
		log.Fatal("on streak service provided nil repository")
	}
	return &StreakService{streaksRepo: streaksRepo}
}

// UpdateStreak applies one activity date to the counter. Same day is a
// no-op, the next calendar day increments, any other gap resets to 1.
// The longest streak is raised monotonically and never lowered.
func (serv *StreakService) UpdateStreak(ctx context.Context, clientID uuid.UUID, streakType string, activityDate time.Time) {
	date := clock.DateUTC(activityDate)

	streak, err := serv.streaksRepo.Get(ctx, clientID, streakType)
	if err != nil {
		slog.Error("streak lookup failed", slog.String("client_id", clientID.String()),
			slog.String("streak_type", streakType), slog.String("error", err.Error()))
		return
	}

	if streak == nil {
		streak = &entity.ClientStreak{
			ClientID:         clientID,
			StreakType:       streakType,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: date,
		}
	} else {
		switch clock.DaysBetween(streak.LastActivityDate, date) {
		case 0:
			return
		case 1:
			streak.CurrentStreak++
		default:
			streak.CurrentStreak = 1
		}
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.LastActivityDate = date
	}

	if err := serv.streaksRepo.Upsert(ctx, streak); err != nil {
		slog.Error("streak upsert failed", slog.String("client_id", clientID.String()),
			slog.String("streak_type", streakType), slog.String("error", err.Error()))
	}
}

func (serv *StreakService) GetStreak(ctx context.Context, clientID uuid.UUID, streakType string) (*entity.ClientStreak, error) {
	streak, err := serv.streaksRepo.Get(ctx, clientID, streakType)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, nil
}
