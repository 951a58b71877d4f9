package service

import (
	"context"
	"log"
	"log/slog"

	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// notificationTypeTriage marks rows produced by the triage detectors.
const notificationTypeTriage = "triage_flag"

// RepoNotifier writes coach notifications as rows. Delivery failures are
// logged and dropped so a broken notification path never fails a triage run.
type RepoNotifier struct {
	notificationsRepo repository.NotificationsRepositoryI
}

func NewRepoNotifier(notificationsRepo repository.NotificationsRepositoryI) *RepoNotifier {
	if notificationsRepo == nil {
		log.Fatal("on notifier provided nil repository")
	}
	return &RepoNotifier{notificationsRepo: notificationsRepo}
}

func (n *RepoNotifier) NotifyFlag(ctx context.Context, flag *entity.TriageFlag) {
	err := n.notificationsRepo.Create(ctx, &entity.Notification{
		UserID:          flag.CoachID,
		Type:            notificationTypeTriage,
		Title:           flag.Title,
		Message:         flag.Description,
		RelatedClientID: flag.ClientID,
	})
	if err != nil {
		slog.Error("coach notification failed", slog.String("flag_id", flag.ID.String()),
			slog.String("coach_id", flag.CoachID.String()), slog.String("error", err.Error()))
	}
}
