// @title Coaching intelligence API
// @description Readiness scoring, adaptive weekly planning and client triage for coaching platform "CoachPilot"
// @BasePath /api/v1
// @schemes http
package main

import (
	"errors"
	"log"
	"log/slog"

	"github.com/fernvaleriano/coachpilot/internal/api"
	"github.com/fernvaleriano/coachpilot/internal/planner"
	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/internal/service"
	"github.com/fernvaleriano/coachpilot/pkg/clock"
	"github.com/fernvaleriano/coachpilot/pkg/config"
	jwtservice "github.com/fernvaleriano/coachpilot/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	conn := repository.NewPool(&dbCfg)

	readinessRepo := repository.NewReadinessRepo(conn)
	streaksRepo := repository.NewStreaksRepo(conn)
	schedulesRepo := repository.NewSchedulesRepo(conn)
	flagsRepo := repository.NewFlagsRepo(conn)
	workoutsRepo := repository.NewWorkoutsRepo(conn)
	checkinsRepo := repository.NewCheckinsRepo(conn)
	clientsRepo := repository.NewClientsRepo(conn)
	notificationsRepo := repository.NewNotificationsRepo(conn)

	plannerClient, err := planner.NewClientFromEnv()
	if err != nil {
		if !errors.Is(err, planner.ErrUnavailable) {
			log.Fatal("planner client error: " + err.Error())
		}
		slog.Info("planner api key not configured, weekly plans use the fallback algorithm")
		plannerClient = nil
	}

	clk := clock.Real{}
	streakService := service.NewStreakService(streaksRepo)
	readinessService := service.NewReadinessService(readinessRepo, clientsRepo, streakService, clk)
	scheduleService := service.NewScheduleService(schedulesRepo, readinessRepo, workoutsRepo, plannerClient, clk)
	triageService := service.NewTriageService(flagsRepo, clientsRepo, workoutsRepo, readinessRepo, checkinsRepo,
		service.NewRepoNotifier(notificationsRepo), clk)

	serv := api.New(&api.ServicesList{
		ReadinessService: readinessService,
		StreakService:    streakService,
		ScheduleService:  scheduleService,
		TriageService:    triageService,
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
