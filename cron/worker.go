package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"courtside/config"
	"courtside/services/schedule"

	"github.com/hibiken/asynq"
)

const (
	TypeAvailabilityRefresh    = "availability:refresh"
	TypeAvailabilityRefreshAll = "availability:refresh-all"
)

// nightlyRewarmCron fires the full rewarm at 03:00, before the morning
// booking traffic.
const nightlyRewarmCron = "0 3 * * *"

// CoachLister enumerates coach IDs for the full rewarm.
type CoachLister interface {
	ListIDs(ctx context.Context) ([]string, error)
}

type availabilityRefreshPayload struct {
	CoachID string `json:"coachId"`
}

// Enqueuer schedules availability cache rewarms on the Redis-backed work queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates an asynq client on the configured work-queue DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(redisOpts()),
	}
}

// EnqueueAvailabilityRefresh queues a cache rewarm for the coach.
func (e *Enqueuer) EnqueueAvailabilityRefresh(coachID string) error {
	payload, err := json.Marshal(availabilityRefreshPayload{CoachID: coachID})
	if err != nil {
		return fmt.Errorf("failed to marshal refresh payload: %w", err)
	}
	task := asynq.NewTask(TypeAvailabilityRefresh, payload)
	if _, err := e.client.Enqueue(task, asynq.MaxRetry(3), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("failed to enqueue availability refresh: %w", err)
	}
	return nil
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkQueueDB,
	}
}

// InitAvailabilityWorker runs the async worker in background. It rewarms the
// month-availability cache for the current and next month after rule or
// catalogue mutations, so calendar grids stay warm without blocking the
// mutating request. A scheduler also enqueues a full rewarm for every coach
// nightly, catching caches that expired without a mutation.
func InitAvailabilityWorker(engine *schedule.Engine, coaches CoachLister) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityRefresh, handleAvailabilityRefresh(engine))
	mux.HandleFunc(TypeAvailabilityRefreshAll, handleAvailabilityRefreshAll(engine, coaches))

	scheduler := asynq.NewScheduler(redisOpts(), nil)
	if _, err := scheduler.Register(nightlyRewarmCron, asynq.NewTask(TypeAvailabilityRefreshAll, nil)); err != nil {
		log.Printf("[AvailabilityWorker] Failed to register nightly rewarm: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[AvailabilityWorker] Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[AvailabilityWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AvailabilityWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AvailabilityWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAvailabilityRefresh(engine *schedule.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload availabilityRefreshPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid refresh payload: %w", err)
		}

		now := time.Now()
		months := []string{
			now.Format("2006-01"),
			now.AddDate(0, 1, 0).Format("2006-01"),
		}
		for _, month := range months {
			if _, err := engine.MonthAvailability(ctx, payload.CoachID, month); err != nil {
				return fmt.Errorf("failed to rewarm %s for coach %s: %w", month, payload.CoachID, err)
			}
		}
		return nil
	}
}

// handleAvailabilityRefreshAll rewarms every coach. Runs from the nightly
// schedule; a coach whose rewarm fails does not block the rest.
func handleAvailabilityRefreshAll(engine *schedule.Engine, coaches CoachLister) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		ids, err := coaches.ListIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list coaches for rewarm: %w", err)
		}

		now := time.Now()
		months := []string{
			now.Format("2006-01"),
			now.AddDate(0, 1, 0).Format("2006-01"),
		}
		var failed int
		for _, coachID := range ids {
			for _, month := range months {
				if _, err := engine.MonthAvailability(ctx, coachID, month); err != nil {
					log.Printf("[AvailabilityWorker] Rewarm failed for coach %s month %s: %v", coachID, month, err)
					failed++
					break
				}
			}
		}
		if failed == len(ids) && failed > 0 {
			return fmt.Errorf("rewarm failed for all %d coaches", failed)
		}
		return nil
	}
}
