package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "courtside/database/repository/booking"
	"courtside/models"
	"courtside/utils"
)

// CoachStore supplies coach profiles with their embedded service catalogues.
type CoachStore interface {
	GetByID(ctx context.Context, coachID string) (*models.Coach, error)
}

// RuleStore supplies a coach's availability rules.
type RuleStore interface {
	GetByCoach(ctx context.Context, coachID string) ([]models.AvailabilityRule, error)
}

// BookingStore persists bookings. GetConfirmedByCoachAndDate must reflect the
// latest committed state: Reserve's recheck depends on it.
type BookingStore interface {
	GetConfirmedByCoachAndDate(ctx context.Context, coachID, date string) ([]models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	Cancel(ctx context.Context, bookingID string, at time.Time) (*models.Booking, error)
}

// coachLockStore holds a map of coach IDs to their reservation mutexes, so
// that recheck-then-insert is serialized per coach within this process.
type coachLockStore struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func (s *coachLockStore) get(coachID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, exists := s.locks[coachID]
	if !exists {
		l = &sync.Mutex{}
		s.locks[coachID] = l
	}
	return l
}

// Engine is the availability query facade and reservation command for the
// whole application. Every caller that needs bookable slots routes through it,
// so buffer handling and overlap semantics cannot drift between screens.
type Engine struct {
	Coaches  CoachStore
	Rules    RuleStore
	Bookings BookingStore

	// Cache is optional. When set, day-slot lists and month availability are
	// cached with CacheTTL; Reserve never reads it.
	Cache    *redis.Client
	CacheTTL time.Duration

	Opts   GeneratorOptions
	Logger *zap.Logger

	reserveLocks coachLockStore
}

// NewEngine constructs an Engine with the given stores and options.
func NewEngine(coaches CoachStore, rules RuleStore, bookings BookingStore, opts GeneratorOptions, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		Coaches:      coaches,
		Rules:        rules,
		Bookings:     bookings,
		Opts:         opts,
		Logger:       logger,
		reserveLocks: coachLockStore{locks: make(map[string]*sync.Mutex)},
	}
}

// ListBookableSlots returns every candidate slot for the coach on the date,
// sorted by start time then service name, with already-taken slots flagged.
// Read-only; an empty list is a valid result, not an error.
func (e *Engine) ListBookableSlots(ctx context.Context, coachID, date string) ([]models.CandidateSlot, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, err
	}

	if cached, ok := e.cachedSlots(ctx, coachID, date); ok {
		return cached, nil
	}

	slots, err := e.computeSlots(ctx, coachID, date)
	if err != nil {
		return nil, err
	}

	e.storeSlots(ctx, coachID, date, slots)
	return slots, nil
}

// computeSlots builds the slot list from the stores, bypassing the cache.
func (e *Engine) computeSlots(ctx context.Context, coachID, date string) ([]models.CandidateSlot, error) {
	coach, err := e.Coaches.GetByID(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch coach: %w", err)
	}
	if coach == nil {
		return nil, ErrCoachNotFound
	}

	rules, err := e.Rules.GetByCoach(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules: %w", err)
	}

	var candidates []models.CandidateSlot
	for _, rule := range rules {
		ruleSlots, err := GenerateCandidates(rule, date, coach.Services, e.Opts)
		if err != nil {
			e.Logger.Warn("skipping unparseable rule",
				zap.String("ruleID", rule.ID), zap.String("coachID", coachID), zap.Error(err))
			continue
		}
		candidates = append(candidates, ruleSlots...)
	}
	if len(candidates) == 0 {
		return []models.CandidateSlot{}, nil
	}
	SortCandidates(candidates)

	bookings, err := e.Bookings.GetConfirmedByCoachAndDate(ctx, coachID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return AnnotateConflicts(candidates, bookings, coachID, date), nil
}

// HasAvailability reports whether the coach has at least one open slot on the
// date. Used to paint month-view calendar cells: a day with slots that are all
// taken must not show as available.
func (e *Engine) HasAvailability(ctx context.Context, coachID, date string) (bool, error) {
	slots, err := e.ListBookableSlots(ctx, coachID, date)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if !s.IsBooked {
			return true, nil
		}
	}
	return false, nil
}

// MonthAvailability returns one cell per day of the month ("YYYY-MM"),
// suitable for a month-grid calendar.
func (e *Engine) MonthAvailability(ctx context.Context, coachID, yearMonth string) ([]models.DayAvailability, error) {
	first, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return nil, utils.ErrInvalidDate
	}

	if cached, ok := e.cachedMonth(ctx, coachID, yearMonth); ok {
		return cached, nil
	}

	var days []models.DayAvailability
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := d.Format(utils.DateLayout)
		available, err := e.HasAvailability(ctx, coachID, date)
		if err != nil {
			return nil, err
		}
		days = append(days, models.DayAvailability{Date: date, Available: available})
	}

	e.storeMonth(ctx, coachID, yearMonth, days)
	return days, nil
}

// Reserve creates a booking for the requested slot. It re-runs the conflict
// scan against the bookings committed at this moment, serialized per coach, so
// two racing requesters can never double-book the same interval: exactly one
// insert wins and the other caller gets ErrSlotNoLongerAvailable.
func (e *Engine) Reserve(ctx context.Context, req models.ReserveRequest) (*models.Booking, error) {
	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, err
	}

	lock := e.reserveLocks.get(req.CoachID)
	lock.Lock()
	defer lock.Unlock()

	// The requested interval must be one the generator actually produces for
	// this coach and date; arbitrary intervals are rejected.
	slots, err := e.computeSlots(ctx, req.CoachID, req.Date)
	if err != nil {
		return nil, err
	}
	target := findCandidate(slots, req.ServiceName, start, end)
	if target == nil {
		return nil, ErrOutsideAvailability
	}
	if target.IsBooked {
		return nil, ErrSlotNoLongerAvailable
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		CoachID:         req.CoachID,
		PlayerID:        req.PlayerID,
		ServiceName:     req.ServiceName,
		Date:            req.Date,
		Start:           start,
		End:             end,
		DurationMinutes: end - start,
		Status:          models.BookingStatusConfirmed,
		LocationID:      target.LocationID,
		Notes:           req.Notes,
		CreatedAt:       time.Now(),
	}

	if err := e.Bookings.Insert(ctx, booking); err != nil {
		// The store's uniqueness constraint is the cross-process backstop for
		// the same race the in-process lock serializes.
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return nil, ErrSlotNoLongerAvailable
		}
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	e.invalidate(ctx, req.CoachID, req.Date)
	e.Logger.Info("booking reserved",
		zap.String("bookingID", booking.ID),
		zap.String("coachID", booking.CoachID),
		zap.String("date", booking.Date),
		zap.String("slot", utils.FormatClock(start)+" - "+utils.FormatClock(end)))
	return booking, nil
}

// CancelBooking marks a booking cancelled. The interval becomes bookable again
// immediately: cancelled bookings never enter the conflict scan.
func (e *Engine) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := e.Bookings.Cancel(ctx, bookingID, time.Now())
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	e.invalidate(ctx, booking.CoachID, booking.Date)
	return booking, nil
}

func findCandidate(slots []models.CandidateSlot, service string, start, end int) *models.CandidateSlot {
	for i := range slots {
		s := &slots[i]
		if s.ServiceName == service && s.Start == start && s.End == end {
			return s
		}
	}
	return nil
}

// ===== Redis caching =====

func slotsCacheKey(coachID, date string) string {
	return "slots:" + coachID + ":" + date
}

func monthCacheKey(coachID, yearMonth string) string {
	return "avail:" + coachID + ":" + yearMonth
}

func (e *Engine) cachedSlots(ctx context.Context, coachID, date string) ([]models.CandidateSlot, bool) {
	if e.Cache == nil {
		return nil, false
	}
	data, err := e.Cache.Get(ctx, slotsCacheKey(coachID, date)).Result()
	if err != nil {
		return nil, false
	}
	var slots []models.CandidateSlot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (e *Engine) storeSlots(ctx context.Context, coachID, date string, slots []models.CandidateSlot) {
	if e.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := e.Cache.Set(ctx, slotsCacheKey(coachID, date), data, e.ttl()).Err(); err != nil {
		e.Logger.Warn("failed to cache slot list", zap.String("coachID", coachID), zap.Error(err))
	}
}

func (e *Engine) cachedMonth(ctx context.Context, coachID, yearMonth string) ([]models.DayAvailability, bool) {
	if e.Cache == nil {
		return nil, false
	}
	data, err := e.Cache.Get(ctx, monthCacheKey(coachID, yearMonth)).Result()
	if err != nil {
		return nil, false
	}
	var days []models.DayAvailability
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		return nil, false
	}
	return days, true
}

func (e *Engine) storeMonth(ctx context.Context, coachID, yearMonth string, days []models.DayAvailability) {
	if e.Cache == nil {
		return
	}
	data, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := e.Cache.Set(ctx, monthCacheKey(coachID, yearMonth), data, e.ttl()).Err(); err != nil {
		e.Logger.Warn("failed to cache month availability", zap.String("coachID", coachID), zap.Error(err))
	}
}

// Invalidate drops cached slot data for a coach and date, plus the containing
// month cell cache. Called after any mutation that changes availability.
func (e *Engine) Invalidate(ctx context.Context, coachID, date string) {
	e.invalidate(ctx, coachID, date)
}

func (e *Engine) invalidate(ctx context.Context, coachID, date string) {
	if e.Cache == nil {
		return
	}
	keys := []string{slotsCacheKey(coachID, date)}
	if len(date) >= 7 {
		keys = append(keys, monthCacheKey(coachID, date[:7]))
	}
	if err := e.Cache.Del(ctx, keys...).Err(); err != nil {
		e.Logger.Warn("failed to invalidate slot cache", zap.String("coachID", coachID), zap.Error(err))
	}
}

// InvalidateCoach drops every cached slot list and month cell for a coach.
// Used after rule or catalogue mutations, which can affect any date.
func (e *Engine) InvalidateCoach(ctx context.Context, coachID string) {
	if e.Cache == nil {
		return
	}
	for _, pattern := range []string{slotsCacheKey(coachID, "*"), monthCacheKey(coachID, "*")} {
		iter := e.Cache.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := e.Cache.Del(ctx, iter.Val()).Err(); err != nil {
				e.Logger.Warn("failed to drop cache key", zap.String("key", iter.Val()), zap.Error(err))
			}
		}
		if err := iter.Err(); err != nil {
			e.Logger.Warn("cache scan failed", zap.String("coachID", coachID), zap.Error(err))
		}
	}
}

func (e *Engine) ttl() time.Duration {
	if e.CacheTTL > 0 {
		return e.CacheTTL
	}
	return time.Minute
}
