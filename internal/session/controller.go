package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"

	"weather-dashboard/internal/weather"
)

const (
	defaultRefreshInterval = 10 * time.Minute
	defaultFetchTimeout    = 10 * time.Second
)

// State is the session's authoritative snapshot. Only the Controller
// mutates it; consumers receive copies via Snapshot.
type State struct {
	City          string
	Units         weather.Units
	Current       *weather.CurrentConditions
	Forecast      *weather.ForecastSeries
	Loading       bool
	Err           error
	LastUpdatedAt *time.Time
}

// Config carries the committed starting point of a session.
type Config struct {
	City          string
	Units         weather.Units
	HasCredential bool

	// RefreshInterval is how often the periodic refresh fires.
	// Defaults to 10 minutes.
	RefreshInterval time.Duration

	// FetchTimeout bounds one fetch cycle. Defaults to 10 seconds.
	FetchTimeout time.Duration
}

// Controller owns the fetch lifecycle for one dashboard session: the
// committed city and units, request dispatch, settlement commit, and the
// periodic refresh. Both requests of a cycle run concurrently; a cycle
// commits only if it is still the most recently issued one, so a late
// settlement can never overwrite a newer trigger's result.
type Controller struct {
	provider      weather.Provider
	hasCredential bool
	interval      time.Duration
	timeout       time.Duration
	now           func() time.Time

	mu        sync.Mutex
	state     State
	lastCycle uuid.UUID

	scheduler *gocron.Scheduler
	inflight  sync.WaitGroup
}

// NewController creates a controller with the given committed defaults.
func NewController(provider weather.Provider, cfg Config) *Controller {
	if cfg.Units == "" {
		cfg.Units = weather.UnitsMetric
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}

	return &Controller{
		provider:      provider,
		hasCredential: cfg.HasCredential,
		interval:      cfg.RefreshInterval,
		timeout:       cfg.FetchTimeout,
		now:           time.Now,
		state: State{
			City:  cfg.City,
			Units: cfg.Units,
		},
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start issues the initial fetch and schedules the periodic refresh.
func (c *Controller) Start() error {
	c.Refresh()

	minutes := int(c.interval.Minutes())
	if minutes <= 0 {
		minutes = int(defaultRefreshInterval.Minutes())
	}

	_, err := c.scheduler.Every(minutes).Minutes().WaitForSchedule().Do(func() {
		log.Println("session: periodic refresh")
		c.Refresh()
	})
	if err != nil {
		return err
	}

	c.scheduler.StartAsync()
	return nil
}

// Close cancels the periodic refresh. In-flight cycles are abandoned,
// not aborted: their settlements are simply never rendered again.
func (c *Controller) Close() {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
}

// SubmitCity trims and commits a new city, then triggers a fetch with the
// committed units. Input that is empty after trimming sets the
// invalid-location error and produces no network traffic.
func (c *Controller) SubmitCity(raw string) {
	city := strings.TrimSpace(raw)
	if city == "" {
		c.mu.Lock()
		c.state.Err = ErrInvalidLocation
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.state.City = city
	units := c.state.Units
	c.mu.Unlock()

	c.fetch(city, units)
}

// SetUnits commits a new unit system and refetches with it.
func (c *Controller) SetUnits(units weather.Units) {
	c.mu.Lock()
	c.state.Units = units
	city := c.state.City
	c.mu.Unlock()

	c.fetch(city, units)
}

// Refresh refetches with the committed city and units.
func (c *Controller) Refresh() {
	c.mu.Lock()
	city, units := c.state.City, c.state.Units
	c.mu.Unlock()

	c.fetch(city, units)
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// fetch checks preconditions and dispatches one fetch cycle. Precondition
// failures set the error without starting a cycle, so previously
// committed data stays in place.
func (c *Controller) fetch(city string, units weather.Units) {
	c.mu.Lock()
	if !c.hasCredential {
		c.state.Err = ErrMissingCredential
		c.mu.Unlock()
		return
	}
	if strings.TrimSpace(city) == "" {
		c.state.Err = ErrInvalidLocation
		c.mu.Unlock()
		return
	}
	token := c.beginLocked()
	c.mu.Unlock()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.runCycle(token, city, units)
	}()
}

// beginLocked issues a new cycle token and marks the session loading.
// Caller holds mu.
func (c *Controller) beginLocked() uuid.UUID {
	token := uuid.New()
	c.lastCycle = token
	c.state.Loading = true
	c.state.Err = nil
	return token
}

// runCycle performs the paired requests for one cycle and commits the
// settlement.
func (c *Controller) runCycle(token uuid.UUID, city string, units weather.Units) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var (
		wg     sync.WaitGroup
		cur    *weather.CurrentConditions
		curErr error
		fc     *weather.ForecastSeries
		fcErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		cur, curErr = c.provider.Current(ctx, city, units)
	}()
	go func() {
		defer wg.Done()
		fc, fcErr = c.provider.Forecast(ctx, city, units)
	}()
	wg.Wait()

	c.commit(token, cur, curErr, fc, fcErr)
}

// commit applies a settled cycle unless a newer cycle has been issued
// since this one was dispatched (last writer wins). Both payloads are
// replaced atomically; a failed cycle clears both and leaves
// LastUpdatedAt untouched.
func (c *Controller) commit(token uuid.UUID, cur *weather.CurrentConditions, curErr error, fc *weather.ForecastSeries, fcErr error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.lastCycle {
		log.Printf("session: discarding superseded cycle %s", token)
		return
	}

	c.state.Loading = false
	switch {
	case curErr != nil:
		log.Printf("session: current conditions fetch failed: %v", curErr)
		c.state.Current = nil
		c.state.Forecast = nil
		c.state.Err = ErrCurrentFetch
	case fcErr != nil:
		log.Printf("session: forecast fetch failed: %v", fcErr)
		c.state.Current = nil
		c.state.Forecast = nil
		c.state.Err = ErrForecastFetch
	default:
		c.state.Current = cur
		c.state.Forecast = fc
		c.state.Err = nil
		ts := c.now()
		c.state.LastUpdatedAt = &ts
	}
}
