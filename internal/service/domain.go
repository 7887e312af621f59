package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/techsolutions/horabank/internal/adapter"
	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/models"
)

type collection int

const (
	collUsers collection = iota
	collTasks
	collHourBank
)

// DomainStore caches the user directory, the task list, and the hour
// bank. Every fetch replaces its collection wholesale with the server
// response; there is no merging and no local mutation except the
// append-after-confirm in CreateTask.
//
// The busy counter is status-only: IsFetchingData reports whether any
// fetch is outstanding but does not serialize them. Stale responses are
// handled separately: each fetch takes a ticket before the network call
// and a response only lands if no later ticket for the same collection
// has landed already, so overlapping fetches can finish in any order
// without an older response overwriting a newer one.
type DomainStore struct {
	gateway  adapter.Gateway
	notifier Notifier
	logger   *logger.Logger

	fetching atomic.Int64
	epoch    atomic.Uint64

	mu       sync.RWMutex
	applied  map[collection]uint64
	users    []models.DirectoryUser
	tasks    []models.Task
	hourBank *models.HourBank
}

// NewDomainStore builds a domain store around the given gateway.
func NewDomainStore(gateway adapter.Gateway, notifier Notifier, log *logger.Logger) *DomainStore {
	return &DomainStore{
		gateway:  gateway,
		notifier: notifier,
		logger:   log,
		applied:  make(map[collection]uint64),
	}
}

// Users returns the cached user directory.
func (d *DomainStore) Users() []models.DirectoryUser {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.users
}

// Tasks returns the cached task list.
func (d *DomainStore) Tasks() []models.Task {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tasks
}

// HourBank returns the cached hour bank, or nil before the first fetch.
func (d *DomainStore) HourBank() *models.HourBank {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.hourBank
}

// IsFetchingData reports whether any domain fetch is outstanding.
func (d *DomainStore) IsFetchingData() bool {
	return d.fetching.Load() > 0
}

// FetchUsers replaces the user directory with the server's list. A
// failure keeps the previous directory and notifies; the data is
// considered stale-but-usable.
func (d *DomainStore) FetchUsers(ctx context.Context) error {
	ticket := d.begin()
	defer d.end()

	users, err := d.gateway.Users(ctx)
	if err != nil {
		d.notifyFetchFailure("Error fetching users", "Failed to load user data.", err)
		return fmt.Errorf("fetch users: %w", err)
	}

	d.land(collUsers, ticket, func() { d.users = users })
	return nil
}

// FetchTasks replaces the task list with the server's list.
func (d *DomainStore) FetchTasks(ctx context.Context) error {
	ticket := d.begin()
	defer d.end()

	tasks, err := d.gateway.Tasks(ctx)
	if err != nil {
		d.notifyFetchFailure("Error fetching tasks", "Failed to load tasks.", err)
		return fmt.Errorf("fetch tasks: %w", err)
	}

	d.land(collTasks, ticket, func() { d.tasks = tasks })
	return nil
}

// FetchHourBank replaces the hour bank with the server's snapshot. A
// snapshot whose available hours disagree with total minus used is
// rejected as [ErrInconsistentHourBank] and never cached.
func (d *DomainStore) FetchHourBank(ctx context.Context) error {
	ticket := d.begin()
	defer d.end()

	bank, err := d.gateway.HourBank(ctx)
	if err != nil {
		d.notifyFetchFailure("Error fetching hour bank", "Failed to load hour bank data.", err)
		return fmt.Errorf("fetch hour bank: %w", err)
	}

	if !bank.Consistent() {
		d.logger.Error().
			Int("total", bank.Total).
			Int("used", bank.Used).
			Int("available", bank.Available).
			Msg("hour bank snapshot inconsistent")
		d.notifier.Notify(Notification{
			Title:       "Error fetching hour bank",
			Description: "Failed to load hour bank data.",
			Variant:     VariantDestructive,
		})
		return fmt.Errorf("fetch hour bank: %w", ErrInconsistentHourBank)
	}

	d.land(collHourBank, ticket, func() { d.hourBank = &bank })
	return nil
}

// CreateTask submits a new task and appends the server's confirmed
// version to the cached list. There is no optimistic insert: the list
// grows only after the server acknowledges, so the cache never holds a
// task the server rejected.
func (d *DomainStore) CreateTask(ctx context.Context, form models.TaskForm) (*models.Task, error) {
	// the busy counter covers creates too; the epoch ticket is for the
	// stale-fetch guard and an append never goes through land
	d.begin()
	defer d.end()

	task, err := d.gateway.CreateTask(ctx, models.CreateTaskRequestFrom(form))
	if err != nil {
		d.notifier.Notify(Notification{
			Title:       "Error creating task",
			Description: failureMessage(err, "Failed to create the task."),
			Variant:     VariantDestructive,
		})
		return nil, fmt.Errorf("create task: %w", err)
	}

	d.mu.Lock()
	d.tasks = append(d.tasks, task)
	d.mu.Unlock()

	d.notifier.Notify(Notification{
		Title:       "Task created successfully!",
		Description: "Your new task has been created.",
		Variant:     VariantSuccess,
	})

	return &task, nil
}

// FetchTaskHistory requests the completed-task history but stores
// nothing: no collection is backed by it yet, so the response is logged
// and discarded. The call still exercises the endpoint and reports
// failures like the other fetches.
func (d *DomainStore) FetchTaskHistory(ctx context.Context, status string) error {
	d.begin()
	defer d.end()

	history, err := d.gateway.TaskHistory(ctx, status)
	if err != nil {
		d.notifyFetchFailure("Error fetching task history", "Failed to load task history.", err)
		return fmt.Errorf("fetch task history: %w", err)
	}

	d.logger.Debug().Int("count", len(history)).Msg("task history fetched and discarded")
	return nil
}

// begin takes a fetch ticket: it bumps the busy counter and returns a
// monotonically increasing epoch for the stale-response guard.
func (d *DomainStore) begin() uint64 {
	d.fetching.Add(1)
	return d.epoch.Add(1)
}

func (d *DomainStore) end() {
	d.fetching.Add(-1)
}

// land applies a fetched result unless a later ticket for the same
// collection already landed.
func (d *DomainStore) land(c collection, ticket uint64, apply func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if ticket < d.applied[c] {
		d.logger.Debug().
			Uint64("ticket", ticket).
			Uint64("applied", d.applied[c]).
			Msg("stale fetch response dropped")
		return
	}

	d.applied[c] = ticket
	apply()
}

func (d *DomainStore) notifyFetchFailure(title, generic string, err error) {
	d.notifier.Notify(Notification{
		Title:       title,
		Description: failureMessage(err, generic),
		Variant:     VariantDestructive,
	})
}
