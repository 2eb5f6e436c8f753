package scheduler

import (
	"fmt"
	"sync"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"go.uber.org/zap"
)

// Factory builds the scheduler of one community (a Discord guild or the Slack workspace).
type Factory func(communityID string) (contract.ReminderScheduler, error)

// Manager keeps one running scheduler per community.
type Manager struct {
	factory Factory
	log     *zap.SugaredLogger

	mu         sync.Mutex
	schedulers map[string]contract.ReminderScheduler
	stopped    bool
}

func NewManager(factory Factory, log *zap.SugaredLogger) *Manager {
	return &Manager{
		factory:    factory,
		log:        log,
		schedulers: make(map[string]contract.ReminderScheduler),
	}
}

// Ensure starts the scheduler of communityID unless it is already running. Discord sends
// GUILD_CREATE again after every reconnect, so this is called more than once per guild.
func (m *Manager) Ensure(communityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return fmt.Errorf("scheduler manager is stopped")
	}
	if _, ok := m.schedulers[communityID]; ok {
		return nil
	}

	s, err := m.factory(communityID)
	if err != nil {
		return fmt.Errorf("failed to create scheduler for %s: %w", communityID, err)
	}

	if err := s.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler for %s: %w", communityID, err)
	}

	m.schedulers[communityID] = s
	m.log.Infow("Scheduler registered", "community", communityID)
	return nil
}

// Remove stops the scheduler of a community the bot left.
func (m *Manager) Remove(communityID string) {
	m.mu.Lock()
	s, ok := m.schedulers[communityID]
	delete(m.schedulers, communityID)
	m.mu.Unlock()

	if !ok {
		return
	}

	s.Stop()
	m.log.Infow("Scheduler removed", "community", communityID)
}

// StopAll stops every scheduler. Ensure fails afterwards.
func (m *Manager) StopAll() {
	m.mu.Lock()
	schedulers := m.schedulers
	m.schedulers = make(map[string]contract.ReminderScheduler)
	m.stopped = true
	m.mu.Unlock()

	var wg sync.WaitGroup
	for id, s := range schedulers {
		wg.Add(1)
		go func(id string, s contract.ReminderScheduler) {
			defer wg.Done()
			s.Stop()
			m.log.Debugw("Scheduler stopped", "community", id)
		}(id, s)
	}
	wg.Wait()
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.schedulers)
}
