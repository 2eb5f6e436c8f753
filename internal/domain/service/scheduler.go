package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// maxTickPeriod is the longest gap allowed between two ticks. Thresholds are minute precise,
// so a longer gap could jump over a whole minute.
const maxTickPeriod = time.Minute

var tickParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

type SchedulerConfig struct {
	Reference *time.Location
	Source    *time.Location
	TickSpec  string
	// SendTimeout bounds each call to the platform: every send and every reference lookup.
	SendTimeout time.Duration
}

type scheduler struct {
	dm        contract.DataManager
	directory contract.Directory
	notifier  contract.Notifier
	matcher   contract.TimeMatcher
	cfg       SchedulerConfig
	log       *zap.SugaredLogger
	now       func() time.Time
	cron      *cron.Cron

	mu         sync.Mutex
	lastMinute time.Time
	running    bool
	stopped    bool
}

// candidate is an event whose role and channel resolved during the current tick.
type candidate struct {
	event   entity.Schedule
	role    *entity.Role
	channel *entity.Channel
}

// NewScheduler builds the reminder loop of one community. Nothing runs until Start.
func NewScheduler(dm contract.DataManager, directory contract.Directory, notifier contract.Notifier, matcher contract.TimeMatcher, cfg SchedulerConfig, log *zap.SugaredLogger) (contract.ReminderScheduler, error) {
	return newScheduler(dm, directory, notifier, matcher, cfg, log)
}

func newScheduler(dm contract.DataManager, directory contract.Directory, notifier contract.Notifier, matcher contract.TimeMatcher, cfg SchedulerConfig, log *zap.SugaredLogger) (*scheduler, error) {
	if err := validateTickSpec(cfg.TickSpec); err != nil {
		return nil, err
	}

	cronLog := cronLogger{log: log}

	return &scheduler{
		dm:        dm,
		directory: directory,
		notifier:  notifier,
		matcher:   matcher,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
		cron: cron.New(
			cron.WithParser(tickParser),
			cron.WithLocation(cfg.Reference),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
	}, nil
}

func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return fmt.Errorf("scheduler already stopped")
	}
	if s.running {
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.TickSpec, s.tick); err != nil {
		return fmt.Errorf("failed to schedule tick: %w", err)
	}

	s.log.Infof("Scheduler starting with tick schedule %q", s.cfg.TickSpec)
	s.cron.Start()
	s.running = true
	return nil
}

// Stop ends the loop for good. A tick that is already running is allowed to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	wasRunning := s.running
	s.running = false
	s.stopped = true
	s.mu.Unlock()

	if !wasRunning {
		return
	}

	s.log.Info("Scheduler stopping...")
	<-s.cron.Stop().Done()
	s.log.Info("Scheduler stopped")
}

func (s *scheduler) tick() {
	now := s.now().In(s.cfg.Reference).Truncate(time.Minute)

	// Sub-minute schedules see every minute more than once; only the first tick evaluates it.
	s.mu.Lock()
	if now.Equal(s.lastMinute) {
		s.mu.Unlock()
		return
	}
	s.lastMinute = now
	s.mu.Unlock()

	ctx := context.Background()

	reminders := s.dueReminders(ctx, now)
	if len(reminders) == 0 {
		return
	}

	s.log.Infof("Sending %d reminders for %s", len(reminders), now.Format("2006-01-02 15:04 MST"))
	for _, reminder := range reminders {
		s.deliver(ctx, reminder)
	}
}

// dueReminders returns the reminders whose threshold equals now. It only reads, so calling it
// twice with the same store and the same now gives the same answer.
func (s *scheduler) dueReminders(ctx context.Context, now time.Time) []*entity.Reminder {
	var due []*entity.Reminder

	for _, c := range s.eligibleEvents(ctx) {
		start, err := ParseSessionTime(c.event.Time, s.cfg.Source)
		if err != nil {
			s.log.Warnw("Skipping event with malformed time",
				"kind", c.event.Kind,
				"id", c.event.ID,
				"error", err,
			)
			continue
		}

		if s.matcher.OneHourBefore(now, start) {
			due = append(due, c.reminder(entity.ThresholdOneHour, start))
		}

		if c.event.MorningReminder && s.matcher.SameDayMorning(now, start) {
			due = append(due, c.reminder(entity.ThresholdGameDay, start))
		}
	}

	return due
}

// eligibleEvents keeps the events with a time, a resolvable role and a resolvable channel.
// Exclusions only last for this tick; a recreated role is picked up again on the next one.
func (s *scheduler) eligibleEvents(ctx context.Context) []candidate {
	var (
		eligible []candidate
		refs     = newTickRefs()
	)

	for _, event := range s.listSchedules(ctx) {
		if !event.Scheduled() {
			continue
		}

		role, err := refs.role(event.RoleID, func() (*entity.Role, error) {
			lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
			defer cancel()
			return s.directory.ResolveRole(lookupCtx, event.RoleID)
		})
		if err != nil {
			s.logExcluded(event, "role", err)
			continue
		}

		channel, err := refs.channel(event.ChannelID, func() (*entity.Channel, error) {
			lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
			defer cancel()
			return s.directory.ResolveChannel(lookupCtx, event.ChannelID)
		})
		if err != nil {
			s.logExcluded(event, "channel", err)
			continue
		}

		eligible = append(eligible, candidate{event: event, role: role, channel: channel})
	}

	return eligible
}

// tickRefs remembers the lookups of one tick so events sharing a role or channel hit the platform once.
type tickRefs struct {
	roles    map[string]roleLookup
	channels map[string]channelLookup
}

type roleLookup struct {
	role *entity.Role
	err  error
}

type channelLookup struct {
	channel *entity.Channel
	err     error
}

func newTickRefs() *tickRefs {
	return &tickRefs{
		roles:    make(map[string]roleLookup),
		channels: make(map[string]channelLookup),
	}
}

func (r *tickRefs) role(id string, resolve func() (*entity.Role, error)) (*entity.Role, error) {
	if found, ok := r.roles[id]; ok {
		return found.role, found.err
	}
	role, err := resolve()
	r.roles[id] = roleLookup{role: role, err: err}
	return role, err
}

func (r *tickRefs) channel(id string, resolve func() (*entity.Channel, error)) (*entity.Channel, error) {
	if found, ok := r.channels[id]; ok {
		return found.channel, found.err
	}
	channel, err := resolve()
	r.channels[id] = channelLookup{channel: channel, err: err}
	return channel, err
}

// listSchedules returns campaigns then oneshots, each ordered by id.
func (s *scheduler) listSchedules(ctx context.Context) []entity.Schedule {
	var schedules []entity.Schedule

	campaigns, err := s.dm.Campaign().List(ctx)
	if err != nil {
		s.log.Errorf("Error listing campaigns: %v", err)
	}
	for _, campaign := range campaigns {
		schedules = append(schedules, campaign.Schedule())
	}

	oneshots, err := s.dm.Oneshot().List(ctx)
	if err != nil {
		s.log.Errorf("Error listing oneshots: %v", err)
	}
	for _, oneshot := range oneshots {
		schedules = append(schedules, oneshot.Schedule())
	}

	sort.Slice(schedules, func(i, j int) bool {
		if schedules[i].Kind != schedules[j].Kind {
			return schedules[i].Kind == entity.KindCampaign
		}
		return schedules[i].ID < schedules[j].ID
	})

	return schedules
}

func (s *scheduler) logExcluded(event entity.Schedule, ref string, err error) {
	if errors.Is(err, domain.ErrUnresolvedReference) {
		s.log.Debugw("Event excluded from reminders", "kind", event.Kind, "id", event.ID, "reference", ref, "error", err)
		return
	}
	s.log.Warnw("Could not resolve event reference", "kind", event.Kind, "id", event.ID, "reference", ref, "error", err)
}

func (s *scheduler) deliver(ctx context.Context, reminder *entity.Reminder) {
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	if err := s.notifier.Send(sendCtx, reminder); err != nil {
		s.log.Errorw("Failed to send reminder",
			"kind", reminder.Event.Kind,
			"id", reminder.Event.ID,
			"threshold", reminder.Threshold,
			"channel", reminder.Channel.ID,
			"error", err,
		)
		return
	}

	s.log.Infow("Reminder sent",
		"kind", reminder.Event.Kind,
		"id", reminder.Event.ID,
		"threshold", reminder.Threshold,
		"channel", reminder.Channel.ID,
		"role", reminder.Role.ID,
	)
}

func (c candidate) reminder(threshold entity.Threshold, start time.Time) *entity.Reminder {
	return &entity.Reminder{
		Event:     c.event,
		Threshold: threshold,
		Role:      *c.role,
		Channel:   *c.channel,
		StartsAt:  start,
	}
}

// ValidateTickSpec reports whether spec is a seconds cron expression that fires at least once a minute.
func ValidateTickSpec(spec string) error {
	return validateTickSpec(spec)
}

// validateTickSpec parses spec and walks a day of firings to make sure no gap exceeds maxTickPeriod.
func validateTickSpec(spec string) error {
	schedule, err := tickParser.Parse(spec)
	if err != nil {
		return fmt.Errorf("invalid tick schedule %q: %w", spec, err)
	}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	horizon := from.Add(25 * time.Hour)

	prev := schedule.Next(from)
	if prev.IsZero() || prev.Sub(from) > maxTickPeriod {
		return fmt.Errorf("tick schedule %q must fire at least once a minute", spec)
	}

	for prev.Before(horizon) {
		next := schedule.Next(prev)
		if next.IsZero() || next.Sub(prev) > maxTickPeriod {
			return fmt.Errorf("tick schedule %q must fire at least once a minute", spec)
		}
		prev = next
	}

	return nil
}

type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
