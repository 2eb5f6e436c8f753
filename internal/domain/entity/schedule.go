package entity

// Kind tells campaigns and oneshots apart. Their ids live in separate namespaces.
type Kind string

const (
	KindCampaign Kind = "campaign"
	KindOneshot  Kind = "oneshot"
)

// Schedule holds the fields of an event that matter for reminders.
type Schedule struct {
	Kind            Kind
	ID              int64
	Name            string
	Time            string
	RoleID          string
	ChannelID       string
	MorningReminder bool
}

// Scheduled reports whether the event has everything a reminder needs.
func (s Schedule) Scheduled() bool {
	return s.Time != "" && s.RoleID != "" && s.ChannelID != ""
}
