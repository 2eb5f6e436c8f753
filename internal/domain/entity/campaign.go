package entity

import "time"

type Campaign struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	CreatorID         string    `json:"creator_id"`
	SessionTime       string    `json:"session,omitempty"` // YYYY-MM-DD hh:mmAM/PM, empty when unscheduled
	RoleID            string    `json:"role,omitempty"`
	ChannelID         string    `json:"channel,omitempty"`
	ExtraNotification bool      `json:"extra_notification"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Schedule is the scheduler's view of the campaign.
func (c *Campaign) Schedule() Schedule {
	return Schedule{
		Kind:            KindCampaign,
		ID:              c.ID,
		Name:            c.Name,
		Time:            c.SessionTime,
		RoleID:          c.RoleID,
		ChannelID:       c.ChannelID,
		MorningReminder: c.ExtraNotification,
	}
}
