package entity

import "time"

type Oneshot struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creator_id"`
	Time        string    `json:"time,omitempty"`
	RoleID      string    `json:"role,omitempty"`
	ChannelID   string    `json:"channel,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Schedule is the scheduler's view of the oneshot. Oneshots never get the game day reminder.
func (o *Oneshot) Schedule() Schedule {
	return Schedule{
		Kind:      KindOneshot,
		ID:        o.ID,
		Name:      o.Name,
		Time:      o.Time,
		RoleID:    o.RoleID,
		ChannelID: o.ChannelID,
	}
}
