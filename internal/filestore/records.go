package filestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/entity"
)

// document is the whole database file.
type document struct {
	LastCampaignID int64                      `json:"last_campaign_id"`
	LastOneshotID  int64                      `json:"last_oneshot_id"`
	Campaigns      map[string]*campaignRecord `json:"campaigns,omitempty"`
	Oneshots       map[string]*oneshotRecord  `json:"oneshots,omitempty"`
}

type campaignRecord struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	CreatorID         reference `json:"creator_id"`
	Session           string    `json:"session,omitempty"`
	Role              reference `json:"role,omitempty"`
	Channel           reference `json:"channel,omitempty"`
	ExtraNotification string    `json:"extra-notification,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type oneshotRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   reference `json:"creator_id"`
	Time        string    `json:"time,omitempty"`
	Role        reference `json:"role,omitempty"`
	Channel     reference `json:"channel,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// reference is a platform id. Numeric ids (Discord snowflakes) are stored as JSON numbers,
// anything else (Slack ids) as strings. Both shapes are accepted when reading.
type reference string

func (r reference) MarshalJSON() ([]byte, error) {
	if isJSONInteger(string(r)) {
		return []byte(r), nil
	}
	return json.Marshal(string(r))
}

func (r *reference) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = reference(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("reference must be a number or a string: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("reference %s is not an integer", n)
	}
	*r = reference(n.String())
	return nil
}

// isJSONInteger reports whether s can be written as a bare JSON number and read back as the same id.
func isJSONInteger(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' || (len(s) > 1 && s[0] == '0') {
		return false
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func newDocument() *document {
	return &document{
		Campaigns: map[string]*campaignRecord{},
		Oneshots:  map[string]*oneshotRecord{},
	}
}

// normalize repairs what a hand edited file may get wrong: nil maps, null records,
// ids missing from records, counters lower than the ids in use.
func (d *document) normalize() {
	if d.Campaigns == nil {
		d.Campaigns = map[string]*campaignRecord{}
	}
	if d.Oneshots == nil {
		d.Oneshots = map[string]*oneshotRecord{}
	}

	for key, record := range d.Campaigns {
		if record == nil {
			delete(d.Campaigns, key)
			continue
		}
		if record.ID == 0 {
			record.ID, _ = strconv.ParseInt(key, 10, 64)
		}
		if record.ID > d.LastCampaignID {
			d.LastCampaignID = record.ID
		}
	}

	for key, record := range d.Oneshots {
		if record == nil {
			delete(d.Oneshots, key)
			continue
		}
		if record.ID == 0 {
			record.ID, _ = strconv.ParseInt(key, 10, 64)
		}
		if record.ID > d.LastOneshotID {
			d.LastOneshotID = record.ID
		}
	}
}

func (d *document) clone() *document {
	c := &document{
		LastCampaignID: d.LastCampaignID,
		LastOneshotID:  d.LastOneshotID,
		Campaigns:      make(map[string]*campaignRecord, len(d.Campaigns)),
		Oneshots:       make(map[string]*oneshotRecord, len(d.Oneshots)),
	}
	for key, record := range d.Campaigns {
		copied := *record
		c.Campaigns[key] = &copied
	}
	for key, record := range d.Oneshots {
		copied := *record
		c.Oneshots[key] = &copied
	}
	return c
}

func key(id int64) string {
	return strconv.FormatInt(id, 10)
}

func campaignToRecord(c *entity.Campaign) *campaignRecord {
	extra := domain.FlagFalse
	if c.ExtraNotification {
		extra = domain.FlagTrue
	}

	return &campaignRecord{
		ID:                c.ID,
		Name:              c.Name,
		Description:       c.Description,
		CreatorID:         reference(c.CreatorID),
		Session:           c.SessionTime,
		Role:              reference(c.RoleID),
		Channel:           reference(c.ChannelID),
		ExtraNotification: extra,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func (r *campaignRecord) toEntity() *entity.Campaign {
	return &entity.Campaign{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		CreatorID:         string(r.CreatorID),
		SessionTime:       r.Session,
		RoleID:            string(r.Role),
		ChannelID:         string(r.Channel),
		ExtraNotification: strings.EqualFold(r.ExtraNotification, domain.FlagTrue),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func oneshotToRecord(o *entity.Oneshot) *oneshotRecord {
	return &oneshotRecord{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		CreatorID:   reference(o.CreatorID),
		Time:        o.Time,
		Role:        reference(o.RoleID),
		Channel:     reference(o.ChannelID),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (r *oneshotRecord) toEntity() *entity.Oneshot {
	return &entity.Oneshot{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatorID:   string(r.CreatorID),
		Time:        r.Time,
		RoleID:      string(r.Role),
		ChannelID:   string(r.Channel),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
