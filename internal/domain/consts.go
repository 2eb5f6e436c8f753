package domain

// SessionTimeLayout is how event times are written back to the store, e.g. 2024-05-01 03:00PM.
const SessionTimeLayout = "2006-01-02 03:04PM"

// SessionTimeInputLayout accepts single-digit month, day and hour as well.
const SessionTimeInputLayout = "2006-1-2 3:04PM"

// DefaultMorningHour is the hour (reference zone) of the game day reminder.
const DefaultMorningHour = 9

// DefaultTickSchedule evaluates reminders twice a minute.
const DefaultTickSchedule = "*/30 * * * * *"

// Reply colours.
const (
	ColorBlue     = 0x3498db
	ColorOrange   = 0xe67e22
	ColorRed      = 0xe74c3c
	ColorPurple   = 0x9b59b6
	ColorDarkGold = 0xc27c0e
	ColorBlurple  = 0x7289da
)

// Values accepted for the extra notification flag.
const (
	FlagTrue  = "true"
	FlagFalse = "false"
)

// ClearValue unsets an optional field (session, role, channel).
const ClearValue = "clear"
