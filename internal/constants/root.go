package constants

import "time"

const (
	AppName            = "habitual"
	Version            = "v0.1.0"
	DefaultKeyringUser = "api-token"
	DefaultConfigDir   = "~/.config/habitual"
	ConfigFileName     = "config.yaml"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ISODateTimeFormat matches JavaScript's Date.toISOString, which the habits API expects
	ISODateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

	// DisplayDayFormat is the day/month label shown above a day's habits
	DisplayDayFormat = "02/01"

	// API defaults
	DefaultAPIURL     = "http://localhost:3333"
	DefaultAPITimeout = 10 * time.Second

	// Environment variables
	EnvAPIURL   = "HABITUAL_API_URL"
	EnvAPIToken = "HABITUAL_API_TOKEN"
	EnvTimezone = "HABITUAL_TIMEZONE"
	EnvTimeout  = "HABITUAL_TIMEOUT"
	EnvDebug    = "HABITUAL_DEBUG"

	// Summary grid constants: the grid always shows at least 18 weeks of 5 rows
	SummaryGridWeeks    = 18
	SummaryGridRows     = 5
	MinimumSummaryDates = SummaryGridWeeks * SummaryGridRows
	DaysPerWeek         = 7

	DefaultTimezone = "Local"
)
