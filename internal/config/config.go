package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Analog Clock"
	AppBinary   = "go-analogclock"
	AppID       = "com.github.tartampluch.go-analogclock"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDescVersion  = "Show application version and exit."
	FlagDescDebug    = "Enable debug logging (written to the log file)."
	FlagDescLang     = "UI language (e.g. en, fr). Defaults to the locale environment."
	AppDescription   = "Renders a ticking analog clock face in the terminal."
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)"
	VarVersion       = "version"
)

// -----------------------------------------------------------------------------
// Clock Face Geometry
// -----------------------------------------------------------------------------

const (
	// FaceWidth and FaceHeight are the drawable cells inside the border.
	FaceWidth  = 80
	FaceHeight = 24

	FaceCenterX = 40
	FaceCenterY = 12
	FaceRadius  = 10

	// HorizontalScale compensates for terminal cells being taller than wide.
	HorizontalScale = 2.0

	// RimStep is the angular distance between rim samples, in radians.
	RimStep    = 0.1
	RimSamples = 63

	// LabelOffset pushes the hour numerals one cell outside the rim.
	LabelOffset = 1
	LabelFormat = "%2d"
	HoursOnFace = 12

	HourHandFraction   = 0.4
	MinuteHandFraction = 0.7
	SecondHandFraction = 0.9

	DegreesPerHour   = 30.0
	DegreesPerMinute = 6.0
	DegreesPerSecond = 6.0
)

// -----------------------------------------------------------------------------
// Time Ranges
// -----------------------------------------------------------------------------

const (
	MinHour   = 0
	MaxHour   = 23
	MinMinute = 0
	MaxMinute = 59
	MinSecond = 0
	MaxSecond = 59

	HoursPerDay      = 24
	MinutesPerHour   = 60
	SecondsPerMinute = 60

	TimeFormat = "%02d:%02d:%02d"

	// TickInterval is the delay between two rendered frames.
	TickInterval = 1 * time.Second

	// MaxInputLine caps the bytes kept from one answer. Longer lines are
	// rejected and the rest of the line is discarded.
	MaxInputLine = 1024
	// InputEchoLimit is how many runes of a rejected long line are echoed.
	InputEchoLimit = 16
	InputEllipsis  = "…"
)

// -----------------------------------------------------------------------------
// Glyphs
// -----------------------------------------------------------------------------

const (
	GlyphBlank = ' '
	GlyphRim   = '░'
	GlyphPivot = '⊕'

	// Hour hand: heavy lines.
	GlyphHourUp         = '┃'
	GlyphHourDownRight  = '┓'
	GlyphHourHorizontal = '━'
	GlyphHourDownLeft   = '┏'

	// Minute hand: double lines.
	GlyphMinuteUp         = '║'
	GlyphMinuteDownRight  = '╗'
	GlyphMinuteHorizontal = '═'
	GlyphMinuteDownLeft   = '╔'

	// Second hand: thin lines.
	GlyphSecondUp         = '│'
	GlyphSecondDownRight  = '╱'
	GlyphSecondHorizontal = '─'
	GlyphSecondDownLeft   = '╲'

	// Frame border.
	BorderTopLeft     = "╔"
	BorderTopRight    = "╗"
	BorderBottomLeft  = "╚"
	BorderBottomRight = "╝"
	BorderHorizontal  = "═"
	BorderVertical    = "║"
)

// -----------------------------------------------------------------------------
// Terminal Control Sequences
// -----------------------------------------------------------------------------

const (
	ANSIClearScreen = "\033[2J"
	ANSICursorHome  = "\033[H"
	ANSIHideCursor  = "\033[?25l"
	ANSIShowCursor  = "\033[?25h"

	// ReadoutIndent prefixes the digital time and exit hint lines.
	ReadoutIndent = "  "
	NewLine       = "\n"
)

// -----------------------------------------------------------------------------
// Languages
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"
	LocalesDir      = "locales"
	LocalePrefix    = "active."
	LocaleSuffix    = ".json"
	LocaleFormat    = "json"

	EnvLCAll      = "LC_ALL"
	EnvLCMessages = "LC_MESSAGES"
	EnvLang       = "LANG"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyTitleTimeInput = "title_time_input"
	TKeyErrInvalidTime = "err_invalid_time"
	TKeyExitHint       = "lbl_exit_hint"

	// Prompts and ranges require Min, Max.
	TKeyPromptHours   = "prompt_hours"
	TKeyPromptMinutes = "prompt_minutes"
	TKeyPromptSeconds = "prompt_seconds"
	TKeyRangeHours    = "range_hours"
	TKeyRangeMinutes  = "range_minutes"
	TKeyRangeSeconds  = "range_seconds"

	TKeyErrNotANumber = "err_not_a_number" // Requires Value
	TKeyDigitalTime   = "lbl_digital_time" // Requires Time

	// Template data fields.
	TDataMin   = "Min"
	TDataMax   = "Max"
	TDataValue = "Value"
	TDataTime  = "Time"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrHourRange     = "hours must be between 0 and 23"
	ErrMinuteRange   = "minutes must be between 0 and 59"
	ErrSecondRange   = "seconds must be between 0 and 59"
	ErrNotANumber    = "input is not an integer"
	ErrInputClosed   = "input closed before a valid time was entered"
	ErrLineTooLong   = "input line is too long"
	ErrDrawFrame     = "failed to draw frame"
	ErrDrawerMissing = "internal error: frame drawer is not initialized"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrCLIParse      = "failed to parse command line"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrTerminalWrite = "failed to write to terminal"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgTimeAccepted  = "Start time accepted"
	MsgTimeRejected  = "Start time rejected"
	MsgRunnerStart   = "Clock loop started"
	MsgRunnerStop    = "Clock loop stopping due to context cancellation"
	MsgFrameDrawn    = "Frame drawn"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgLangSelected  = "UI language selected"
	MsgLangInvalid   = "Ignoring unparsable language tag"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyTime      = "clock_time"
	LogKeyTick      = "tick"
	LogKeyInterval  = "interval"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompRunner = "runner"
	CompPrompt = "prompt"
	CompI18n   = "i18n"
)
