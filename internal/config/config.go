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
	AppName           = "Go Contactbook"
	AppID             = "com.github.tartampluch.go-contactbook"
	KeyringService    = "com.github.tartampluch.go-contactbook"
	KeyringTokenUser  = "feed_token"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
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
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermExport represents -rw-r--r-- for exported vCard files.
	FilePermExport fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagServe        = "serve"
	FlagPort         = "port"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescLang     = "UI language (ISO 639-1 code)"
	FlagDescServe    = "Serve the birthday calendar feed over HTTP"
	FlagDescPort     = "Port for the calendar feed server"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18080"
	DefaultLanguage = "en"

	// PhoneDigits is the required digit count for a stored phone number.
	PhoneDigits = 10

	// UpcomingWindowDays is the forward-looking birthday window, inclusive
	// of today and of exactly one week out.
	UpcomingWindowDays = 7

	// Weekend congratulation shifts, in days.
	ShiftSaturday = 2
	ShiftSunday   = 1

	// FeedTokenBytes is the entropy of the generated feed token.
	FeedTokenBytes = 16
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// REPL Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdExport       = "export"
	CmdImport       = "import"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome        = "msg_welcome"
	TKeyGoodbye        = "msg_goodbye"
	TKeyPrompt         = "msg_prompt"
	TKeyHowHelp        = "msg_how_help"
	TKeyInvalidCommand = "msg_invalid_command"
	TKeyHelp           = "msg_help"
	TKeyContactAdded   = "msg_contact_added"
	TKeyContactUpdated = "msg_contact_updated"
	TKeyNoPhones       = "msg_no_phones"
	TKeyInvalidPhone   = "msg_invalid_phone_format"
	TKeyExported       = "msg_exported"
	TKeyImported       = "msg_imported"

	// Fixed error translations surfaced by the dispatch boundary.
	TKeyErrArgs     = "err_give_name_phone"
	TKeyErrNotFound = "err_contact_not_found"
	TKeyErrUserName = "err_enter_user_name"
)

// -----------------------------------------------------------------------------
// Data Formats & Validation
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the strict layout for birthday input and output.
	// Fixed-width fields reject unpadded day or month values.
	DateFormatBirthday = "02.01.2006"

	// PhoneChangePattern is the secondary format rule applied by the change
	// command: a national number with leading 0, or 380 plus 9 digits.
	PhoneChangePattern = `^(?:\+?380|0)\d{9}$`

	// PhoneSeparator joins a record's phones for display.
	PhoneSeparator = "; "

	// BirthdayPlaceholder renders in place of an unset birthday.
	BirthdayPlaceholder = "-"

	// FormatRecord renders a full contact line.
	FormatRecord = "Contact name: %s, phones: %s, birthday: %s"

	// FormatGreeting renders one upcoming-birthday result line.
	FormatGreeting = "%s: %s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contactbook//Feed//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontactbook"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardFN   = "FN"
	VCardTEL  = "TEL"
	VCardBDAY = "BDAY"

	// DateFormatVCardBDAY is the basic ISO layout used for BDAY values.
	DateFormatVCardBDAY = "20060102"

	DefaultICalRefresh = 1 * time.Hour

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
	UIDSalt         = "go-contactbook-v1-"

	FallbackSummary = "Birthday: %s"

	// Fallback user-facing strings, used when no localizer is injected.
	// The active.en.json locale carries the same texts.
	FallbackContactAdded   = "Contact added."
	FallbackContactUpdated = "Contact updated."
	FallbackNoPhones       = "No phones."
	FallbackInvalidPhone   = "Invalid phone format."
	FallbackExported       = "Contacts exported."
	FallbackImported       = "Contacts imported."

	// StubVCalendar is the minimal valid iCalendar object used when no
	// birthdays are set. Keeps feed clients from flagging the feed as invalid.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
	QueryParamToken    = "token"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPhoneDigits     = "phone must have 10 digits"
	ErrBirthdayFormat  = "invalid date format, expected DD.MM.YYYY"
	ErrNilRecord       = "expected a Record instance"
	ErrContactMissing  = "contact not found"
	ErrMissingArgument = "missing positional argument"
	ErrBirthdayUnset   = "birthday not set"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrPortRequired    = "server port is required"
	ErrPortRange       = "server port must be between 1 and 65535"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrVCardEncode     = "failed to encode vCard data"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrWriteResp       = "failed to write response body"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrTokenGenerate   = "failed to generate feed token"
	ErrReadInput       = "failed to read user input"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgForbidden    = "Forbidden"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgFeedRefreshed = "Birthday feed refreshed"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgTokenCreated  = "Feed token generated and stored"
	MsgTokenFallback = "Keyring unavailable, using ephemeral feed token"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedPhone  = "Skipping invalid phone value"
	MsgSkippedDate   = "Skipping invalid birthday value"
	MsgImportMerged  = "Imported contacts merged"
	MsgExportDone    = "Contacts exported"
	MsgCtxCancel     = "Context cancelled, shutting down"
	MsgReplStopped   = "Command loop finished"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
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
	LogKeyPort      = "port"
	LogKeyCommand   = "command"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyTotal     = "total_records"
	LogKeyFound     = "birthdays_found"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
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
	CompRepl     = "repl"
	CompServer   = "server"
	CompExchange = "exchange"
	CompFeedAuth = "feedauth"
	CompMain     = "main"
	CompI18n     = "i18n"
)
