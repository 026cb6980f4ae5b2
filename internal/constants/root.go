package constants

import "time"

const (
	AppName              = "resurs"
	AppDisplayName       = "Я-Ресурс"
	DefaultConfigPath    = "~/.config/resurs/resurs.db"
	DefaultKeyringUser   = "database-connection"
	DefaultAPIKeyringKey = "gemini-api-key"
	Version              = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys, shared with the browser build so exported data stays readable
	UserKey         = "ia_resource_user"
	MoodKey         = "ia_resource_moods"
	AchievementsKey = "ia_resource_achievements"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "resurs-"

	// Notify constants
	NotifierLockfileName   = "resurs-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.resurs"
	TrayAppExecutable      = "resurs-tray"

	// Affirmation constants
	DefaultAffirmationModel   = "gemini-2.5-flash"
	DefaultAffirmationTimeout = 8 * time.Second

	// Garden constants
	GardenMaxRender = 50
	GardenSeedStep  = 123.45
)
