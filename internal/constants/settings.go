package constants

const (
	// Notification defaults applied on onboarding and when migrating old records
	DefaultWakeUpTime     = "07:00"
	DefaultMorningEnabled = false
	DefaultEveningEnabled = false
	DefaultWeeklyEnabled  = false

	// Initial progression values
	InitialFlowers = 0
	InitialStreak  = 1

	// OnboardingNote is attached to the synthetic first mood entry
	OnboardingNote = "Первый вход в приложение"

	// Environment variables
	EnvConfigPath         = "RESURS_CONFIG"
	EnvDebug              = "RESURS_DEBUG"
	EnvAPIKey             = "GEMINI_API_KEY"
	EnvLegacyAPIKey       = "API_KEY"
	EnvAffirmationModel   = "RESURS_AFFIRMATION_MODEL"
	EnvAffirmationTimeout = "RESURS_AFFIRMATION_TIMEOUT"
	EnvDBConnection       = "RESURS_DB_CONNECTION"
	EnvTestPostgres       = "RESURS_TEST_POSTGRES"
)
