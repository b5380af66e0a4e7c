package constants

const (
	AppName           = "enduro"
	Version           = "v0.3.0"
	DefaultConfigDir  = "~/.config/enduro"
	DefaultConfigFile = "~/.config/enduro/config.toml"
	DefaultDataPath   = "~/.config/enduro/enduro.json"
	ConfigEnvVar      = "ENDURO_CONFIG"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "enduro-"

	// Log file constants
	LogDirName  = "logs"
	LogFileName = "enduro.log"

	// Storage schema version for the JSON blob
	JSONStoreVersion = 1

	// Preferences defaults
	DefaultBodyWeightKg = 70.0
	DefaultTimezone     = "Local"
)
