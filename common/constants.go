package common

// Version is the current devcalc version as a string.
const Version string = "0.3.0"

// ConfigFileName is the name of the devcalc configuration file.
const ConfigFileName string = "devcalc.toml"

// ConfigDirName is the name of the directory inside the user's configuration
// directory that holds the configuration file.
const ConfigDirName string = "devcalc"

// ConfigEnvVar names the environment variable that can point at an explicit
// configuration file.
const ConfigEnvVar string = "DEVCALC_CONFIG"

// MaxSafeInteger is the largest integer magnitude that the result formatter
// renders in the non-decimal bases: 2^53 - 1.
const MaxSafeInteger int64 = 1<<53 - 1

// MaxShiftBits is the largest left shift count the evaluator will perform.
const MaxShiftBits int64 = 1 << 16

// Default configuration values.
const (
	DefaultLogLevel    = "verbose"
	DefaultFormat      = "table"
	DefaultWorkers     = 4
	DefaultHistorySize = 50
)
