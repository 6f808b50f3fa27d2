package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	"phpcompat.dev/pkg/phpcompat/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "phpcompat"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "PHPCOMPAT"

	contentDirFlagName = "content-dir"
	storeFlagName      = "store"
	verboseFlagName    = "verbose"

	phpBinaryKey     = "php.binary"
	phpBinDirKey     = "php.bindir"
	linterRootKey    = "linter.root"
	execEnabledKey   = "scanner.exec_enabled"
	execTimeoutKey   = "scanner.exec_timeout"
	memoryLimitKey   = "scanner.memory_limit_mb"
	batchDelayKey    = "scanner.batch_delay_ms"
	keepSessionsKey  = "scanner.keep_sessions"
	dataDirKey       = "paths.data_dir"
	tempDirKey       = "paths.temp_dir"
	contentDirKey    = "paths.content_dir"
	storeDriverKey   = "store.driver"
	storePathKey     = "store.path"
	optionsFileKey   = "options.file"
	serverAddrKey    = "server.addr"
	serverTokenKey   = "server.token"
	defaultDataDir   = ".phpcompat"
	defaultContent   = "wp-content"
	defaultStore     = adapter.StoreSQLite
	defaultAddr      = "127.0.0.1:8080"
	defaultMemoryMB  = 512
	tempDirName      = "phpcompat-temp"
	optionsFileName  = "options.yaml"
	sqliteFileName   = "sessions.db"
	badgerDirName    = "sessions"
	defaultPHPBinDir = "/usr/bin"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".phpcompat.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configErr holds a config file that exists but could not be read. It is
// reported by the root command before any subcommand runs.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	configErr = readConfig()
}

// readConfig loads the config file. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(phpBinaryKey, "")
	viper.SetDefault(phpBinDirKey, defaultPHPBinDir)
	viper.SetDefault(linterRootKey, ".")
	viper.SetDefault(execEnabledKey, true)
	viper.SetDefault(execTimeoutKey, int64(adapter.DefaultExecTimeout.Seconds()))
	viper.SetDefault(memoryLimitKey, defaultMemoryMB)
	viper.SetDefault(batchDelayKey, domain.DefaultBatchDelay.Milliseconds())
	viper.SetDefault(keepSessionsKey, false)

	viper.SetDefault(dataDirKey, defaultDataDir)
	viper.SetDefault(tempDirKey, "")
	viper.SetDefault(contentDirKey, defaultContent)
	viper.SetDefault(storeDriverKey, defaultStore)
	viper.SetDefault(storePathKey, "")
	viper.SetDefault(optionsFileKey, "")

	viper.SetDefault(serverAddrKey, defaultAddr)
	viper.SetDefault(serverTokenKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// appConfig is the resolved runtime configuration.
type appConfig struct {
	PHPBinary     string
	PHPBinDir     string
	LinterRoot    string
	ExecEnabled   bool
	ExecTimeout   time.Duration
	MemoryLimitMB int
	BatchDelay    time.Duration
	KeepSessions  bool
	TempDir       string
	ContentDir    string
	StoreDriver   string
	StorePath     string
	OptionsFile   string
	ServerAddr    string
	ServerToken   string
}

// loadAppConfig reads every runtime key from viper and derives the paths
// that default to locations under the data directory.
func loadAppConfig() appConfig {
	dataDir := viper.GetString(dataDirKey)
	if strings.TrimSpace(dataDir) == "" {
		dataDir = defaultDataDir
	}

	cfg := appConfig{
		PHPBinary:     viper.GetString(phpBinaryKey),
		PHPBinDir:     viper.GetString(phpBinDirKey),
		LinterRoot:    viper.GetString(linterRootKey),
		ExecEnabled:   viper.GetBool(execEnabledKey),
		ExecTimeout:   time.Duration(viper.GetInt64(execTimeoutKey)) * time.Second,
		MemoryLimitMB: viper.GetInt(memoryLimitKey),
		BatchDelay:    time.Duration(viper.GetInt64(batchDelayKey)) * time.Millisecond,
		KeepSessions:  viper.GetBool(keepSessionsKey),
		TempDir:       viper.GetString(tempDirKey),
		ContentDir:    viper.GetString(contentDirKey),
		StoreDriver:   strings.ToLower(strings.TrimSpace(viper.GetString(storeDriverKey))),
		StorePath:     viper.GetString(storePathKey),
		OptionsFile:   viper.GetString(optionsFileKey),
		ServerAddr:    viper.GetString(serverAddrKey),
		ServerToken:   viper.GetString(serverTokenKey),
	}

	if cfg.TempDir == "" {
		cfg.TempDir = filepath.Join(dataDir, tempDirName)
	}

	if cfg.OptionsFile == "" {
		cfg.OptionsFile = filepath.Join(dataDir, optionsFileName)
	}

	if cfg.StorePath == "" {
		switch cfg.StoreDriver {
		case adapter.StoreSQLite:
			cfg.StorePath = filepath.Join(dataDir, sqliteFileName)
		case adapter.StoreBadger:
			cfg.StorePath = filepath.Join(dataDir, badgerDirName)
		}
	}

	return cfg
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels are accepted too (-4 is debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
