package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"cmock.dev/pkg/cmock/internal/adapter"
	"cmock.dev/pkg/cmock/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "cmock"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	prefixFlagName    = "prefix"
	logFileFlagName   = "log-file"
	verboseFlagName   = "verbose"
	mocksFlagName     = "mocks"
	objectsFlagName   = "objects"
	parallelFlagName  = "parallel"
	keepGoingFlagName = "keep-going"
	dryRunFlagName    = "dry-run"
	reportFlagName    = "report"
	inspectorFlagName = "inspector"
	headersFlagName   = "headers"
	outputFlagName    = "output"

	prefixConfigKey    = "prefix"
	parallelConfigKey  = "reroute.parallel"
	keepGoingConfigKey = "reroute.keep_going"
	inspectorConfigKey = "reroute.inspector"
	nmToolConfigKey    = "tools.nm"
	objcopyConfigKey   = "tools.objcopy"
	toolTimeoutKey     = "tools.timeout"
	tempDirConfigKey   = "tools.temp_dir"

	defaultParallel    = 1
	defaultKeepGoing   = true
	defaultInspector   = adapter.InspectorNm
	defaultNmTool      = "nm"
	defaultObjcopyTool = "objcopy"
	defaultToolTimeout = adapter.DefaultToolTimeout

	envPrefix = "CMOCK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".cmock.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(prefixConfigKey, domain.DefaultPrefix)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(keepGoingConfigKey, defaultKeepGoing)
	viper.SetDefault(inspectorConfigKey, defaultInspector)
	viper.SetDefault(nmToolConfigKey, defaultNmTool)
	viper.SetDefault(objcopyConfigKey, defaultObjcopyTool)
	viper.SetDefault(toolTimeoutKey, int64(defaultToolTimeout.Seconds()))
	viper.SetDefault(tempDirConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("ignoring unreadable config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

// toolTimeout reads tools.timeout, given in seconds.
func toolTimeout() time.Duration {
	seconds := viper.GetInt64(toolTimeoutKey)
	if seconds <= 0 {
		return defaultToolTimeout
	}

	return time.Duration(seconds) * time.Second
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
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
