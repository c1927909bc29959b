package common

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName 日誌中的服務名稱
const ServiceName = "grocery-genius"

// LogModeConcise 只輸出請求完成與啟停訊息
const LogModeConcise = "concise"

var (
	// Logger 全局日誌實例；InitLogger 之前為 no-op
	Logger  = zap.NewNop()
	LogMode string

	// conciseMessages LOG_MODE=concise 時仍輸出的訊息
	conciseMessages = []string{"請求完成", "啟動應用", "Server exited", "Shutting down server..."}

	// 日誌級別顏色與縮寫
	levelLabels = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36mDBG\033[0m",
		zapcore.InfoLevel:  "\033[32mINF\033[0m",
		zapcore.WarnLevel:  "\033[33mWRN\033[0m",
		zapcore.ErrorLevel: "\033[31mERR\033[0m",
		zapcore.FatalLevel: "\033[35mFAT\033[0m",
	}
)

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if label, ok := levelLabels[l]; ok {
		enc.AppendString(label)
		return
	}
	enc.AppendString(l.CapitalString())
}

// InitLogger 初始化日誌系統：JSON 寫入 logs/app.log，console 寫入 stdout
func InitLogger(logLevel string) error {
	level, err := zapcore.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = zapcore.InfoLevel
	}

	// 讀取 LOG_MODE（必須在 .env 載入後）
	LogMode = os.Getenv("LOG_MODE")

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	SetLogger(newCore(logFile, os.Stdout, level))
	return nil
}

func newCore(file, console io.Writer, level zapcore.Level) zapcore.Core {
	return zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(file), level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.AddSync(console), level),
	)
}

// SetLogger 以指定 core 建立全局 logger
func SetLogger(core zapcore.Core) {
	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("service", ServiceName)),
	)
	zap.ReplaceGlobals(Logger)
}

// filterFields 移除提示詞與 AI 原文等大型欄位，並遮罩金鑰
func filterFields(fields []zap.Field) []zap.Field {
	filtered := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		switch {
		case field.Key == "prompt" || field.Key == "raw_response":
			continue
		case strings.HasSuffix(field.Key, "api_key") && field.Type == zapcore.StringType:
			field = zap.String(field.Key, maskSecret(field.String))
		}
		filtered = append(filtered, field)
	}
	return filtered
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

// LogInfo 記錄信息日誌
func LogInfo(msg string, fields ...zap.Field) {
	if LogMode == LogModeConcise && !slices.Contains(conciseMessages, msg) {
		return
	}
	Logger.Info(msg, filterFields(fields)...)
}

// LogError 記錄錯誤日誌
func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, filterFields(fields)...)
}

// LogWarn 記錄警告日誌
func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, filterFields(fields)...)
}

// LogDebug 記錄調試日誌
func LogDebug(msg string, fields ...zap.Field) {
	if LogMode == LogModeConcise {
		return
	}
	Logger.Debug(msg, filterFields(fields)...)
}

// LogFatal 記錄致命錯誤日誌並結束程式
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, filterFields(fields)...)
}

// Sync 同步日誌緩衝
func Sync() {
	_ = Logger.Sync()
}

// LogCacheHit 記錄快取命中
func LogCacheHit(backend, key string) {
	LogDebug("快取命中", zap.String("backend", backend), zap.String("key", shortKey(key)))
}

// LogCacheMiss 記錄快取未命中
func LogCacheMiss(backend, key string) {
	LogDebug("快取未命中", zap.String("backend", backend), zap.String("key", shortKey(key)))
}

// LogAICall 記錄 AI 調用
func LogAICall(model string, duration time.Duration, err error, requestID string) {
	fields := []zap.Field{
		zap.String("model", model),
		zap.Duration("耗時", duration),
		zap.String("request_id", requestID),
	}
	if err != nil {
		LogError("AI 請求失敗", append(fields, zap.Error(err))...)
		return
	}
	LogInfo("AI 請求成功", fields...)
}

func shortKey(key string) string {
	if len(key) > 16 {
		return key[:16]
	}
	return key
}
