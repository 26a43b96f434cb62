package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 로그 레벨 정의
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// 로그 레벨을 문자열로 변환
func (l LogLevel) String() string {
	return [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}[l]
}

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case INFO:
		return logrus.InfoLevel
	case WARN:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	}
	return logrus.FatalLevel
}

var (
	logger     *logrus.Logger
	loggerOnce sync.Once

	isDebugMode bool
	debugOnce   sync.Once
)

// IsDebug는 현재 애플리케이션이 디버그 모드로 실행 중인지 확인합니다
func IsDebug() bool {
	debugOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		isDebugMode = env == "dev" || env == "local"
	})
	return isDebugMode
}

// Logger는 공용 logrus 로거를 반환합니다.
// 테스트 환경이 아니면 LOG_DIR 아래 날짜별 파일에도 기록합니다.
func Logger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = logrus.New()
		logger.SetLevel(logrus.InfoLevel)
		if IsDebug() {
			logger.SetLevel(logrus.DebugLevel)
		}

		logger.SetFormatter(&formatter.Formatter{
			NoColors:        os.Getenv("APP_ENV") != "local",
			TimestampFormat: "2006-01-02 15:04:05",
			HideKeys:        false,
			FieldsOrder:     []string{"service", "caller"},
		})

		writers := []io.Writer{os.Stdout}
		if os.Getenv("APP_ENV") != "test" {
			logDir := os.Getenv("LOG_DIR")
			if logDir == "" {
				logDir = "./storage/logs"
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(logDir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01-02"))),
				LocalTime:  true,
				Compress:   true,
				MaxSize:    100,
				MaxAge:     7,
				MaxBackups: 3,
			})
		}
		logger.SetOutput(io.MultiWriter(writers...))
	})
	return logger
}

// LogMessage는 지정된 레벨에 해당하는 로그 메시지를 출력합니다
func LogMessage(level LogLevel, service string, format string, args ...interface{}) {
	logMessage(2, level, service, format, args...)
}

func logMessage(skip int, level LogLevel, service string, format string, args ...interface{}) {
	if level == DEBUG && !IsDebug() {
		return
	}

	_, file, line, _ := runtime.Caller(skip)
	entry := Logger().WithFields(logrus.Fields{
		"service": service,
		"caller":  fmt.Sprintf("%s:%d", path.Base(file), line),
	})

	message := fmt.Sprintf(format, args...)
	if level == FATAL {
		// Fatal은 호출한 쪽에서 종료하므로 Error 출력 후 반환합니다
		entry.Log(logrus.ErrorLevel, message)
	} else {
		entry.Log(level.logrusLevel(), message)
	}

	// 에러 레벨 이상은 메트릭에 기록
	if level >= ERROR {
		RecordError(service, level.String())
	}
}

// 편의성 함수들
func Debug(service, format string, args ...interface{}) {
	logMessage(2, DEBUG, service, format, args...)
}

func Info(service, format string, args ...interface{}) {
	logMessage(2, INFO, service, format, args...)
}

func Warn(service, format string, args ...interface{}) {
	logMessage(2, WARN, service, format, args...)
}

func Error(service, format string, args ...interface{}) {
	logMessage(2, ERROR, service, format, args...)
}

func Fatal(service, format string, args ...interface{}) {
	logMessage(2, FATAL, service, format, args...)
	os.Exit(1)
}
