// Package logger는 구조화된 로깅을 제공합니다.
// 인증 키가 로그에 평문으로 남지 않도록 마스킹 Writer를 거쳐 출력합니다.
package logger

import (
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/insajin/stdict-mcp/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// 민감 정보 패턴.
// 표준국어대사전 인증 키는 16진수 32자리이고, 요청 URL의 key= 파라미터에도 실립니다.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`((?:api[_-]?key|apikey|key|token|secret)\s*[=:]\s*)([a-zA-Z0-9\-_\.]{10,})`),
	regexp.MustCompile(`\b([0-9a-f]{32})\b`),
}

// maskedWriter는 민감 정보를 마스킹하는 io.Writer입니다.
type maskedWriter struct {
	underlying io.Writer
}

// Write는 민감 정보를 마스킹한 후 기록합니다.
func (w *maskedWriter) Write(p []byte) (n int, err error) {
	masked := MaskSensitive(string(p))
	return w.underlying.Write([]byte(masked))
}

// Setup은 전역 로거를 초기화합니다.
func Setup(cfg config.LoggingConfig) {
	log.Logger = New(cfg)
}

// New는 설정에 따른 마스킹 로거를 생성합니다.
// 출력 대상은 로그 파일 또는 stderr입니다. stdout은 MCP stdio 트랜스포트가
// 사용하므로 절대 로그 출력에 쓰지 않습니다.
func New(cfg config.LoggingConfig) zerolog.Logger {
	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.File).Msg("로그 파일을 열 수 없어 stderr를 사용합니다")
		} else {
			output = file
		}
	}

	maskedOutput := &maskedWriter{underlying: output}

	if cfg.Format == "text" {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        maskedOutput,
			TimeFormat: time.RFC3339,
		}
		return zerolog.New(consoleWriter).With().Timestamp().Logger()
	}
	return zerolog.New(maskedOutput).With().Timestamp().Logger()
}

// parseLevel은 문자열 레벨을 zerolog.Level로 변환합니다.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// MaskSensitive는 문자열에서 민감 정보를 마스킹합니다.
func MaskSensitive(input string) string {
	result := input
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			// 키-값 패턴 처리 (key=xxx 형태)
			if strings.Contains(match, "=") || strings.Contains(match, ":") {
				parts := regexp.MustCompile(`[=:]`).Split(match, 2)
				if len(parts) == 2 {
					prefix := parts[0] + string(match[len(parts[0])])
					value := strings.TrimSpace(parts[1])
					return prefix + MaskValue(value)
				}
			}
			return MaskValue(match)
		})
	}
	return result
}

// MaskValue는 값의 앞 4자와 뒤 4자만 남기고 나머지를 ***로 대체합니다.
func MaskValue(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= 8 {
		return "***"
	}
	return value[:4] + "***" + value[len(value)-4:]
}
