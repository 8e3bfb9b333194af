// Package config는 stdict MCP 어댑터의 설정 관리를 담당합니다.
// 설정 우선순위: 환경변수 > 설정파일 > 기본값
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config는 전체 애플리케이션 설정을 나타냅니다.
type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http" yaml:"http"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	MCPServer MCPServerConfig `mapstructure:"mcpserver" yaml:"mcpserver"`
}

// HTTPConfig는 사전 API 호출 설정입니다.
type HTTPConfig struct {
	// SearchURL은 검색 API 엔드포인트입니다. 비어있으면 기본 엔드포인트를 사용합니다.
	SearchURL string `mapstructure:"search_url" yaml:"search_url"`
	// ViewURL은 사전 내용 보기 API 엔드포인트입니다.
	ViewURL string `mapstructure:"view_url" yaml:"view_url"`
	// Timeout은 HTTP 요청 타임아웃입니다 (예: "30s").
	Timeout string `mapstructure:"timeout" yaml:"timeout"`
}

// LoggingConfig는 로깅 설정입니다.
type LoggingConfig struct {
	// Level은 로그 레벨입니다 (debug, info, warn, error).
	Level string `mapstructure:"level" yaml:"level"`
	// Format은 로그 포맷입니다 (json, text).
	Format string `mapstructure:"format" yaml:"format"`
	// File은 로그 파일 경로입니다. 비어있으면 stderr로 출력합니다.
	// stdout은 MCP stdio 트랜스포트가 사용하므로 로그 출력에 쓰지 않습니다.
	File string `mapstructure:"file" yaml:"file"`
}

// MCPServerConfig는 MCP 서버 설정입니다.
type MCPServerConfig struct {
	// CacheTTL은 상태 리소스 폴백 캐시의 TTL입니다 (예: "30s").
	CacheTTL string `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

// Load는 viper에 로드된 설정을 Config 구조체로 변환합니다.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// GetTimeout은 HTTP 타임아웃을 반환합니다.
// 설정이 없거나 파싱할 수 없으면 기본값 30초를 반환합니다.
func (h *HTTPConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(h.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetCacheTTL은 상태 캐시 TTL을 반환합니다.
// 설정이 없거나 파싱할 수 없으면 기본값 30초를 반환합니다.
func (m *MCPServerConfig) GetCacheTTL() time.Duration {
	d, err := time.ParseDuration(m.CacheTTL)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Validate는 설정의 유효성을 검사합니다.
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("유효하지 않은 로그 레벨: %s (debug, info, warn, error 중 하나)", c.Logging.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("유효하지 않은 로그 포맷: %s (json, text 중 하나)", c.Logging.Format)
	}

	if c.HTTP.Timeout != "" {
		if _, err := time.ParseDuration(c.HTTP.Timeout); err != nil {
			return fmt.Errorf("유효하지 않은 HTTP 타임아웃: %s", c.HTTP.Timeout)
		}
	}

	return nil
}

// expandPath는 ~를 홈 디렉토리로 확장합니다.
func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// EnsureConfigDir는 설정 디렉토리가 존재하는지 확인하고 없으면 생성합니다.
func EnsureConfigDir() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("홈 디렉토리를 찾을 수 없습니다: %w", err)
	}

	configDir := filepath.Join(home, ".config", "stdict-mcp")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}

	return nil
}

// DefaultConfigPath는 기본 설정 파일 경로를 반환합니다.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stdict-mcp", "config.yaml")
}
