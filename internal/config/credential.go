package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// APIKeyEnvVar는 인증 키를 담는 환경변수 이름입니다.
const APIKeyEnvVar = "STDICT_API_KEY"

// claudeServerName은 Claude Desktop 설정에서 이 서버의 항목 이름입니다.
const claudeServerName = "stdict"

// ErrAPIKeyNotFound는 어떤 소스에서도 인증 키를 찾지 못했을 때 반환됩니다.
// serve 시작 시 이 오류가 발생하면 프로세스는 요청을 받기 전에 종료됩니다.
var ErrAPIKeyNotFound = errors.New(
	"API 키를 찾을 수 없습니다. STDICT_API_KEY 환경변수를 설정하거나 Claude Desktop 설정 파일에 키를 추가하세요")

// KeySource는 인증 키가 어디에서 해석되었는지를 나타냅니다.
type KeySource string

const (
	// KeySourceEnv는 환경변수에서 키를 찾은 경우입니다.
	KeySourceEnv KeySource = "env"
	// KeySourceClaudeConfig는 Claude Desktop 설정 파일에서 키를 찾은 경우입니다.
	KeySourceClaudeConfig KeySource = "claude-config"
	// KeySourceNone은 키를 찾지 못한 경우입니다.
	KeySourceNone KeySource = "none"
)

// claudeDesktopConfig는 Claude Desktop 설정 파일에서 필요한 부분만 읽습니다.
type claudeDesktopConfig struct {
	MCPServers map[string]struct {
		Env map[string]string `json:"env"`
	} `json:"mcpServers"`
}

// ResolveAPIKey는 인증 키를 해석합니다. 우선순위는 다음과 같습니다:
//  1. STDICT_API_KEY 환경변수
//  2. Claude Desktop 설정 파일의 mcpServers.stdict.env.STDICT_API_KEY
//
// 어디에서도 키를 찾지 못하면 ErrAPIKeyNotFound를 반환합니다.
func ResolveAPIKey() (string, error) {
	key, _, err := ResolveAPIKeyWithSource()
	return key, err
}

// ResolveAPIKeyWithSource는 인증 키와 해석된 소스를 함께 반환합니다.
// config 명령의 상태 출력에 사용됩니다.
func ResolveAPIKeyWithSource() (string, KeySource, error) {
	return resolveAPIKey(ClaudeDesktopConfigPath())
}

// resolveAPIKey는 주어진 Claude Desktop 설정 경로를 폴백으로 키를 해석합니다.
func resolveAPIKey(claudeConfigPath string) (string, KeySource, error) {
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key, KeySourceEnv, nil
	}

	if key := keyFromClaudeConfig(claudeConfigPath); key != "" {
		return key, KeySourceClaudeConfig, nil
	}

	return "", KeySourceNone, ErrAPIKeyNotFound
}

// ClaudeDesktopConfigPath는 Claude Desktop 설정 파일 경로를 반환합니다.
// macOS에서는 ~/Library/Application Support/Claude/claude_desktop_config.json입니다.
func ClaudeDesktopConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "Claude", "claude_desktop_config.json")
}

// keyFromClaudeConfig는 Claude Desktop 설정 파일에서 키를 읽습니다.
// 파일이 없거나, 읽을 수 없거나, JSON이 손상된 경우는 모두
// "키 없음"으로 취급합니다. 선택적 폴백 소스이므로 하드 오류가 아닙니다.
func keyFromClaudeConfig(path string) string {
	if path == "" {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var cfg claudeDesktopConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return ""
	}

	server, ok := cfg.MCPServers[claudeServerName]
	if !ok {
		return ""
	}
	return server.Env[APIKeyEnvVar]
}
