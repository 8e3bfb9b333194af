// Package cmd는 stdict MCP 어댑터 CLI의 명령어를 정의합니다.
// config.go는 설정 관리 명령을 구현합니다.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/insajin/stdict-mcp/internal/config"
	"github.com/insajin/stdict-mcp/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd는 설정 관리를 위한 상위 명령어입니다.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "설정을 관리합니다",
	Long: `설정 파일의 값을 조회하거나 수정합니다.

설정 파일 위치: ~/.config/stdict-mcp/config.yaml

인증 키는 설정 파일이 아니라 STDICT_API_KEY 환경변수 또는
Claude Desktop 설정 파일(mcpServers.stdict.env)로 설정합니다.`,
}

// configSetCmd는 설정 값을 저장하는 명령어입니다.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "설정 값을 저장합니다",
	Long: `설정 파일에 값을 저장합니다.

키는 점(.)으로 구분된 경로를 사용합니다.
예시:
  stdict-mcp config set http.timeout 10s
  stdict-mcp config set logging.level debug

지원하는 설정 키:
  http.search_url      - 검색 API 엔드포인트 (비어있으면 기본 엔드포인트)
  http.view_url        - 사전 내용 보기 API 엔드포인트
  http.timeout         - HTTP 요청 타임아웃 (예: 30s)
  logging.level        - 로그 레벨 (debug, info, warn, error)
  logging.format       - 로그 포맷 (json, text)
  logging.file         - 로그 파일 경로 (비어있으면 stderr)
  mcpserver.cache_ttl  - 상태 리소스 캐시 TTL (예: 30s)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configGetCmd는 설정 값을 조회하는 명령어입니다.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "설정 값을 조회합니다",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

// configListCmd는 전체 설정과 인증 키 상태를 출력하는 명령어입니다.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "전체 설정을 출력합니다",
	RunE:  runConfigList,
}

// configPathCmd는 설정 파일 경로를 출력하는 명령어입니다.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "설정 파일 경로를 출력합니다",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.DefaultConfigPath())
		return nil
	},
}

// configInitCmd는 기본 설정 파일을 생성하는 명령어입니다.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "기본 설정 파일을 생성합니다",
	Long: `기본 설정 파일을 ~/.config/stdict-mcp/config.yaml에 생성합니다.

이미 파일이 존재하면 덮어쓰지 않습니다.
강제로 덮어쓰려면 --force 플래그를 사용하세요.`,
	RunE: runConfigInit,
}

var forceInit bool

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "기존 파일을 덮어씁니다")
}

// runConfigSet은 설정 값을 저장합니다.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if !isValidConfigKey(key) {
		return fmt.Errorf("알 수 없는 설정 키: %s", key)
	}

	viper.Set(key, value)

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}

	configPath := config.DefaultConfigPath()
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("설정 파일 저장 실패: %w", err)
	}

	fmt.Printf("%s = %v\n", key, value)
	fmt.Printf("설정이 저장되었습니다: %s\n", configPath)
	return nil
}

// runConfigGet은 설정 값을 조회합니다.
func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value := viper.Get(key)
	if value == nil {
		return fmt.Errorf("설정 키를 찾을 수 없습니다: %s", key)
	}

	fmt.Printf("%s = %v\n", key, value)
	return nil
}

// runConfigList는 전체 설정과 인증 키 해석 상태를 출력합니다.
func runConfigList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		fmt.Printf("# 설정 파일: %s\n", configFile)
	} else {
		fmt.Printf("# 설정 파일: (기본값 사용 중)\n")
	}
	fmt.Println()

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("YAML 직렬화 실패: %w", err)
	}

	fmt.Println(string(yamlData))

	// 인증 키 해석 상태 출력
	fmt.Println("# 인증 키 상태:")
	key, source, err := config.ResolveAPIKeyWithSource()
	if err != nil {
		fmt.Printf("  %s: 설정되지 않음\n", config.APIKeyEnvVar)
		fmt.Printf("  Claude Desktop 설정: %s\n", config.ClaudeDesktopConfigPath())
	} else {
		fmt.Printf("  키: %s (소스: %s)\n", logger.MaskValue(key), source)
	}

	return nil
}

// runConfigInit은 기본 설정 파일을 생성합니다.
func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := config.DefaultConfigPath()

	if !forceInit {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("설정 파일이 이미 존재합니다: %s\n--force 플래그로 덮어쓸 수 있습니다", configPath)
		}
	}

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}

	defaultConfig := `# stdict-mcp 설정 파일
# 생성됨: stdict-mcp config init
#
# 인증 키는 STDICT_API_KEY 환경변수로 설정하세요.

http:
  search_url: ""   # 비어있으면 기본 엔드포인트 사용
  view_url: ""
  timeout: "30s"

logging:
  level: "info"    # debug, info, warn, error
  format: "json"   # json, text
  file: ""         # 비어있으면 stderr

mcpserver:
  cache_ttl: "30s"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0600); err != nil {
		return fmt.Errorf("설정 파일 생성 실패: %w", err)
	}

	fmt.Printf("설정 파일이 생성되었습니다: %s\n", configPath)
	fmt.Println("\n다음 환경변수를 설정하세요:")
	fmt.Println("  export STDICT_API_KEY=<발급받은 인증 키>")
	return nil
}

// isValidConfigKey는 유효한 설정 키인지 확인합니다.
func isValidConfigKey(key string) bool {
	validKeys := map[string]bool{
		"http.search_url":     true,
		"http.view_url":       true,
		"http.timeout":        true,
		"logging.level":       true,
		"logging.format":      true,
		"logging.file":        true,
		"mcpserver.cache_ttl": true,
	}
	return validKeys[strings.ToLower(key)]
}
