// Package cmd는 stdict MCP 어댑터 CLI의 명령어를 정의합니다.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/insajin/stdict-mcp/internal/config"
	"github.com/insajin/stdict-mcp/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// 전역 플래그
	cfgFile string
	verbose bool

	// 버전 정보 (main에서 주입)
	appVersion   string
	appCommit    string
	appBuildDate string
)

// rootCmd는 CLI의 루트 명령어입니다.
var rootCmd = &cobra.Command{
	Use:   "stdict-mcp",
	Short: "표준국어대사전 MCP 어댑터",
	Long: `stdict-mcp는 표준국어대사전 오픈 API를 MCP(model-context-protocol)
도구로 노출하는 어댑터입니다.

serve 명령으로 stdio 기반 MCP 서버를 시작하거나,
search/detail 명령으로 터미널에서 직접 사전을 조회할 수 있습니다.

인증 키 발급: https://stdict.korean.go.kr/openapi/openApiInfo.do`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger()
	},
}

// Execute는 루트 명령어를 실행합니다.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo는 버전 정보를 설정합니다.
func SetVersionInfo(version, commit, buildDate string) {
	appVersion = version
	appCommit = commit
	appBuildDate = buildDate
}

// GetVersionInfo는 버전 정보를 반환합니다.
func GetVersionInfo() (version, commit, buildDate string) {
	return appVersion, appCommit, appBuildDate
}

func init() {
	cobra.OnInitialize(initConfig)

	// 전역 플래그 정의
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"설정 파일 경로 (기본값: ~/.config/stdict-mcp/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"상세 로그 출력 (debug 레벨)")
}

// initConfig는 설정 파일을 초기화합니다.
// 설정 우선순위: 환경변수 > 설정파일 > 기본값
func initConfig() {
	// 작업 디렉토리의 .env 파일 로드 (없어도 오류 아님)
	_ = godotenv.Load()

	if cfgFile != "" {
		// 명시적 설정 파일 사용
		viper.SetConfigFile(cfgFile)
	} else {
		// 기본 설정 경로: ~/.config/stdict-mcp/config.yaml
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "홈 디렉토리를 찾을 수 없습니다: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "stdict-mcp")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// 환경변수 자동 바인딩 (STDICT_ 접두사)
	viper.SetEnvPrefix("STDICT")
	viper.AutomaticEnv()

	// 기본값 설정
	setDefaults()

	// 설정 파일 읽기 (없어도 오류 아님)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// 설정 파일이 있지만 읽기 실패한 경우만 오류
			fmt.Fprintf(os.Stderr, "설정 파일 읽기 실패: %v\n", err)
		}
	}
}

// setDefaults는 기본 설정값을 정의합니다.
func setDefaults() {
	// 사전 API 설정
	viper.SetDefault("http.search_url", "")
	viper.SetDefault("http.view_url", "")
	viper.SetDefault("http.timeout", "30s")

	// 로깅 설정
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.file", "")

	// MCP 서버 설정
	viper.SetDefault("mcpserver.cache_ttl", "30s")
}

// initLogger는 로거를 초기화합니다.
func initLogger() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// verbose 플래그가 설정되면 debug 레벨로 오버라이드
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger.Setup(cfg.Logging)
	return nil
}
