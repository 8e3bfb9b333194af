package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/insajin/stdict-mcp/internal/config"
	"github.com/insajin/stdict-mcp/internal/logger"
	"github.com/insajin/stdict-mcp/internal/mcpserver"
	"github.com/insajin/stdict-mcp/internal/stdict"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

// serveCmd는 MCP 서버를 시작하는 Cobra 서브커맨드입니다.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "표준국어대사전 MCP 서버를 시작합니다 (stdio 트랜스포트)",
	Long: `표준국어대사전 MCP 서버를 stdio 트랜스포트로 시작합니다.
MCP 호스트(Claude Desktop 등)가 사전 검색/보기 API를 도구로 호출할 수 있도록 합니다.

사용 예시 (Claude Desktop MCP 설정):
  {
    "mcpServers": {
      "stdict": {
        "command": "stdict-mcp",
        "args": ["serve"],
        "env": {
          "STDICT_API_KEY": "<발급받은 인증 키>"
        }
      }
    }
  }`,
	RunE: runServe,
}

// runServe는 MCP 서버를 시작합니다.
func runServe(cmd *cobra.Command, args []string) error {
	// 1. 설정 로드
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("설정 검증 실패: %w", err)
	}

	// 로거 초기화 (마스킹 Writer 경유, stdout은 MCP stdio에서 사용)
	lg := logger.New(cfg.Logging).With().Str("component", "serve").Logger()

	lg.Info().Msg("표준국어대사전 MCP 서버를 시작합니다...")

	// 2. 인증 키 해석 (시작 시 한 번, 실패 시 프로세스 종료)
	apiKey, source, err := config.ResolveAPIKeyWithSource()
	if err != nil {
		return fmt.Errorf("인증 키 해석 실패: %w", err)
	}

	lg.Info().
		Str("source", string(source)).
		Msg("인증 키 해석 완료")

	// 3. 사전 API 클라이언트 생성
	client := stdict.NewClient(cfg.HTTP.SearchURL, cfg.HTTP.ViewURL, cfg.HTTP.GetTimeout(), lg)

	// 4. MCP 서버 생성
	srv := mcpserver.NewServer(client, apiKey, lg, cfg.MCPServer.GetCacheTTL())

	// 5. 시그널 핸들링 (graceful shutdown)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		lg.Info().Str("signal", sig.String()).Msg("종료 시그널 수신, MCP 서버를 종료합니다")
		os.Exit(0)
	}()

	// 6. MCP 서버 시작 (stdio, 블로킹)
	lg.Info().
		Str("search_url", client.SearchURL()).
		Str("view_url", client.ViewURL()).
		Str("timeout", cfg.HTTP.GetTimeout().String()).
		Msg("MCP 서버 준비 완료, stdio 대기 중...")

	if err := srv.Start(); err != nil {
		return fmt.Errorf("MCP 서버 실행 실패: %w", err)
	}

	return nil
}
