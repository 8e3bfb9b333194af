// Package main은 stdict MCP 어댑터 CLI의 진입점입니다.
// 표준국어대사전 오픈 API를 MCP 도구로 노출합니다.
package main

import (
	"os"

	"github.com/insajin/stdict-mcp/cmd"
)

// 빌드 시 ldflags로 주입되는 버전 정보
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// 버전 정보를 root 패키지에 설정
	cmd.SetVersionInfo(version, commit, buildDate)

	// CLI 실행
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
