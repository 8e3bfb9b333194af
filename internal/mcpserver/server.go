// Package mcpserver는 표준국어대사전 MCP 서버를 구현합니다.
// MCP 호스트(Claude Desktop 등)가 사전 검색/보기 API를 도구로 호출할 수 있도록 합니다.
package mcpserver

import (
	"time"

	"github.com/insajin/stdict-mcp/internal/stdict"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

const (
	// ServerName은 MCP 서버 이름입니다.
	ServerName = "stdict"
	// ServerVersion은 MCP 서버 버전입니다.
	ServerVersion = "0.1.0"
)

// DefaultCacheTTL은 상태 리소스 폴백 캐시의 기본 TTL입니다.
const DefaultCacheTTL = 30 * time.Second

// Server는 stdict MCP 서버입니다.
// mark3labs/mcp-go를 사용하여 stdio 기반 MCP 프로토콜을 처리합니다.
// apiKey는 시작 시 한 번 해석된 기본 인증 키이며, 각 도구 호출의
// api_key 인자가 이를 오버라이드할 수 있습니다.
type Server struct {
	mcpServer *server.MCPServer
	client    *stdict.Client
	apiKey    string
	cache     *Cache
	logger    zerolog.Logger
}

// NewServer는 새 MCP 서버를 생성합니다.
func NewServer(client *stdict.Client, apiKey string, logger zerolog.Logger, cacheTTL time.Duration) *Server {
	s := &Server{
		client: client,
		apiKey: apiKey,
		cache:  NewCache(cacheTTL),
		logger: logger.With().Str("component", "mcpserver").Logger(),
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()

	s.logger.Info().
		Str("name", ServerName).
		Str("version", ServerVersion).
		Msg("MCP 서버 초기화 완료")

	return s
}

// Start는 stdio 기반 MCP 서버를 시작합니다.
// 이 함수는 서버가 종료될 때까지 블로킹됩니다.
func (s *Server) Start() error {
	s.logger.Info().Msg("MCP 서버 시작 (stdio 트랜스포트)")
	return server.ServeStdio(s.mcpServer)
}

// registerTools는 search와 detail 도구를 등록합니다.
func (s *Server) registerTools() {
	// 1. search - 표준국어대사전 검색
	searchTool := mcp.NewTool("search",
		mcp.WithDescription("Search the Standard Korean Dictionary (표준국어대사전). Returns the raw API response (JSON or XML) as text."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term (UTF-8 encoded Korean text)"),
		),
		mcp.WithString("api_key",
			mcp.Description("API key override (defaults to the key resolved at startup)"),
		),
		mcp.WithString("req_type",
			mcp.Description("Response format (default: json)"),
			mcp.Enum("json", "xml"),
		),
		mcp.WithNumber("start",
			mcp.Description("Start position of results, 1-1000 (default: 1)"),
		),
		mcp.WithNumber("num",
			mcp.Description("Number of results to return, 10-100 (default: 10)"),
		),
		mcp.WithBoolean("advanced",
			mcp.Description("Enable advanced search filters (default: false)"),
		),
		mcp.WithNumber("target",
			mcp.Description("Search target, 1-11: 1=headword, 2=original language, 3=etymology, 4=pronunciation, 5=conjugation, 6=sentence pattern, 7=grammar, 8=definition, 9=example, 10=example source, 11=example translation (advanced only, default: 1)"),
		),
		mcp.WithString("method",
			mcp.Description("Match method (advanced only, default: exact)"),
			mcp.Enum("exact", "include", "start", "end", "wildcard"),
		),
		mcp.WithString("type1",
			mcp.Description("Entry class filter, comma-joined: all, word, phrase, idiom, proverb (advanced only, default: all)"),
		),
		mcp.WithString("type2",
			mcp.Description("Origin class filter, comma-joined: all, native, chinese, loanword, hybrid (advanced only, default: all)"),
		),
		mcp.WithString("pos",
			mcp.Description("Part-of-speech codes 0-15, comma-joined (advanced only, default: 0)"),
		),
		mcp.WithString("cat",
			mcp.Description("Subject category codes 0-67, comma-joined (advanced only, default: 0)"),
		),
		mcp.WithString("multimedia",
			mcp.Description("Multimedia codes 0-6, comma-joined (advanced only, default: 0)"),
		),
		mcp.WithNumber("letter_s",
			mcp.Description("Minimum syllable count (advanced only, default: 1)"),
		),
		mcp.WithNumber("letter_e",
			mcp.Description("Maximum syllable count (advanced only, default: 1)"),
		),
		mcp.WithString("update_s",
			mcp.Description("Revision date range start, yyyymmdd (advanced only)"),
		),
		mcp.WithString("update_e",
			mcp.Description("Revision date range end, yyyymmdd (advanced only)"),
		),
	)
	s.mcpServer.AddTool(searchTool, s.handleSearch)

	// 2. detail - 사전 내용 보기
	detailTool := mcp.NewTool("detail",
		mcp.WithDescription("Get detailed information about a Standard Korean Dictionary entry by headword or target code. Returns the raw API response (JSON or XML) as text."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Headword (표제어) or numeric target code"),
		),
		mcp.WithString("api_key",
			mcp.Description("API key override (defaults to the key resolved at startup)"),
		),
		mcp.WithString("method",
			mcp.Description("Lookup method: word_info for headwords, target_code for numeric IDs. Inferred from the query when omitted."),
		),
		mcp.WithString("req_type",
			mcp.Description("Response format (default: json)"),
		),
	)
	s.mcpServer.AddTool(detailTool, s.handleDetail)

	s.logger.Debug().Msg("MCP 도구 2개 등록 완료")
}

// registerResources는 MCP 리소스를 등록합니다.
func (s *Server) registerResources() {
	// stdict://status - 사전 서버 연결 상태
	statusResource := mcp.NewResource(
		"stdict://status",
		"Dictionary API Status",
		mcp.WithResourceDescription("Standard Korean Dictionary API connection status and adapter information"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcpServer.AddResource(statusResource, s.handleStatusResource)

	s.logger.Debug().Msg("MCP 리소스 1개 등록 완료")
}
