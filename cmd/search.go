package cmd

import (
	"fmt"

	"github.com/insajin/stdict-mcp/internal/config"
	"github.com/insajin/stdict-mcp/internal/stdict"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// search 명령 플래그
var (
	searchAPIKey     string
	searchReqType    string
	searchStart      int
	searchNum        int
	searchAdvanced   bool
	searchTarget     int
	searchMethod     string
	searchType1      string
	searchType2      string
	searchPos        string
	searchCat        string
	searchMultimedia string
	searchLetterS    int
	searchLetterE    int
	searchUpdateS    string
	searchUpdateE    string
)

// searchCmd는 터미널에서 직접 사전을 검색하는 명령어입니다.
// MCP 도구와 같은 클라이언트를 사용하며, 원본 응답을 그대로 출력합니다.
var searchCmd = &cobra.Command{
	Use:   "search <검색어>",
	Short: "표준국어대사전을 검색합니다",
	Long: `표준국어대사전에서 검색어를 찾고 API 원본 응답(JSON 또는 XML)을
그대로 출력합니다. 응답 본문은 파싱하거나 가공하지 않습니다.

예시:
  stdict-mcp search 사랑
  stdict-mcp search 사랑 --req-type xml --num 20
  stdict-mcp search 사랑 --advanced --method include --pos 1`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchAPIKey, "api-key", "", "인증 키 (기본값: 해석된 키)")
	searchCmd.Flags().StringVar(&searchReqType, "req-type", stdict.ReqTypeJSON, "응답 형식 (json, xml)")
	searchCmd.Flags().IntVar(&searchStart, "start", 1, "검색 시작 번호 (1~1000)")
	searchCmd.Flags().IntVar(&searchNum, "num", 10, "결과 출력 건수 (10~100)")
	searchCmd.Flags().BoolVar(&searchAdvanced, "advanced", false, "자세히 찾기 사용")
	searchCmd.Flags().IntVar(&searchTarget, "target", 1, "찾을 대상 (1~11, 자세히 찾기 전용)")
	searchCmd.Flags().StringVar(&searchMethod, "method", "exact", "검색 방식 (exact, include, start, end, wildcard)")
	searchCmd.Flags().StringVar(&searchType1, "type1", "all", "구분 1 (콤마 구분)")
	searchCmd.Flags().StringVar(&searchType2, "type2", "all", "구분 2 (콤마 구분)")
	searchCmd.Flags().StringVar(&searchPos, "pos", "0", "품사 코드 (콤마 구분)")
	searchCmd.Flags().StringVar(&searchCat, "cat", "0", "전문 분야 코드 (콤마 구분)")
	searchCmd.Flags().StringVar(&searchMultimedia, "multimedia", "0", "멀티미디어 코드 (콤마 구분)")
	searchCmd.Flags().IntVar(&searchLetterS, "letter-s", 1, "음절 수 시작")
	searchCmd.Flags().IntVar(&searchLetterE, "letter-e", 1, "음절 수 끝")
	searchCmd.Flags().StringVar(&searchUpdateS, "update-s", "", "고친 날짜 시작일 (yyyymmdd)")
	searchCmd.Flags().StringVar(&searchUpdateE, "update-e", "", "고친 날짜 종료일 (yyyymmdd)")
}

// runSearch는 검색 요청 한 번을 실행하고 원본 응답을 출력합니다.
func runSearch(cmd *cobra.Command, args []string) error {
	apiKey, err := resolveKeyOverride(searchAPIKey)
	if err != nil {
		return err
	}

	client := newCLIClient()

	req := stdict.SearchRequest{
		Query:      args[0],
		APIKey:     apiKey,
		ReqType:    searchReqType,
		Start:      searchStart,
		Num:        searchNum,
		Advanced:   searchAdvanced,
		Target:     searchTarget,
		Method:     searchMethod,
		Type1:      searchType1,
		Type2:      searchType2,
		Pos:        searchPos,
		Cat:        searchCat,
		Multimedia: searchMultimedia,
		LetterS:    searchLetterS,
		LetterE:    searchLetterE,
		UpdateS:    searchUpdateS,
		UpdateE:    searchUpdateE,
	}

	body, err := client.Search(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("사전 검색 실패: %w", err)
	}

	fmt.Println(body)
	return nil
}

// resolveKeyOverride는 플래그로 지정한 키가 있으면 그대로 사용하고,
// 없으면 환경변수/설정 파일 순서로 키를 해석합니다.
func resolveKeyOverride(flagKey string) (string, error) {
	if flagKey != "" {
		return flagKey, nil
	}
	key, err := config.ResolveAPIKey()
	if err != nil {
		return "", err
	}
	return key, nil
}

// newCLIClient는 CLI 명령용 사전 API 클라이언트를 생성합니다.
func newCLIClient() *stdict.Client {
	cfg, err := config.Load()
	if err != nil {
		// 설정 로드 실패 시 기본값으로 진행
		cfg = &config.Config{}
	}
	return stdict.NewClient(cfg.HTTP.SearchURL, cfg.HTTP.ViewURL, cfg.HTTP.GetTimeout(), zerolog.Nop())
}
