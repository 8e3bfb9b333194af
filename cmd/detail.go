package cmd

import (
	"fmt"

	"github.com/insajin/stdict-mcp/internal/stdict"
	"github.com/spf13/cobra"
)

// detail 명령 플래그
var (
	detailAPIKey  string
	detailMethod  string
	detailReqType string
)

// detailCmd는 터미널에서 사전 항목의 상세 내용을 조회하는 명령어입니다.
var detailCmd = &cobra.Command{
	Use:   "detail <표제어 또는 대상 코드>",
	Short: "사전 항목의 상세 내용을 조회합니다",
	Long: `표제어 또는 대상 코드(target code)로 사전 항목의 상세 내용을 조회하고
API 원본 응답(JSON 또는 XML)을 그대로 출력합니다.

method를 지정하지 않으면 질의 형태로 추론합니다:
숫자로만 된 질의는 target_code, 그 외에는 word_info로 처리합니다.

예시:
  stdict-mcp detail 사랑
  stdict-mcp detail 422126
  stdict-mcp detail 사랑 --req-type xml`,
	Args: cobra.ExactArgs(1),
	RunE: runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)

	detailCmd.Flags().StringVar(&detailAPIKey, "api-key", "", "인증 키 (기본값: 해석된 키)")
	detailCmd.Flags().StringVar(&detailMethod, "method", "", "검색 방식 (word_info, target_code; 미지정 시 추론)")
	detailCmd.Flags().StringVar(&detailReqType, "req-type", stdict.ReqTypeJSON, "응답 형식 (json, xml)")
}

// runDetail은 보기 요청 한 번을 실행하고 원본 응답을 출력합니다.
func runDetail(cmd *cobra.Command, args []string) error {
	query := args[0]

	method := detailMethod
	if method == "" {
		method = stdict.InferMethod(query)
	}
	if !stdict.ValidMethod(method) {
		return fmt.Errorf("유효하지 않은 method: %s (word_info, target_code 중 하나)", method)
	}
	if !stdict.ValidReqType(detailReqType) {
		return fmt.Errorf("유효하지 않은 req-type: %s (json, xml 중 하나)", detailReqType)
	}

	apiKey, err := resolveKeyOverride(detailAPIKey)
	if err != nil {
		return err
	}

	client := newCLIClient()

	body, err := client.View(cmd.Context(), stdict.ViewRequest{
		Query:   query,
		APIKey:  apiKey,
		Method:  method,
		ReqType: detailReqType,
	})
	if err != nil {
		return fmt.Errorf("사전 내용 보기 실패: %w", err)
	}

	fmt.Println(body)
	return nil
}
