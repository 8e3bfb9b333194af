// Package stdict는 표준국어대사전 오픈 API 클라이언트입니다.
// 검색(search.do)과 사전 내용 보기(view.do) 두 엔드포인트에 대해
// 쿼리 파라미터를 구성하고 응답 본문을 가공 없이 그대로 반환합니다.
package stdict

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// 표준국어대사전 오픈 API 기본 엔드포인트입니다.
const (
	DefaultSearchURL = "https://stdict.korean.go.kr/api/search.do"
	DefaultViewURL   = "https://stdict.korean.go.kr/api/view.do"
)

// Client는 표준국어대사전 API 클라이언트입니다.
// 응답 본문(XML/JSON)은 파싱하지 않고 텍스트 그대로 전달합니다.
type Client struct {
	searchURL  string
	viewURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient는 새 Client를 생성합니다.
// searchURL/viewURL이 비어있으면 기본 엔드포인트를 사용합니다.
func NewClient(searchURL, viewURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	if viewURL == "" {
		viewURL = DefaultViewURL
	}
	return &Client{
		searchURL: searchURL,
		viewURL:   viewURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "stdict.client").Logger(),
	}
}

// SearchURL은 설정된 검색 엔드포인트를 반환합니다.
func (c *Client) SearchURL() string { return c.searchURL }

// ViewURL은 설정된 사전 내용 보기 엔드포인트를 반환합니다.
func (c *Client) ViewURL() string { return c.viewURL }

// Search는 search.do에 검색 요청을 보내고 응답 본문을 그대로 반환합니다.
func (c *Client) Search(ctx context.Context, req SearchRequest) (string, error) {
	return c.get(ctx, c.searchURL, req.Values())
}

// View는 view.do에 사전 내용 보기 요청을 보내고 응답 본문을 그대로 반환합니다.
func (c *Client) View(ctx context.Context, req ViewRequest) (string, error) {
	return c.get(ctx, c.viewURL, req.Values())
}

// get은 GET 요청 한 번을 실행합니다.
// 2xx 응답의 본문을 그대로 반환하고, 그 외 상태 코드는 오류로 처리합니다.
// 재시도는 하지 않습니다.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (string, error) {
	reqURL := endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("요청 생성 실패: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("q", params.Get("q")).
		Str("req_type", params.Get("req_type")).
		Msg("API 요청 전송")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("사전 서버 통신 실패: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("응답 읽기 실패: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("API 오류 (HTTP %d): %s", resp.StatusCode, snippet(body))
	}

	return string(body), nil
}

// snippet은 오류 메시지에 넣을 응답 본문 일부를 반환합니다.
func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
