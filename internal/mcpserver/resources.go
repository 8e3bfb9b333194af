package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/insajin/stdict-mcp/internal/stdict"
	"github.com/mark3labs/mcp-go/mcp"
)

// 상태 리소스 캐시 키
const cacheKeyStatus = "resource:status"

// APIStatus는 사전 API 연결 상태 정보입니다.
type APIStatus struct {
	Connected  bool   `json:"connected"`
	SearchURL  string `json:"search_url"`
	ViewURL    string `json:"view_url"`
	ServerName string `json:"server_name"`
	Version    string `json:"version"`
	Message    string `json:"message,omitempty"`
	Cached     bool   `json:"cached,omitempty"`
	CachedAt   string `json:"cached_at,omitempty"`
}

// newTextResource는 텍스트 리소스 콘텐츠를 생성하는 헬퍼입니다.
func newTextResource(uri, text, mimeType string) mcp.TextResourceContents {
	return mcp.TextResourceContents{
		URI:      uri,
		MIMEType: mimeType,
		Text:     text,
	}
}

// handleStatusResource는 stdict://status 리소스 핸들러입니다.
// 최소 검색 요청을 헬스체크로 사용해 사전 API 도달 가능 여부를 확인합니다.
// 사전 서버 미연결 시 캐시된 상태 정보를 폴백으로 반환합니다.
func (s *Server) handleStatusResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status := APIStatus{
		ServerName: ServerName,
		Version:    ServerVersion,
		SearchURL:  s.client.SearchURL(),
		ViewURL:    s.client.ViewURL(),
	}

	probe := stdict.DefaultSearchRequest("한", s.apiKey)
	_, err := s.client.Search(ctx, probe)
	if err != nil {
		s.logger.Warn().Err(err).Msg("사전 API 연결 상태 확인 실패")

		// 캐시에서 폴백 데이터 조회 (만료된 것도 허용)
		// 상태 타입이 아닌 항목은 무시하고 기본 에러 응답으로 넘어갑니다.
		if cached, storedAt, ok := s.cache.GetStale(cacheKeyStatus); ok {
			if cachedStatus, ok := cached.(*APIStatus); ok {
				s.logger.Info().Msg("캐시된 상태 정보를 폴백으로 반환")
				fallback := *cachedStatus
				fallback.Connected = false
				fallback.Message = fmt.Sprintf("Dictionary API unreachable: %s (returning cached data)", err.Error())
				fallback.Cached = true
				fallback.CachedAt = storedAt.Format(time.RFC3339)

				data, marshalErr := json.MarshalIndent(fallback, "", "  ")
				if marshalErr != nil {
					return nil, fmt.Errorf("상태 직렬화 실패: %w", marshalErr)
				}
				return []mcp.ResourceContents{
					newTextResource(request.Params.URI, string(data), "application/json"),
				}, nil
			}
		}

		// 캐시도 없으면 기본 에러 응답
		status.Connected = false
		status.Message = fmt.Sprintf("Dictionary API unreachable: %s", err.Error())
	} else {
		status.Connected = true
		status.Message = "Connected to Standard Korean Dictionary API"

		s.cache.Set(cacheKeyStatus, &status)
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("상태 직렬화 실패: %w", err)
	}

	return []mcp.ResourceContents{
		newTextResource(request.Params.URI, string(data), "application/json"),
	}, nil
}
