package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// readStatus는 상태 리소스를 읽어 APIStatus로 디코딩합니다.
func readStatus(t *testing.T, srv *Server) APIStatus {
	t.Helper()

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "stdict://status"

	contents, err := srv.handleStatusResource(context.Background(), req)
	if err != nil {
		t.Fatalf("리소스 핸들러 오류: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("콘텐츠 수 = %d, 기대값 1", len(contents))
	}

	text, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("텍스트 리소스가 아닙니다: %T", contents[0])
	}

	var status APIStatus
	if err := json.Unmarshal([]byte(text.Text), &status); err != nil {
		t.Fatalf("상태 디코딩 실패: %v", err)
	}
	return status
}

// TestStatusResource_Connected는 사전 API 도달 가능 시의 상태를 테스트합니다.
func TestStatusResource_Connected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	srv := newTestServer(server.URL)

	status := readStatus(t, srv)
	if !status.Connected {
		t.Error("connected = false, 기대값 true")
	}
	if status.ServerName != ServerName {
		t.Errorf("server_name = %q, 기대값 %q", status.ServerName, ServerName)
	}
	if status.Cached {
		t.Error("첫 성공 응답은 캐시 표시가 없어야 합니다")
	}
}

// TestStatusResource_FallbackToCache는 사전 API 장애 시 캐시된 상태가
// 폴백으로 반환되는지 테스트합니다.
func TestStatusResource_FallbackToCache(t *testing.T) {
	healthy := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	srv := newTestServer(server.URL)

	// 첫 조회: 성공, 캐시 저장
	status := readStatus(t, srv)
	if !status.Connected {
		t.Fatal("첫 조회는 성공해야 합니다")
	}

	// 이후 장애: 캐시 폴백
	healthy = false
	status = readStatus(t, srv)
	if status.Connected {
		t.Error("장애 시 connected = false여야 합니다")
	}
	if !status.Cached {
		t.Error("캐시 폴백 시 cached = true여야 합니다")
	}
	if status.CachedAt == "" {
		t.Error("캐시 폴백 시 cached_at이 설정되어야 합니다")
	}
}

// TestStatusResource_IgnoresForeignCacheEntry는 상태 타입이 아닌 캐시 항목이
// 있어도 패닉 없이 기본 에러 응답으로 넘어가는지 테스트합니다.
func TestStatusResource_IgnoresForeignCacheEntry(t *testing.T) {
	srv := newTestServer("http://127.0.0.1:1")
	srv.cache.Set(cacheKeyStatus, "상태 타입이 아닌 값")

	status := readStatus(t, srv)
	if status.Connected {
		t.Error("장애 시 connected = false여야 합니다")
	}
	if status.Cached {
		t.Error("타입이 다른 캐시 항목은 폴백으로 쓰이면 안됩니다")
	}
	if status.Message == "" {
		t.Error("장애 메시지가 설정되어야 합니다")
	}
}

// TestStatusResource_NoCacheFallback은 캐시가 없는 장애 상황을 테스트합니다.
func TestStatusResource_NoCacheFallback(t *testing.T) {
	srv := newTestServer("http://127.0.0.1:1")

	status := readStatus(t, srv)
	if status.Connected {
		t.Error("장애 시 connected = false여야 합니다")
	}
	if status.Cached {
		t.Error("캐시가 없으면 cached = false여야 합니다")
	}
	if status.Message == "" {
		t.Error("장애 메시지가 설정되어야 합니다")
	}
}
