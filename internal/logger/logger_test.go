package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/insajin/stdict-mcp/internal/config"
)

// TestNew_MasksKeyInOutput은 New가 생성한 로거의 출력이 마스킹 Writer를
// 거치는지 테스트합니다. 인증 키가 포함된 URL을 로그로 남겨 확인합니다.
func TestNew_MasksKeyInOutput(t *testing.T) {
	const key = "0123456789abcdef0123456789abcdef"
	logFile := filepath.Join(t.TempDir(), "stdict.log")

	lg := New(config.LoggingConfig{Level: "info", Format: "json", File: logFile})
	lg.Info().Str("url", "https://stdict.korean.go.kr/api/search.do?q=사랑&key="+key).Msg("요청")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("로그 파일 읽기 실패: %v", err)
	}
	if strings.Contains(string(data), key) {
		t.Errorf("인증 키가 로그에 평문으로 남아있습니다: %s", data)
	}
	if !strings.Contains(string(data), "***") {
		t.Errorf("마스킹 표시가 없습니다: %s", data)
	}
}

// TestMaskSensitive_HexKey는 16진수 32자리 인증 키가 마스킹되는지 테스트합니다.
func TestMaskSensitive_HexKey(t *testing.T) {
	const key = "0123456789abcdef0123456789abcdef"
	input := "요청 URL: https://stdict.korean.go.kr/api/search.do?q=사랑&key=" + key

	masked := MaskSensitive(input)

	if strings.Contains(masked, key) {
		t.Errorf("인증 키가 평문으로 남아있습니다: %s", masked)
	}
	if !strings.Contains(masked, "***") {
		t.Errorf("마스킹 표시가 없습니다: %s", masked)
	}
}

// TestMaskSensitive_KeyValuePattern은 key=값 형태의 마스킹을 테스트합니다.
func TestMaskSensitive_KeyValuePattern(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		secret string
	}{
		{"api_key 파라미터", "api_key=supersecretvalue123", "supersecretvalue123"},
		{"token 콜론", "token: verysecrettoken456", "verysecrettoken456"},
		{"secret 파라미터", "secret=topsecretvalue789", "topsecretvalue789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked := MaskSensitive(tt.input)
			if strings.Contains(masked, tt.secret) {
				t.Errorf("민감 정보가 평문으로 남아있습니다: %s", masked)
			}
		})
	}
}

// TestMaskSensitive_PlainText는 일반 텍스트가 변경되지 않는지 테스트합니다.
func TestMaskSensitive_PlainText(t *testing.T) {
	input := "사전 검색 요청 query=사랑 advanced=n"
	if masked := MaskSensitive(input); masked != input {
		t.Errorf("일반 텍스트가 변경되었습니다: %q -> %q", input, masked)
	}
}

// TestMaskValue는 값 마스킹 규칙을 테스트합니다.
func TestMaskValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0123456789abcdef", "0123***cdef"},
		{"short", "***"},
		{"12345678", "***"},
	}

	for _, tt := range tests {
		if got := MaskValue(tt.input); got != tt.want {
			t.Errorf("MaskValue(%q) = %q, 기대값 %q", tt.input, got, tt.want)
		}
	}
}
