package stdict

import "testing"

// TestInferMethod는 질의 형태에 따른 method 추론을 테스트합니다.
// 전부 십진 숫자인 질의만 target_code로 분류되어야 합니다.
func TestInferMethod(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"숫자만", "422126", MethodTargetCode},
		{"한 자리 숫자", "7", MethodTargetCode},
		{"긴 숫자", "999999999999999999", MethodTargetCode},
		{"한글 표제어", "사랑", MethodWordInfo},
		{"숫자 포함 표제어", "4대강", MethodWordInfo},
		{"숫자와 공백", "422 126", MethodWordInfo},
		{"음수 기호", "-42", MethodWordInfo},
		{"소수점", "3.14", MethodWordInfo},
		{"전각 숫자", "１２３", MethodTargetCode},
		{"전각·반각 혼합", "１23", MethodTargetCode},
		{"영문", "love", MethodWordInfo},
		{"빈 문자열", "", MethodWordInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferMethod(tt.query)
			if got != tt.want {
				t.Errorf("InferMethod(%q) = %q, 기대값 %q", tt.query, got, tt.want)
			}
		})
	}
}
