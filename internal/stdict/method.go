package stdict

import "unicode"

// InferMethod는 질의 형태로부터 보기 요청의 method를 추론합니다.
// 질의가 전부 십진 숫자이면 대상 코드 직접 조회(target_code),
// 그 외에는 표제어 조회(word_info)로 분류합니다.
// 숫자로만 된 표제어(차용 숫자 표기)도 항상 target_code로 분류됩니다.
func InferMethod(query string) string {
	if isDigits(query) {
		return MethodTargetCode
	}
	return MethodWordInfo
}

// isDigits는 문자열이 비어있지 않고 십진 숫자로만 구성되었는지 확인합니다.
// 전각 숫자 등 유니코드 십진 숫자도 포함합니다.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
