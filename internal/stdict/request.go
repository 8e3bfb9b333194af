package stdict

import (
	"net/url"
	"strconv"
)

// 요청 파라미터 허용값 상수입니다.
// 검색 API의 req_type, 사전 내용 보기 API의 method에 사용됩니다.
const (
	ReqTypeJSON = "json"
	ReqTypeXML  = "xml"

	MethodWordInfo   = "word_info"
	MethodTargetCode = "target_code"
)

// SearchRequest는 search.do 검색 요청 파라미터입니다.
// 값 검증은 하지 않습니다. 범위를 벗어난 값은 그대로 전달하고
// 원격 API가 거부하도록 둡니다.
type SearchRequest struct {
	// Query는 검색어입니다 (필수, UTF-8).
	Query string
	// APIKey는 인증 키입니다 (16진수 32자리).
	APIKey string
	// ReqType은 응답 형식입니다 (json 또는 xml).
	ReqType string
	// Start는 검색 시작 번호입니다 (1~1000).
	Start int
	// Num은 결과 출력 건수입니다 (10~100).
	Num int
	// Advanced는 자세히 찾기 사용 여부입니다.
	// true인 경우에만 아래 필터 필드들이 요청에 포함됩니다.
	Advanced bool

	// 자세히 찾기 필터 (Advanced=true일 때만 전송)

	// Target은 찾을 대상입니다 (1: 표제어 ~ 11: 용례 번역).
	Target int
	// Method는 검색 방식입니다 (exact, include, start, end, wildcard).
	Method string
	// Type1은 구분 1입니다 (all, word, phrase, idiom, proverb; 콤마 구분 다중 선택).
	Type1 string
	// Type2는 구분 2입니다 (all, native, chinese, loanword, hybrid; 콤마 구분 다중 선택).
	Type2 string
	// Pos는 품사 코드입니다 (0~15; 콤마 구분 다중 선택).
	Pos string
	// Cat은 전문 분야 코드입니다 (0~67; 콤마 구분 다중 선택).
	Cat string
	// Multimedia는 멀티미디어 코드입니다 (0~6; 콤마 구분 다중 선택).
	Multimedia string
	// LetterS는 음절 수 시작입니다.
	LetterS int
	// LetterE는 음절 수 끝입니다.
	LetterE int
	// UpdateS는 고친 날짜 시작일입니다 (yyyymmdd). 비어있으면 전송하지 않습니다.
	UpdateS string
	// UpdateE는 고친 날짜 종료일입니다 (yyyymmdd). 비어있으면 전송하지 않습니다.
	UpdateE string
}

// DefaultSearchRequest는 원격 API 기본값으로 채워진 검색 요청을 반환합니다.
func DefaultSearchRequest(query, apiKey string) SearchRequest {
	return SearchRequest{
		Query:      query,
		APIKey:     apiKey,
		ReqType:    ReqTypeJSON,
		Start:      1,
		Num:        10,
		Target:     1,
		Method:     "exact",
		Type1:      "all",
		Type2:      "all",
		Pos:        "0",
		Cat:        "0",
		Multimedia: "0",
		LetterS:    1,
		LetterE:    1,
	}
}

// Values는 검색 요청을 쿼리 파라미터로 변환합니다.
// 기본 파라미터는 항상 포함되고, 자세히 찾기 필터는 Advanced=true일 때만,
// update_s/update_e는 값이 있을 때만 포함됩니다.
func (r SearchRequest) Values() url.Values {
	advanced := "n"
	if r.Advanced {
		advanced = "y"
	}

	params := url.Values{}
	params.Set("key", r.APIKey)
	params.Set("q", r.Query)
	params.Set("req_type", r.ReqType)
	params.Set("start", strconv.Itoa(r.Start))
	params.Set("num", strconv.Itoa(r.Num))
	params.Set("advanced", advanced)
	params.Set("type_search", "search")

	if !r.Advanced {
		return params
	}

	params.Set("target", strconv.Itoa(r.Target))
	params.Set("method", r.Method)
	params.Set("type1", r.Type1)
	params.Set("type2", r.Type2)
	params.Set("pos", r.Pos)
	params.Set("cat", r.Cat)
	params.Set("multimedia", r.Multimedia)
	params.Set("letter_s", strconv.Itoa(r.LetterS))
	params.Set("letter_e", strconv.Itoa(r.LetterE))

	if r.UpdateS != "" {
		params.Set("update_s", r.UpdateS)
	}
	if r.UpdateE != "" {
		params.Set("update_e", r.UpdateE)
	}

	return params
}

// ViewRequest는 view.do 사전 내용 보기 요청 파라미터입니다.
type ViewRequest struct {
	// Query는 표제어 또는 대상 코드입니다 (필수).
	Query string
	// APIKey는 인증 키입니다.
	APIKey string
	// Method는 검색 방식입니다 (word_info 또는 target_code).
	Method string
	// ReqType은 응답 형식입니다 (json 또는 xml).
	ReqType string
}

// Values는 보기 요청을 쿼리 파라미터로 변환합니다.
func (r ViewRequest) Values() url.Values {
	params := url.Values{}
	params.Set("key", r.APIKey)
	params.Set("method", r.Method)
	params.Set("req_type", r.ReqType)
	params.Set("q", r.Query)
	params.Set("type_search", "view")
	return params
}

// ValidMethod는 보기 요청의 method 허용값 여부를 확인합니다.
func ValidMethod(method string) bool {
	return method == MethodWordInfo || method == MethodTargetCode
}

// ValidReqType은 req_type 허용값 여부를 확인합니다.
func ValidReqType(reqType string) bool {
	return reqType == ReqTypeJSON || reqType == ReqTypeXML
}
