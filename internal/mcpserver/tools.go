package mcpserver

import (
	"context"

	"github.com/google/uuid"
	"github.com/insajin/stdict-mcp/internal/stdict"
	"github.com/mark3labs/mcp-go/mcp"
)

// 오류 결과는 항상 "Error: " 접두어가 붙은 일반 텍스트 결과로 반환합니다.
// 호출 에이전트는 언제나 응답 객체를 받으며, 프로토콜 오류를 받지 않습니다.
const errPrefix = "Error: "

// errResult는 오류 텍스트 결과를 생성합니다.
func errResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(errPrefix + msg)
}

// handleSearch는 search 도구 핸들러입니다.
// 인자를 search.do 쿼리 파라미터로 변환해 한 번의 GET을 실행하고
// 응답 본문을 가공 없이 반환합니다. 로컬 값 검증은 하지 않습니다.
// 범위를 벗어난 값의 거부는 원격 API에 맡깁니다.
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()

	query, err := request.RequireString("query")
	if err != nil {
		return errResult("required parameter 'query' is missing or invalid"), nil
	}

	req := stdict.SearchRequest{
		Query:      query,
		APIKey:     request.GetString("api_key", s.apiKey),
		ReqType:    request.GetString("req_type", stdict.ReqTypeJSON),
		Start:      request.GetInt("start", 1),
		Num:        request.GetInt("num", 10),
		Advanced:   request.GetBool("advanced", false),
		Target:     request.GetInt("target", 1),
		Method:     request.GetString("method", "exact"),
		Type1:      request.GetString("type1", "all"),
		Type2:      request.GetString("type2", "all"),
		Pos:        request.GetString("pos", "0"),
		Cat:        request.GetString("cat", "0"),
		Multimedia: request.GetString("multimedia", "0"),
		LetterS:    request.GetInt("letter_s", 1),
		LetterE:    request.GetInt("letter_e", 1),
		UpdateS:    request.GetString("update_s", ""),
		UpdateE:    request.GetString("update_e", ""),
	}

	s.logger.Info().
		Str("request_id", requestID).
		Str("query", query).
		Bool("advanced", req.Advanced).
		Msg("사전 검색 요청")

	body, err := s.client.Search(ctx, req)
	if err != nil {
		s.logger.Error().
			Str("request_id", requestID).
			Err(err).
			Msg("사전 검색 실패")
		return errResult(err.Error()), nil
	}

	return mcp.NewToolResultText(body), nil
}

// handleDetail은 detail 도구 핸들러입니다.
// method가 없으면 질의 형태로 추론하고, method/req_type을 로컬에서
// 검증한 뒤 view.do에 요청합니다. 검증 실패 시 네트워크 호출 없이
// 오류 텍스트를 반환합니다.
func (s *Server) handleDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID := uuid.NewString()

	query, err := request.RequireString("query")
	if err != nil {
		return errResult("required parameter 'query' is missing or invalid"), nil
	}

	method := request.GetString("method", "")
	if method == "" {
		method = stdict.InferMethod(query)
	}
	if !stdict.ValidMethod(method) {
		return errResult("Invalid method value. Must be 'word_info' or 'target_code'"), nil
	}

	reqType := request.GetString("req_type", stdict.ReqTypeJSON)
	if !stdict.ValidReqType(reqType) {
		return errResult("Invalid req_type value. Must be 'json' or 'xml'"), nil
	}

	req := stdict.ViewRequest{
		Query:   query,
		APIKey:  request.GetString("api_key", s.apiKey),
		Method:  method,
		ReqType: reqType,
	}

	s.logger.Info().
		Str("request_id", requestID).
		Str("query", query).
		Str("method", method).
		Msg("사전 내용 보기 요청")

	body, err := s.client.View(ctx, req)
	if err != nil {
		s.logger.Error().
			Str("request_id", requestID).
			Err(err).
			Msg("사전 내용 보기 실패")
		return errResult(err.Error()), nil
	}

	return mcp.NewToolResultText(body), nil
}
