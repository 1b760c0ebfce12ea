package schemaengine

import "strings"

// PaginationType enumerates the pagination shapes the Pagination Detector
// recognizes, per §3.
type PaginationType string

const (
	PaginationNone   PaginationType = "none"
	PaginationOffset PaginationType = "offset"
	PaginationPage   PaginationType = "page"
	PaginationCursor PaginationType = "cursor"
)

// PaginationConfig names the JSON paths the Pagination Detector located,
// per §3.
type PaginationConfig struct {
	DataPath      string `json:"dataPath,omitempty"`
	TotalPath     string `json:"totalPath,omitempty"`
	HasMorePath   string `json:"hasMorePath,omitempty"`
	NextCursorPath string `json:"nextCursorPath,omitempty"`
}

// PaginationAnalysis is the Pagination Detector's output, per §3.
type PaginationAnalysis struct {
	Detected   bool              `json:"detected"`
	Type       PaginationType    `json:"type"`
	Confidence float64           `json:"confidence"`
	Config     *PaginationConfig `json:"config,omitempty"`
}

// detectPagination implements §4.8: hint collection, classification, and
// confidence scoring from response body, request params, and headers.
func detectPagination(body any, requestParams map[string]any, headers map[string]string) PaginationAnalysis {
	obj, _ := body.(map[string]any)

	hasOffsetParam := requestParams != nil && hasAnyParamKey(requestParams, offsetParamNames)
	hasLimitParam := requestParams != nil && hasAnyParamKey(requestParams, limitParamNames)
	hasPageParam := requestParams != nil && hasAnyParamKey(requestParams, pageParamNames)
	hasCursorParam := requestParams != nil && hasAnyParamKey(requestParams, cursorParamNames)

	cursorPath := findFirstPath(obj, cursorPathNames)
	totalPath := findFirstPath(obj, totalPathNames)
	hasMorePath := findFirstPath(obj, hasMorePathNames)
	nextLinkPath := findFirstPath(obj, nextLinkPathNames)

	hasLinkHeader := false
	if headers != nil {
		if link, ok := headers["Link"]; ok {
			hasLinkHeader = strings.Contains(link, "rel=")
		}
	}

	ext := extract(body, 100)
	hasDataPath := len(ext.Samples) > 0 && (ext.DataPath != "" || ext.IsWrapped)

	indicators := 0
	for _, present := range []bool{
		hasOffsetParam, hasLimitParam, hasPageParam, hasCursorParam,
		cursorPath != "", totalPath != "", hasMorePath != "",
		nextLinkPath != "" || hasLinkHeader, hasDataPath,
	} {
		if present {
			indicators++
		}
	}
	const maxIndicators = 9

	if indicators == 0 && !hasDataPath {
		return PaginationAnalysis{Detected: false, Type: PaginationNone, Confidence: 0.9}
	}

	var ptype PaginationType
	switch {
	case cursorPath != "" || hasCursorParam:
		ptype = PaginationCursor
	case hasPageParam:
		ptype = PaginationPage
	case hasOffsetParam:
		ptype = PaginationOffset
	case hasDataPath && (totalPath != "" || hasMorePath != ""):
		ptype = PaginationOffset
	default:
		return PaginationAnalysis{Detected: false, Type: PaginationNone, Confidence: 0.9}
	}

	cfg := &PaginationConfig{
		DataPath:       ext.DataPath,
		TotalPath:      totalPath,
		HasMorePath:    hasMorePath,
		NextCursorPath: firstNonEmpty(cursorPath, nextLinkPath),
	}

	return PaginationAnalysis{
		Detected:   true,
		Type:       ptype,
		Confidence: paginationConfidence(indicators, maxIndicators),
		Config:     cfg,
	}
}

func hasAnyParamKey(params map[string]any, candidates []string) bool {
	for k := range params {
		if equalsAnyFold(k, candidates) {
			return true
		}
	}
	return false
}

// findFirstPath scans the wrapper object (including nested sub-objects down
// to depth 3, per §4.8's "recursion up to depth 3") for the first key
// matching any of candidates, returning its dot path.
func findFirstPath(obj map[string]any, candidates []string) string {
	if obj == nil {
		return ""
	}
	return findFirstPathAt(obj, candidates, "", 0)
}

func findFirstPathAt(obj map[string]any, candidates []string, prefix string, depth int) string {
	if depth > 3 {
		return ""
	}
	for _, name := range candidates {
		for key, v := range obj {
			if !equalsAnyFold(key, []string{name}) {
				continue
			}
			full := key
			if prefix != "" {
				full = prefix + "." + key
			}
			_ = v
			return full
		}
	}
	for key, v := range obj {
		child, ok := v.(map[string]any)
		if !ok {
			continue
		}
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if found := findFirstPathAt(child, candidates, full, depth+1); found != "" {
			return found
		}
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
