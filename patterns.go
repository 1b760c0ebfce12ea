package schemaengine

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// Semantic string patterns. Kept anchored per §9 ("Keep them anchored to
// avoid accidental substring matches"), the same discipline the teacher's
// formats.go applies to its own format validators.
var (
	uuidRegex       = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	objectIDRegex   = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	isoDateRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateTimeRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt]\d{2}:\d{2}:\d{2}(\.\d+)?([Zz]|[+-]\d{2}:?\d{2})?$`)
	timeOfDayRegex  = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
	dateUSRegex     = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	dateEURegex     = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`)
	dateDashRegex   = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`)
	dateDotRegex    = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
	hexColorRegex   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	slugRegex       = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	numericStrRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

	// pkNameRegex matches field names that look like a primary key by name
	// alone, per §4.7.
	pkNameRegex = regexp.MustCompile(`(?i)^(id|_id|ID|pk|primary_key|uuid|guid|key)$`)

	// fkSuffixRegex and fkPrefixRegex match candidate foreign-key field
	// names, per §4.9 step 1.
	fkSuffixRegex = regexp.MustCompile(`^.+(_id|Id|ID|_ID)$`)
	fkPrefixRegex = regexp.MustCompile(`(?i)^(id_|fk_|ref_).+$`)
)

// canonical name sets the Pagination Detector fuses hints from (§4.8) and
// the Structure Analyzer scans for meta paths (§4.6).
var (
	offsetParamNames  = []string{"offset", "skip", "start", "from"}
	limitParamNames   = []string{"limit", "per_page", "pagesize", "size", "count", "take"}
	pageParamNames    = []string{"page", "pagenumber", "p"}
	cursorParamNames  = []string{"cursor", "after", "before", "next", "continuation", "nexttoken"}
	cursorPathNames   = []string{"cursor", "nextcursor", "next_cursor", "nexttoken", "next_token", "continuation"}
	totalPathNames    = []string{"total", "totalcount", "total_count", "totalitems", "total_items"}
	hasMorePathNames  = []string{"hasmore", "has_more", "hasnext", "has_next"}
	nextLinkPathNames = []string{"next", "nextpage", "next_page"}

	// metaKeywords drive Structure Analyzer's metaPaths detection: a key
	// "matches" a keyword if either contains the other as a substring.
	metaKeywords = []string{
		"total", "count", "page", "limit", "offset", "cursor", "next", "prev",
		"hasmore", "has_more", "meta", "pagination", "links",
	}
)

// containsAnyFold reports whether s contains any of candidates, case-insensitively.
func containsAnyFold(s string, candidates []string) bool {
	lower := strings.ToLower(s)
	for _, c := range candidates {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// equalsAnyFold reports whether s equals any of candidates, case-insensitively.
func equalsAnyFold(s string, candidates []string) bool {
	lower := strings.ToLower(s)
	for _, c := range candidates {
		if lower == c {
			return true
		}
	}
	return false
}

// isEmail mirrors the teacher's IsEmail format validator: a length check, an
// RFC 5322-ish local/domain split, and a stdlib mail.ParseAddress backstop.
func isEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	if len(s[:at]) > 64 {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// isURL reports whether s parses as an absolute, schemed URL.
func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}

// looksLikeJSON reports whether s is a `{...}` or `[...]` string that
// actually parses as JSON. Parse failures are swallowed on purpose — a
// string that merely starts with a brace but isn't JSON is just a string
// (§9 "Uniqueness and cycles" documents this class of narrow, intentional
// silent fallback).
func looksLikeJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) < 2 {
		return false
	}
	opensObj := trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}'
	opensArr := trimmed[0] == '[' && trimmed[len(trimmed)-1] == ']'
	if !opensObj && !opensArr {
		return false
	}
	var v any
	return jsonUnmarshal([]byte(trimmed), &v) == nil
}
