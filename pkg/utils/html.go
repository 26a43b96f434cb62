package utils

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// RemoveHTMLTags는 문자열에서 HTML 태그를 제거하고 엔티티를 풀어 줍니다
func RemoveHTMLTags(s string) string {
	return CleanText(tagPattern.ReplaceAllString(s, " "))
}

// CleanText는 HTML 엔티티를 풀고 연속 공백을 하나로 정리합니다
func CleanText(s string) string {
	s = html.UnescapeString(s)
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
