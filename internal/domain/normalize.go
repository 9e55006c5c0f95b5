package domain

import (
	"regexp"
	"strings"
)

// OwnerProjectPattern constrains owner project slugs: lowercase
// alphanumerics, hyphens and underscores, starting with an alphanumeric.
var OwnerProjectPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

var slugScrubPattern = regexp.MustCompile(`[^a-z0-9_-]+`)

// NormalizeOwnerProject maps free-text input to a slug matching
// OwnerProjectPattern. Idempotent: normalizing twice equals normalizing
// once. Returns "" when the input has no usable characters.
func NormalizeOwnerProject(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugScrubPattern.ReplaceAllString(s, "")
	s = strings.TrimLeft(s, "-_")
	return s
}

// EnsureAbsoluteURL prefixes https:// when the value has no scheme.
// Idempotent for any non-empty string.
func EnsureAbsoluteURL(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://" + v
}

// NormalizeTwitter expands handles to profile URLs: "@project" and
// "project" become https://x.com/project. Absolute URLs pass through.
func NormalizeTwitter(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://x.com/" + strings.TrimPrefix(v, "@")
}

// NormalizeTelegram expands handles to t.me URLs, same contract as
// NormalizeTwitter.
func NormalizeTelegram(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://t.me/" + strings.TrimPrefix(v, "@")
}

// NormalizeGitHub accepts either an org/repo shorthand or a full URL.
func NormalizeGitHub(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://github.com/" + strings.TrimPrefix(v, "@")
}

// CanonicalURL strips scheme, a leading www., and any trailing slash so two
// spellings of the same site compare equal. Used by duplicate detection
// only; stored values keep their original form.
func CanonicalURL(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.TrimPrefix(v, "https://")
	v = strings.TrimPrefix(v, "http://")
	v = strings.TrimPrefix(v, "www.")
	return strings.TrimRight(v, "/")
}
