// Package formatting provides tolerant parsing utilities for recovering
// structured values from model-generated text.
package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Parse failure sentinels. ErrNoObject means no brace-delimited region was
// found at all; ErrParseFailed means a candidate region existed but could
// not be unmarshaled.
var (
	ErrNoObject    = errors.New("no JSON object found in content")
	ErrParseFailed = errors.New("failed to parse content")
)

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse attempts to unmarshal content as JSON into T.
// If direct parsing fails, it extracts JSON from a markdown code fence and
// retries; if that also fails, it falls back to the outermost brace-delimited
// region. Returns ErrNoObject when no candidate region exists, or
// ErrParseFailed when a candidate exists but cannot be unmarshaled.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	matches := jsonBlockRegex.FindStringSubmatch(content)
	if len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
			return result, nil
		}
	}

	region, ok := BraceRegion(content)
	if !ok {
		return result, fmt.Errorf("%w: %s", ErrNoObject, content)
	}

	if err := json.Unmarshal([]byte(region), &result); err != nil {
		return result, fmt.Errorf("%w: %s", ErrParseFailed, region)
	}

	return result, nil
}

// BraceRegion returns the substring spanning the first '{' through the last
// '}' in content, the greedy outermost object region. Reports false when
// content holds no such region.
func BraceRegion(content string) (string, bool) {
	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}
