package model // package model defines the content entities stored on disk and their validation rules

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// FieldErrors maps an input field name to a human-readable problem with
// that field.  Handlers serialize it as-is so the editing form can show
// per-field messages.  It satisfies the error interface so validation
// failures can travel through ordinary error returns.
type FieldErrors map[string]string

// Error joins the field messages in a stable order.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return strings.Join(parts, "; ")
}

// validURL reports whether s parses as an absolute http(s) URL.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validTimestamp reports whether s is an RFC 3339 timestamp.  The offset
// (or Z) is part of the format, so a bare local time is rejected.
func validTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// Now returns the current UTC time formatted the way timestamps are
// persisted in the content files.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func trim(s string) string { return strings.TrimSpace(s) }
