// Package extract scans file text for SPDX tags and bare copyright
// notices. It honors REUSE-Ignore regions, strips symmetric comment-art
// framing, and reads only a bounded header window unless a snippet
// indicator asks for the whole file.
package extract

import (
	"bytes"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/reuselint/reuselint/internal/copyright"
	"github.com/reuselint/reuselint/internal/expression"
	"github.com/reuselint/reuselint/internal/record"
)

// HeaderBytes is how much of a file is inspected for tags unless the
// snippet indicator appears in that window.
const HeaderBytes = 4096

// SnippetIndicator marks files that must be read in full, so that
// snippet tags beyond the header window are not missed.
var SnippetIndicator = []byte("SPDX-SnippetBegin")

const (
	ignoreStart = "REUSE-IgnoreStart"
	ignoreEnd   = "REUSE-IgnoreEnd"
)

// endPattern swallows trailing comment closers and markup endings after
// a tag value.
const endPattern = `[\t ]*(?:\*/|-->|--\]\]|\*\)|#\}|%\}|"[\t ]*/*>|'[\t ]*/*>|\][\t ]*::)*[\t ]*$`

var (
	licensePattern     = regexp.MustCompile(`(?m)^(.*?)SPDX-License-Identifier:[ \t]+(.*?)` + endPattern)
	contributorPattern = regexp.MustCompile(`(?m)^(.*?)SPDX-FileContributor:[ \t]+(.*?)` + endPattern)

	// Ordered: the SPDX tag forms beat the bare word, which beats the
	// bare glyph. The first pattern to match a line wins.
	copyrightPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(SPDX-(?:File|Snippet)CopyrightText:[ \t]+(?:(?:\([Cc]\)|©|Copyright(?:[ \t](?:©|\([Cc]\)))?)[ \t]+)?.*?)` + endPattern),
		regexp.MustCompile(`(Copyright(?:[ \t](?:\([Cc]\)|©))?[ \t]+.*?)` + endPattern),
		regexp.MustCompile(`(©[ \t]*.*?)` + endPattern),
	}
)

// Extractor turns one file's text into a header evidence record.
type Extractor struct {
	validator *expression.Validator
}

// New builds an Extractor that validates license tags with v.
func New(v *expression.Validator) *Extractor {
	return &Extractor{validator: v}
}

// Extract scans text and returns the facts found plus any
// SPDX-License-Identifier values that failed to parse. A bad expression
// discards that line only; every other line still contributes. The
// returned evidence carries SourceFileHeader; callers re-tag sidecar
// reads.
func (e *Extractor) Extract(text string) (record.Evidence, []string) {
	ev := record.NewEvidence(record.SourceFileHeader, "")
	text = filterIgnoreBlocks(text)

	var unparsable []string
	for _, expr := range findTags(text, licensePattern) {
		res := e.validator.Validate(expr)
		if !res.Parsed {
			unparsable = append(unparsable, expr)
			continue
		}
		ev.Expressions.Add(res.Expression)
	}
	for _, contributor := range findTags(text, contributorPattern) {
		ev.Contributors.Add(contributor)
	}
	for _, line := range strings.Split(text, "\n") {
		for _, pattern := range copyrightPatterns {
			if m := pattern.FindStringSubmatch(line); m != nil {
				if notice := copyright.Normalize(strings.TrimSpace(m[1])); notice != "" {
					ev.Copyrights.Add(notice)
				}
				break
			}
		}
	}
	return ev, unparsable
}

// findTags yields the trimmed tag values matched by pattern. A value
// that ends with the mirror image of its line's comment prefix has that
// suffix cut, so symmetric ASCII-art frames do not leak into values.
func findTags(text string, pattern *regexp.Regexp) []string {
	var out []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		prefix := strings.TrimSpace(m[1])
		value := strings.TrimSpace(m[2])
		if prefix != "" && strings.HasSuffix(value, reverse(prefix)) {
			value = value[:len(value)-len(prefix)]
		}
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// filterIgnoreBlocks cuts every REUSE-IgnoreStart..REUSE-IgnoreEnd
// region out of text. An unterminated start marker ignores through the
// end of input.
func filterIgnoreBlocks(text string) string {
	for {
		start := strings.Index(text, ignoreStart)
		if start < 0 {
			return text
		}
		endRel := strings.Index(text[start:], ignoreEnd)
		if endRel < 0 {
			return text[:start]
		}
		text = text[:start] + text[start+endRel+len(ignoreEnd):]
	}
}

// Decode converts raw file bytes to scan text: invalid UTF-8 is
// replaced, CRLF becomes LF. When the read was truncated at the header
// limit the trailing partial line is dropped.
func Decode(raw []byte, truncated bool) string {
	text := strings.ToValidUTF8(string(raw), "�")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if truncated {
		if i := strings.LastIndexByte(text, '\n'); i >= 0 {
			text = text[:i+1]
		} else {
			text = ""
		}
	}
	return text
}

// ReadHeader reads the portion of path that extraction inspects: the
// first HeaderBytes, or the whole file when the snippet indicator
// appears in that window.
func ReadHeader(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	first := make([]byte, HeaderBytes)
	n, err := io.ReadFull(f, first)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	first = first[:n]

	if bytes.Contains(first, SnippetIndicator) {
		rest, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return Decode(append(first, rest...), false), nil
	}

	truncated := false
	if n == HeaderBytes {
		if fi, err := f.Stat(); err == nil && fi.Size() > HeaderBytes {
			truncated = true
		}
	}
	return Decode(first, truncated), nil
}
