// Package plagiarism implements the simulated originality scorer. It is
// a corpus-free heuristic: the aggregate score and per-segment flags are
// derived from md5 digests of the text, so they are reproducible for
// identical input, while flagged segments get a fresh random similarity
// value on every run.
package plagiarism

import (
	"crypto/md5"
	"encoding/hex"
	"math/rand"
	"strings"
)

const (
	segmentPreviewLen = 100
	maxReportSegments = 10
)

type Segment struct {
	Index      int     `json:"index"`
	Text       string  `json:"text"`
	IsOriginal bool    `json:"is_original"`
	Similarity float64 `json:"similarity"`
}

type Report struct {
	OriginalityScore float64   `json:"originality_score"`
	TotalWords       int       `json:"total_words"`
	CheckedSegments  int       `json:"checked_segments"`
	FlaggedSegments  int       `json:"flagged_segments"`
	Segments         []Segment `json:"segments"`
}

func hexDigest(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// hexValue interprets the first n hex characters of a digest as an
// integer. Digests are lowercase hex so the parse cannot fail.
func hexValue(digest string, n int) int {
	v := 0
	for _, c := range digest[:n] {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		default:
			v |= int(c-'a') + 10
		}
	}
	return v
}

func preview(segment string) string {
	r := []rune(segment)
	if len(r) > segmentPreviewLen {
		r = r[:segmentPreviewLen]
	}
	return string(r) + "..."
}

// Score produces an originality report for the given text. The empty
// string is not an error: it yields zero words and one (empty) segment.
func Score(text string) Report {
	base := float64(hexValue(hexDigest(text), 2)) / 255
	score := 0.75 + base*0.20
	if score > 0.99 {
		score = 0.99
	}

	parts := strings.Split(text, "\n\n")
	segments := make([]Segment, 0, len(parts))
	flagged := 0
	for i, part := range parts {
		original := hexValue(hexDigest(part), 1) > 8
		similarity := 0.0
		if !original {
			similarity = rand.Float64() * 0.3
			flagged++
		}
		segments = append(segments, Segment{
			Index:      i,
			Text:       preview(part),
			IsOriginal: original,
			Similarity: similarity,
		})
	}

	if len(segments) > maxReportSegments {
		segments = segments[:maxReportSegments]
	}

	return Report{
		OriginalityScore: score,
		TotalWords:       len(strings.Fields(text)),
		CheckedSegments:  len(parts),
		FlaggedSegments:  flagged,
		Segments:         segments,
	}
}
