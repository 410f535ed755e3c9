package plagiarism

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAggregate(t *testing.T) {
	// md5("The quick brown fox jumps over the lazy dog") = 9e10...,
	// base = 0x9e/255, score = 0.75 + base*0.20
	report := Score("The quick brown fox jumps over the lazy dog")
	assert.InDelta(t, 0.873921568627451, report.OriginalityScore, 1e-12)
	assert.Equal(t, 9, report.TotalWords)
	assert.Equal(t, 1, report.CheckedSegments)
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"Hello world.",
		"one\n\ntwo\n\nthree",
		strings.Repeat("lorem ipsum ", 500),
	}
	for _, text := range inputs {
		report := Score(text)
		assert.GreaterOrEqual(t, report.OriginalityScore, 0.75)
		assert.LessOrEqual(t, report.OriginalityScore, 0.99)
	}
}

func TestScoreSegments(t *testing.T) {
	// md5("foo") starts with 'a' (10 > 8, original),
	// md5("bar") starts with '3' (flagged)
	report := Score("foo\n\nbar")
	assert.InDelta(t, 0.8166666666666667, report.OriginalityScore, 1e-12)
	assert.Equal(t, 2, report.CheckedSegments)
	assert.Equal(t, 1, report.FlaggedSegments)
	assert.Equal(t, 2, report.TotalWords)

	assert.True(t, report.Segments[0].IsOriginal)
	assert.Equal(t, 0.0, report.Segments[0].Similarity)
	assert.Equal(t, "foo...", report.Segments[0].Text)

	assert.False(t, report.Segments[1].IsOriginal)
	assert.GreaterOrEqual(t, report.Segments[1].Similarity, 0.0)
	assert.Less(t, report.Segments[1].Similarity, 0.3)
	assert.Equal(t, 1, report.Segments[1].Index)
}

func TestScoreFlaggedSegment(t *testing.T) {
	// md5("Hello world.") starts with '7', not strictly greater than 8
	report := Score("Hello world.")
	assert.InDelta(t, 0.8425490196078431, report.OriginalityScore, 1e-12)
	assert.False(t, report.Segments[0].IsOriginal)
}

func TestScoreEmptyText(t *testing.T) {
	report := Score("")
	assert.Equal(t, 0, report.TotalWords)
	assert.Equal(t, 1, report.CheckedSegments)
	assert.InDelta(t, 0.9162745098039216, report.OriginalityScore, 1e-12)
	assert.Equal(t, "...", report.Segments[0].Text)
}

func TestScoreSegmentCap(t *testing.T) {
	parts := make([]string, 12)
	for i := range parts {
		parts[i] = strings.Repeat("x", i+1)
	}
	report := Score(strings.Join(parts, "\n\n"))
	assert.Equal(t, 12, report.CheckedSegments)
	assert.Len(t, report.Segments, 10)
}

func TestScorePreviewTruncation(t *testing.T) {
	long := strings.Repeat("w", 250)
	report := Score(long)
	assert.Len(t, report.Segments[0].Text, 103)
	assert.True(t, strings.HasSuffix(report.Segments[0].Text, "..."))
}

func TestScoreDeterministicFlags(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph there.\n\nThird one."
	first := Score(text)
	second := Score(text)

	assert.Equal(t, first.OriginalityScore, second.OriginalityScore)
	assert.Equal(t, first.FlaggedSegments, second.FlaggedSegments)
	for i := range first.Segments {
		assert.Equal(t, first.Segments[i].IsOriginal, second.Segments[i].IsOriginal)
	}
}
