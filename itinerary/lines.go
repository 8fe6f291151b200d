package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

// LineKind tags the recognized shapes of generated itinerary text.
type LineKind int

const (
	// LineOther is any line matching none of the recognized shapes. The
	// parser drops these silently to tolerate prose the model emits
	// around the expected grammar.
	LineOther LineKind = iota
	LineDayHeader
	LineActivityHeader
	LineCategoryTag
	LineLocationTag
	LineBullet
)

// Line is one classified line of generated text. Which fields are set
// depends on Kind: day headers carry DayNumber and Notes, activity headers
// carry Time and Text, tags and bullets carry Text only.
type Line struct {
	Kind      LineKind
	DayNumber int
	Notes     string
	Time      string
	Text      string
}

var (
	dayHeaderPattern = regexp.MustCompile(`^Day\s+(\d+)\s*(?:\((.*)\))?\s*$`)
	activityPattern  = regexp.MustCompile(`^(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)\s*[—–-]\s*(.+)$`)
	categoryPattern  = regexp.MustCompile(`^Category:\s*(.*)$`)
	locationPattern  = regexp.MustCompile(`^Location:\s*(📍.*)$`)
	bulletPattern    = regexp.MustCompile(`^[•\-]\s*(.*)$`)
)

// ClassifyLine matches a trimmed, non-blank line against the recognized
// shapes in priority order: day header, activity header, category tag,
// location tag, bullet. A location tag is only recognized when its value
// starts with the pin glyph.
func ClassifyLine(line string) Line {
	if m := dayHeaderPattern.FindStringSubmatch(line); m != nil {
		number, _ := strconv.Atoi(m[1])
		return Line{Kind: LineDayHeader, DayNumber: number, Notes: strings.TrimSpace(m[2])}
	}
	if m := activityPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineActivityHeader, Time: strings.TrimSpace(m[1]), Text: strings.TrimSpace(m[2])}
	}
	if m := categoryPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineCategoryTag, Text: strings.TrimSpace(m[1])}
	}
	if m := locationPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineLocationTag, Text: strings.TrimSpace(m[1])}
	}
	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineBullet, Text: strings.TrimSpace(m[1])}
	}
	return Line{Kind: LineOther}
}
