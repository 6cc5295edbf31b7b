package sheet

import "strings"

// Kind identifies the construct a raw sheet line represents.
type Kind int

const (
	// KindOther covers unrecognized lines, which pass through unchanged.
	KindOther Kind = iota
	// KindTitle is a TITLE line: the album title in the header, a track
	// title inside a disc section.
	KindTitle
	// KindPerformer is an unindented PERFORMER line.
	KindPerformer
	// KindDate is a REM DATE line.
	KindDate
	// KindFile is a FILE declaration, which opens a new disc section.
	KindFile
	// KindIndex is a time-coded INDEX line.
	KindIndex
)

// Line is the classified form of one raw sheet line. Value carries the
// extracted first token for tag-bearing kinds and the referenced file name
// for KindFile; it is empty when no token could be extracted.
type Line struct {
	Kind     Kind
	Raw      string
	Value    string
	Indented bool
}

// Classify parses a raw line into exactly one Line variant. Indented
// PERFORMER and REM lines deliberately classify as KindOther so per-track
// tags inside a disc section never overwrite album-level header values.
func Classify(raw string) Line {
	trimmed := strings.TrimLeft(raw, " \t")
	indented := len(trimmed) != len(raw)
	switch {
	case !indented && strings.HasPrefix(raw, "FILE "):
		fields := splitFields(raw)
		value := ""
		if len(fields) > 1 {
			value = fields[1]
		}
		return Line{Kind: KindFile, Raw: raw, Value: value}
	case strings.HasPrefix(trimmed, "INDEX "):
		return Line{Kind: KindIndex, Raw: raw, Indented: indented}
	case strings.HasPrefix(trimmed, "TITLE "):
		return Line{Kind: KindTitle, Raw: raw, Value: firstField(trimmed[len("TITLE "):]), Indented: indented}
	case !indented && strings.HasPrefix(raw, "PERFORMER "):
		return Line{Kind: KindPerformer, Raw: raw, Value: firstField(raw[len("PERFORMER "):])}
	case !indented && strings.HasPrefix(raw, "REM DATE "):
		return Line{Kind: KindDate, Raw: raw, Value: firstField(raw[len("REM DATE "):])}
	default:
		return Line{Kind: KindOther, Raw: raw, Indented: indented}
	}
}

// FixIndexTime pads a one-digit frame field with a trailing zero. The
// splitter rejects short frame fields as invalid for non-CD-quality sources;
// lines already carrying two frame digits are returned unchanged.
func FixIndexTime(raw string) string {
	i := strings.LastIndexByte(raw, ':')
	if i < 0 || i == len(raw)-1 {
		return raw
	}
	frames := raw[i+1:]
	if len(frames) == 1 && frames[0] >= '0' && frames[0] <= '9' {
		return raw + "0"
	}
	return raw
}

// splitFields tokenizes with shell-style quoting so file names and titles
// containing spaces survive as single fields. Both quote characters are
// honoured; quotes themselves are stripped.
func splitFields(s string) []string {
	var fields []string
	var current strings.Builder
	var quote byte
	inField := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteByte(ch)
			}
		case ch == '"' || ch == '\'':
			quote = ch
			inField = true
		case ch == ' ' || ch == '\t':
			if inField {
				fields = append(fields, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteByte(ch)
			inField = true
		}
	}
	if inField {
		fields = append(fields, current.String())
	}
	return fields
}

func firstField(s string) string {
	fields := splitFields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
