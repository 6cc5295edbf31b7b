package sheet

import (
	"fmt"
	"strings"

	"cueflac/internal/services"
)

type parserState int

const (
	stateHeader parserState = iota
	stateDisc
)

// Parse builds an Album from decoded sheet lines. The parser stays in header
// state until the first FILE declaration and in disc state thereafter; a
// sheet with no FILE declarations yields an album with zero discs, which the
// orchestration layer treats as malformed.
func Parse(lines []string) (*Album, error) {
	album := &Album{}
	state := stateHeader
	for _, raw := range lines {
		line := Classify(raw)
		if line.Kind == KindFile {
			if line.Value == "" {
				return nil, services.Wrap(services.ErrMalformedSheet, "sheet", "parse",
					fmt.Sprintf("file declaration %q references no file name", strings.TrimSpace(raw)), nil)
			}
			album.Discs = append(album.Discs, Disc{SourceFile: line.Value})
			state = stateDisc
		}
		switch state {
		case stateHeader:
			album.Header = append(album.Header, raw)
			album.applyHeaderTag(line)
		case stateDisc:
			disc := &album.Discs[len(album.Discs)-1]
			fixed := raw
			if line.Kind == KindIndex {
				fixed = FixIndexTime(raw)
			}
			disc.Lines = append(disc.Lines, fixed)
			if line.Kind == KindTitle {
				disc.Titles = append(disc.Titles, line.Value)
			}
		}
	}
	return album, nil
}

// applyHeaderTag records the first TITLE, PERFORMER, and REM DATE values seen
// in the header. Later matches of the same tag never overwrite the first.
func (a *Album) applyHeaderTag(line Line) {
	if line.Indented {
		return
	}
	switch line.Kind {
	case KindTitle:
		if a.Title == "" {
			a.Title = line.Value
		}
	case KindPerformer:
		if a.Artist == "" {
			a.Artist = line.Value
		}
	case KindDate:
		if a.Year == "" {
			a.Year = line.Value
		}
	}
}
