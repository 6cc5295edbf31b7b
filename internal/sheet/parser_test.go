package sheet_test

import (
	"errors"
	"reflect"
	"testing"

	"cueflac/internal/services"
	"cueflac/internal/sheet"
)

func TestParseTwoDiscsShareHeader(t *testing.T) {
	lines := []string{
		`REM DATE 1997`,
		`PERFORMER "Some Artist"`,
		`TITLE "Some Album"`,
		`FILE "album (LP1).flac" WAVE`,
		`  TRACK 01 AUDIO`,
		`    TITLE "One"`,
		`    INDEX 01 00:00:00`,
		`FILE "album (LP2).flac" WAVE`,
		`  TRACK 01 AUDIO`,
		`    TITLE "Two"`,
		`    INDEX 01 00:00:00`,
	}
	album, err := sheet.Parse(lines)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(album.Discs) != 2 {
		t.Fatalf("expected 2 discs, got %d", len(album.Discs))
	}
	wantHeader := lines[:3]
	if !reflect.DeepEqual(album.Header, wantHeader) {
		t.Fatalf("unexpected header: got %v want %v", album.Header, wantHeader)
	}
	if album.Discs[0].SourceFile != "album (LP1).flac" {
		t.Fatalf("unexpected disc 1 source: %q", album.Discs[0].SourceFile)
	}
	if album.Discs[1].SourceFile != "album (LP2).flac" {
		t.Fatalf("unexpected disc 2 source: %q", album.Discs[1].SourceFile)
	}
	if got := album.Discs[0].Titles; len(got) != 1 || got[0] != "One" {
		t.Fatalf("unexpected disc 1 titles: %v", got)
	}
	if got := album.Discs[1].Titles; len(got) != 1 || got[0] != "Two" {
		t.Fatalf("unexpected disc 2 titles: %v", got)
	}
	if album.Discs[0].Lines[0] != `FILE "album (LP1).flac" WAVE` {
		t.Fatalf("disc lines must start with the FILE declaration, got %q", album.Discs[0].Lines[0])
	}
}

func TestParseHeaderTags(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		title  string
		artist string
		year   string
	}{
		{
			name:  "quoted title keeps spaces",
			lines: []string{`TITLE "My Album"`},
			title: "My Album",
		},
		{
			name:  "unquoted title takes first token",
			lines: []string{`TITLE My Album`},
			title: "My",
		},
		{
			name:   "first match wins",
			lines:  []string{`PERFORMER "A"`, `PERFORMER "B"`, `REM DATE 2001`, `REM DATE 2002`},
			artist: "A",
			year:   "2001",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			album, err := sheet.Parse(tc.lines)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if album.Title != tc.title {
				t.Errorf("title: got %q want %q", album.Title, tc.title)
			}
			if album.Artist != tc.artist {
				t.Errorf("artist: got %q want %q", album.Artist, tc.artist)
			}
			if album.Year != tc.year {
				t.Errorf("year: got %q want %q", album.Year, tc.year)
			}
		})
	}
}

func TestParseCorrectsShortIndexLines(t *testing.T) {
	lines := []string{
		`FILE "a.wav" WAVE`,
		`  TRACK 01 AUDIO`,
		`    INDEX 01 00:00:0`,
		`    INDEX 02 01:23:45`,
	}
	album, err := sheet.Parse(lines)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	got := album.Discs[0].Lines
	if got[2] != `    INDEX 01 00:00:00` {
		t.Fatalf("expected padded index line, got %q", got[2])
	}
	if got[3] != `    INDEX 02 01:23:45` {
		t.Fatalf("two-digit frame field must pass through unchanged, got %q", got[3])
	}
}

func TestParseTrackPerformerDoesNotOverrideArtist(t *testing.T) {
	lines := []string{
		`PERFORMER "Album Artist"`,
		`FILE "a.wav" WAVE`,
		`  TRACK 01 AUDIO`,
		`    TITLE "One"`,
		`    PERFORMER "Guest"`,
	}
	album, err := sheet.Parse(lines)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if album.Artist != "Album Artist" {
		t.Fatalf("artist: got %q want %q", album.Artist, "Album Artist")
	}
}

func TestParseFileDeclarationWithoutName(t *testing.T) {
	_, err := sheet.Parse([]string{`FILE    `, `  TRACK 01 AUDIO`})
	if !errors.Is(err, services.ErrMalformedSheet) {
		t.Fatalf("expected ErrMalformedSheet, got %v", err)
	}
}

func TestParseSheetWithoutFileDeclarations(t *testing.T) {
	album, err := sheet.Parse([]string{`TITLE "Header Only"`, `REM COMMENT nothing`})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(album.Discs) != 0 {
		t.Fatalf("expected zero discs, got %d", len(album.Discs))
	}
}
