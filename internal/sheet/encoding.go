package sheet

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"cueflac/internal/services"
)

// decodeOutcome distinguishes the three results of the default decode
// attempt: usable text, text that needs the configured fallback encoding,
// and text that cannot be decoded at all.
type decodeOutcome int

const (
	decodeOK decodeOutcome = iota
	decodeNeedsFallback
)

// ReadSheet loads and decodes a sheet file into lines. Text is decoded as
// UTF-8 first; when that fails and fallbackEncoding is set, the decode is
// retried once with it. A decode failure with no fallback configured, or a
// failed fallback attempt, is fatal for the sheet.
func ReadSheet(path, fallbackEncoding string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", path, err)
	}
	text, outcome := decodeDefault(data)
	if outcome == decodeNeedsFallback {
		fallback := strings.TrimSpace(fallbackEncoding)
		if fallback == "" {
			return nil, services.Wrap(services.ErrEncoding, "sheet", "decode",
				fmt.Sprintf("%s is not valid UTF-8; set sheets.fallback_encoding (or --fallback-encoding) to the sheet's original encoding", path), nil)
		}
		text, err = decodeWith(data, fallback)
		if err != nil {
			return nil, services.Wrap(services.ErrEncoding, "sheet", "decode",
				fmt.Sprintf("%s could not be decoded with fallback encoding %q", path, fallback), err)
		}
	}
	return splitLines(text), nil
}

func decodeDefault(data []byte) (string, decodeOutcome) {
	if utf8.Valid(data) {
		return string(data), decodeOK
	}
	return "", decodeNeedsFallback
}

func decodeWith(data []byte, name string) (string, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", name, err)
	}
	return string(decoded), nil
}

// lookupEncoding resolves an encoding name through the IANA registry first
// and the WHATWG label index second, which covers common spellings such as
// cp1251 and gbk.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

// splitLines splits decoded text on newlines, tolerating Windows line
// terminators. A trailing newline does not produce a final empty line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
