package sheet

// Album is the parsed form of one physical sheet file. Title, Artist, and
// Year are optional and keep the first value seen in the header; Header holds
// the raw header lines reproduced in every disc-scoped temporary sheet.
// Albums are built once by Parse and read-only afterwards.
type Album struct {
	Title  string
	Artist string
	Year   string
	Header []string
	Discs  []Disc
}

// Disc is one FILE section of a sheet: the referenced source audio file, the
// ordered track titles, and the raw lines belonging to the section (the FILE
// declaration plus everything up to the next one). The title count must match
// the number of tracks the splitter produces; tagging refuses to guess when
// the counts disagree.
type Disc struct {
	SourceFile string
	Titles     []string
	Lines      []string
}
