package domain

import "time"

// BlockKind identifies how a document block is laid out.
type BlockKind string

// Available block kinds.
const (
	// BlockParagraph is free-flowing text.
	BlockParagraph BlockKind = "paragraph"

	// BlockLabeled is a "Label: Text" line.
	BlockLabeled BlockKind = "labeled"

	// BlockStat is a labelled count in a summary.
	BlockStat BlockKind = "stat"

	// BlockBullets is an unordered list of Items.
	BlockBullets BlockKind = "bullets"

	// BlockNumbered is an ordered list of Items.
	BlockNumbered BlockKind = "numbered"

	// BlockNotes is a highlighted notes box.
	BlockNotes BlockKind = "notes"

	// BlockLinks is a list of resource links.
	BlockLinks BlockKind = "links"

	// BlockFooter is small trailing text.
	BlockFooter BlockKind = "footer"
)

// Block is a single layout element inside a section.
type Block struct {
	Kind  BlockKind
	Label string
	Text  string
	Items []string
	Links []ResourceLink
}

// Section is a headed group of blocks.
// Renderers may split a section across pages.
type Section struct {
	Heading string
	Blocks  []Block
}

// Document is a renderer-agnostic printable document.
type Document struct {
	Title    string
	Subtitle string

	// FileName is the default file name without extension.
	FileName string

	// GeneratedAt is derived from the input, never from the wall clock,
	// so identical input yields identical output.
	GeneratedAt time.Time

	Sections []Section
}

// Section returns the first section with the given heading.
func (d *Document) Section(heading string) (*Section, bool) {
	for i := range d.Sections {
		if d.Sections[i].Heading == heading {
			return &d.Sections[i], true
		}
	}
	return nil, false
}
