package model

// Document is a converted HTML document: metadata plus the root box.
type Document struct {
	Metadata Metadata
	Root     *Box
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Language string
	// Custom metadata
	Custom map[string]string
}

// NewDocument creates a document with an empty root box
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Root: &Box{Kind: BoxDocument},
	}
}

// ExtractText returns all text content of the document
func (d *Document) ExtractText() string {
	if d == nil || d.Root == nil {
		return ""
	}
	return d.Root.TextContent()
}

// Tables returns every table box in document order
func (d *Document) Tables() []*Box {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.Find(BoxTable)
}

// ListItems returns every list item box in document order
func (d *Document) ListItems() []*Box {
	if d == nil || d.Root == nil {
		return nil
	}
	return d.Root.Find(BoxListItem)
}

// Stats returns box counts for the document
func (d *Document) Stats() Stats {
	var s Stats
	if d == nil {
		return s
	}
	d.Root.Walk(func(b *Box) bool {
		s.BoxCount++
		switch b.Kind {
		case BoxListItem:
			s.ListItemCount++
		case BoxTable:
			s.TableCount++
		case BoxTableCell:
			s.CellCount++
		case BoxText:
			s.TextRunCount++
		}
		return true
	})
	return s
}

// Stats contains counts of the boxes in a document
type Stats struct {
	BoxCount      int
	TextRunCount  int
	ListItemCount int
	TableCount    int
	CellCount     int
}
