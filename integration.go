// integration.go joins the htmldoc front end with the layout converter for
// callers that manage readers themselves.
package boxtree

import (
	"context"

	"github.com/tsawler/boxtree/htmldoc"
	"github.com/tsawler/boxtree/layout"
	"github.com/tsawler/boxtree/model"
)

// ConvertFile converts an HTML file with default options.
//
// Example:
//
//	doc, err := boxtree.ConvertFile("invoice.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, table := range doc.Tables() {
//	    fmt.Printf("table with %d columns\n", table.Columns)
//	}
func ConvertFile(path string) (*model.Document, error) {
	r, err := htmldoc.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ConvertReader(context.Background(), r)
}

// ConvertReader converts an opened htmldoc.Reader with the given converter
// options. The reader can be converted again afterwards.
func ConvertReader(ctx context.Context, r *htmldoc.Reader, opts ...layout.Option) (*model.Document, error) {
	root, err := layout.NewConverter(opts...).Convert(ctx, r.Root())
	if err != nil {
		return nil, err
	}
	return &model.Document{Metadata: r.Metadata(), Root: root}, nil
}
