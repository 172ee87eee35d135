package tables

import (
	"errors"
	"fmt"
)

// ErrOutsideTable is matched by errors.Is for cells that have no table ancestor.
var ErrOutsideTable = errors.New("tables: cell rendered outside a table")

// StructuralError reports a cell whose surrounding markup makes its layout
// meaningless, such as a td with no enclosing table.
type StructuralError struct {
	Tag string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("tables: <%s> rendered outside a table", e.Tag)
}

// Unwrap returns ErrOutsideTable.
func (e *StructuralError) Unwrap() error {
	return ErrOutsideTable
}
