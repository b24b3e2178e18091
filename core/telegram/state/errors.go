package state

import "fmt"

// StructureError reports that a pre-existing backing table does not match the
// expected column layout. It is fatal: the storage refuses to operate rather
// than migrate or overwrite a table it does not own.
type StructureError struct {
	Table  string
	Column string
	Want   string
	Got    string
}

func (e *StructureError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("table %s exists with different structure: missing column %s %s", e.Table, e.Column, e.Want)
	}
	return fmt.Sprintf("table %s exists with different structure: column %s is %s, want %s", e.Table, e.Column, e.Got, e.Want)
}
