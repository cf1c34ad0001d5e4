package board

// TempIDs hands out temporary ids for locally created entities.
// Ids start at -2 and decrease; -1 is NoBoardID and server ids are positive.
type TempIDs struct {
	next int
}

// NewTempIDs returns an allocator starting at -2.
func NewTempIDs() *TempIDs {
	return &TempIDs{next: NoBoardID - 1}
}

// Next returns a fresh temporary id.
func (a *TempIDs) Next() int {
	id := a.next
	a.next--
	return id
}

// IsTemp reports whether id was issued by a TempIDs allocator.
func IsTemp(id int) bool {
	return id < NoBoardID
}
