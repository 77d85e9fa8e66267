package game

import (
	"fmt"
	"strconv"
	"strings"
)

// The board is a fixed 3x3 grid:
//
//	C1 C2 C3
//	C4 C5 C6
//	C7 C8 C9
//
// C5 is the corrupted core: every player starts there and it never yields
// a hint card.
const CenterHouseID = "C5"

const boardSize = 3

// HouseCoords maps a house id to its grid position. ok is false for
// anything that is not C1..C9.
func HouseCoords(id string) (row, col int, ok bool) {
	if !strings.HasPrefix(id, "C") {
		return 0, 0, false
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil || n < 1 || n > boardSize*boardSize {
		return 0, 0, false
	}
	return (n - 1) / boardSize, (n - 1) % boardSize, true
}

// Adjacent reports whether two houses are orthogonally adjacent (row or
// column differs by exactly one step in one axis). Total over malformed
// ids: those are simply not adjacent to anything.
func Adjacent(a, b string) bool {
	ar, ac, ok := HouseCoords(a)
	if !ok {
		return false
	}
	br, bc, ok := HouseCoords(b)
	if !ok {
		return false
	}
	dr := ar - br
	if dr < 0 {
		dr = -dr
	}
	dc := ac - bc
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// AllHouseIDs returns C1..C9 in board order.
func AllHouseIDs() []string {
	ids := make([]string, 0, boardSize*boardSize)
	for n := 1; n <= boardSize*boardSize; n++ {
		ids = append(ids, fmt.Sprintf("C%d", n))
	}
	return ids
}

// HouseOrder returns the house's board position number (C1=1 .. C9=9),
// or 0 for malformed ids.
func HouseOrder(id string) int {
	row, col, ok := HouseCoords(id)
	if !ok {
		return 0
	}
	return row*boardSize + col + 1
}

// BuildBoard assembles the initial board from the configured house
// definitions. All houses start hidden.
func BuildBoard(defs []HouseDef) Board {
	var b Board
	for _, d := range defs {
		row, col, ok := HouseCoords(d.ID)
		if !ok {
			continue
		}
		b[row][col] = &House{
			ID:       d.ID,
			Name:     d.Name,
			Revealed: false,
			BaseCost: d.BaseCost,
		}
	}
	return b
}

// HiddenHouses returns the non-center houses whose reveal flag is still
// down, in board order.
func (s *Session) HiddenHouses() []*House {
	var out []*House
	for _, id := range AllHouseIDs() {
		if id == CenterHouseID {
			continue
		}
		if h := s.House(id); h != nil && !h.Revealed {
			out = append(out, h)
		}
	}
	return out
}
