package board

import "fmt"

// CrosswordGameLayout is the name of the standard 15x15 board layout.
const CrosswordGameLayout = "CrosswordGame"

var (
	// CrosswordGameBoard is the standard 15x15 crossword game board. The
	// runes mark the bonus squares; see the BonusSquare constants.
	CrosswordGameBoard []string
)

func init() {
	CrosswordGameBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
}

// NamedLayout returns the layout strings for the given layout name. An
// empty name means the standard layout.
func NamedLayout(name string) ([]string, error) {
	switch name {
	case CrosswordGameLayout, "":
		return CrosswordGameBoard, nil
	}
	return nil, fmt.Errorf("unknown board layout %v", name)
}
