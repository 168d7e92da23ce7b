package level

// Kind is the tile type of a level cell.
type Kind uint8

const (
	Air Kind = iota
	Wall
	Player
	Coin
	Exit
	Spikes
	Door
	Lever
	JumpBoostPotion
	Skeleton
	Sword
	Graal
	Unknown Kind = 255
)

// Cell is one grid tile, encoded as the character used in level data.
type Cell byte

// Character codes of cells in level data.
const (
	AirCell             Cell = '-'
	WallCell            Cell = '#'
	PlayerCell          Cell = '@'
	CoinCell            Cell = '*'
	ExitCell            Cell = 'E'
	SpikesCell          Cell = '^'
	DoorCell            Cell = 'D'
	JumpBoostPotionCell Cell = 'J'
	SkeletonCell        Cell = 'S'
	SwordCell           Cell = '/'
	GraalCell           Cell = 'G'

	// Levers are the digits '1'..'9'; the digit selects the lever index.
	FirstLeverCell Cell = '1'
	LastLeverCell  Cell = '9'
)

var cellKinds = map[Cell]Kind{
	AirCell:             Air,
	WallCell:            Wall,
	PlayerCell:          Player,
	CoinCell:            Coin,
	ExitCell:            Exit,
	SpikesCell:          Spikes,
	DoorCell:            Door,
	JumpBoostPotionCell: JumpBoostPotion,
	SkeletonCell:        Skeleton,
	SwordCell:           Sword,
	GraalCell:           Graal,
}

var kindNames = [...]string{
	Air:             "air",
	Wall:            "wall",
	Player:          "player",
	Coin:            "coin",
	Exit:            "exit",
	Spikes:          "spikes",
	Door:            "door",
	Lever:           "lever",
	JumpBoostPotion: "jump_boost_potion",
	Skeleton:        "skeleton",
	Sword:           "sword",
	Graal:           "graal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Kind returns the tile type of the cell, or Unknown.
func (c Cell) Kind() Kind {
	if c >= FirstLeverCell && c <= LastLeverCell {
		return Lever
	}
	if k, ok := cellKinds[c]; ok {
		return k
	}
	return Unknown
}

// LeverIndex returns the zero-based lever index of a lever cell, or -1.
func (c Cell) LeverIndex() int {
	if c.Kind() != Lever {
		return -1
	}
	return int(c - FirstLeverCell)
}

// LeverCell returns the cell for the lever with the given zero-based index.
func LeverCell(index int) Cell {
	return FirstLeverCell + Cell(index)
}
