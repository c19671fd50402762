package tile

// Placement records the content of one occupied grid cell: which palette
// tile sits there and how it is oriented. Rotation counts clockwise quarter
// turns (0-3); MirrorX and MirrorY are independent flips applied after the
// rotation, in that order (the [Mask.Transform] contract).
//
// A negative Tile index means "no tile".
type Placement struct {
	Tile     int  `json:"tile" bson:"tile"`
	Rotation int  `json:"rotation" bson:"rotation"`
	MirrorX  bool `json:"mirrorX,omitempty" bson:"mirrorX,omitempty"`
	MirrorY  bool `json:"mirrorY,omitempty" bson:"mirrorY,omitempty"`
}

// Empty is the placement of an unoccupied cell.
var Empty = Placement{Tile: -1}

// IsEmpty reports whether the placement holds no tile.
func (p Placement) IsEmpty() bool { return p.Tile < 0 }
