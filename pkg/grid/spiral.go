package grid

// SpiralOrder returns all cell indices of a columns x rows lattice in
// clockwise-inward spiral order: the top row left to right, the right
// column down, the bottom row right to left, the left column up, then the
// next ring inward. Returns nil when either dimension is not positive.
func SpiralOrder(columns, rows int) []int {
	if columns <= 0 || rows <= 0 {
		return nil
	}
	return SpiralOrderInRect(0, 0, rows-1, columns-1, columns)
}

// SpiralOrderInRect returns the clockwise-inward spiral order of the cells
// in the inclusive rectangle [minRow..maxRow] x [minCol..maxCol], expressed
// as row-major indices on a lattice columns wide. Returns nil for an empty
// rectangle.
func SpiralOrderInRect(minRow, minCol, maxRow, maxCol, columns int) []int {
	if columns <= 0 || minRow > maxRow || minCol > maxCol {
		return nil
	}

	order := make([]int, 0, (maxRow-minRow+1)*(maxCol-minCol+1))
	top, bottom := minRow, maxRow
	left, right := minCol, maxCol

	for top <= bottom && left <= right {
		for col := left; col <= right; col++ {
			order = append(order, top*columns+col)
		}
		top++

		for row := top; row <= bottom; row++ {
			order = append(order, row*columns+right)
		}
		right--

		if top <= bottom {
			for col := right; col >= left; col-- {
				order = append(order, bottom*columns+col)
			}
			bottom--
		}

		if left <= right {
			for row := bottom; row >= top; row-- {
				order = append(order, row*columns+left)
			}
			left++
		}
	}

	return order
}
