package grid

import "fmt"

func ExampleSpiralOrder() {
	fmt.Println(SpiralOrder(4, 3))
	// Output: [0 1 2 3 7 11 10 9 8 4 5 6]
}

func ExampleMaxLevel() {
	g := Geometry{Rows: 8, Columns: 10, TileSize: 50}
	fmt.Println(MaxLevel(g))
	// Output: 3
}
