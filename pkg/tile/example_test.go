package tile

import "fmt"

func ExampleParseMask() {
	m, ok := ParseMask("roads/corner_10000010.png")
	fmt.Println(m.Key(), ok)

	_, ok = ParseMask("decor/pebbles.png")
	fmt.Println(ok)
	// Output:
	// 10000010 true
	// false
}

func ExampleMask_Transform() {
	m, _ := MaskFromKey("10000000")

	fmt.Println(m.Rotate(1).Key())
	fmt.Println(m.MirrorY().Key())
	fmt.Println(m.Transform(1, false, true).Key())
	// Output:
	// 00100000
	// 00001000
	// 00100000
}
