package zone_test

import (
	"fmt"

	"github.com/katalvlaran/sokolve/zone"
)

func ExampleZone_setAlgebra() {
	a := zone.New(6)
	a.Set(0)
	a.Set(2)

	b := zone.New(6)
	b.Set(2)
	b.Set(4)

	fmt.Println(zone.And(a, b).Indices())
	fmt.Println(zone.Or(a, b).Indices())
	// Output:
	// [2]
	// [0 2 4]
}
