package scene_test

import (
	"fmt"

	"github.com/matzehuels/floatpos/pkg/scene"
)

func ExampleParse() {
	s, err := scene.Parse([]byte(`
placement = "top"

[viewport]
width = 800
height = 600

[reference]
x = 100
y = 10
width = 80
height = 20

[floating]
width = 120
height = 40

[[middleware]]
name = "offset"
main_axis = 8

[[middleware]]
name = "flip"
`), scene.FormatTOML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	built, err := s.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := built.Compute()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Placement, res.X, res.Y)
	// Output: bottom 80 38
}
