package graphics

type Color struct {
	R, G, B uint8
}
