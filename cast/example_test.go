package cast_test

import (
	"fmt"

	"interface-caster/cast"
	"interface-caster/contract"
	"interface-caster/convert"
)

var Shape = contract.MustDefine("Shape",
	contract.Abstract("Area"),
	contract.Optional("Name"),
)

type square struct {
	cast.Cache
	side float64
}

func (s *square) Area() float64 { return s.side * s.side }

type blob struct{}

func (blob) String() string { return "blob" }

func ExampleTo() {
	sq := &square{side: 3}

	shape, _ := cast.To(sq, Shape)
	area, _ := shape.(contract.Value).Call("Area")
	name, _ := shape.(contract.Value).Call("Name")
	fmt.Println(area, name)

	again, _ := cast.To(sq, Shape)
	fmt.Println(again == shape)

	_, err := cast.To(blob{}, Shape)
	fmt.Println(err)

	n, _ := cast.To("42", convert.Integer)
	fmt.Println(n)

	// Output:
	// 9 <nil>
	// true
	// blob does not conform to interface Shape: expected methods not implemented: Area
	// 42
}
