package unitconv_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/erraggy/xutil/unitconv"
	"github.com/erraggy/xutil/xuerrors"
)

// Example demonstrates converting one value into every unit of a domain.
func Example() {
	res, err := unitconv.Length.Convert(1, "km")
	if err != nil {
		fmt.Println(err)
		return
	}
	b, _ := json.Marshal(res)
	fmt.Println(string(b))
	// Output:
	// {"mm":1000000,"cm":100000,"m":1000,"km":1,"inch":39370.07874016,"ft":3280.83989501,"yd":1093.61329834,"mi":0.62137119,"nm":0.5399568}
}

func ExampleDomain_Convert_temperature() {
	res, _ := unitconv.Temperature.Convert(0, "celsius")
	b, _ := json.Marshal(res)
	fmt.Println(string(b))

	_, err := unitconv.Temperature.Convert(-500, "celsius")
	fmt.Println(errors.Is(err, xuerrors.ErrOutOfDomain))
	// Output:
	// {"celsius":0,"fahrenheit":32,"kelvin":273.15}
	// true
}

func ExampleDomain_ConvertBetween() {
	lb, _ := unitconv.Weight.ConvertBetween(1, "kg", "lb")
	fmt.Println(lb)
	// Output: 2.20462262
}

func ExampleLookup() {
	d, ok := unitconv.Lookup("bit_byte")
	fmt.Println(ok, d.Name(), d.Units()[:4])
	// Output: true bit-byte [Bit Byte Kb KB]
}
