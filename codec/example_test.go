package codec_test

import (
	"fmt"

	"github.com/erraggy/xutil/codec"
)

func ExampleCaesar() {
	enc, _ := codec.Caesar("Attack at 0600", 3)
	dec, _ := codec.Caesar(enc, -3)
	fmt.Println(enc)
	fmt.Println(dec)
	// Output:
	// Dwwdfn dw 3933
	// Attack at 0600
}

func ExampleToMorse() {
	code, _ := codec.ToMorse("SOS")
	fmt.Println(code)
	// Output: ... --- ...
}

func ExampleConvertBase() {
	out, _ := codec.ConvertBase("255", 10, 16)
	fmt.Println(out)
	// Output: FF
}
