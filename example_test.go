package utf8codec_test

import (
	"fmt"
	"log"

	"github.com/pchchv/utf8codec"
)

func ExampleEncode() {
	s, n, err := utf8codec.Encode(0x20AC)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v (%d bytes)\n", s, n)
	fmt.Printf("% X\n", s.AppendBytes(nil, n))
	// Output:
	// 0xE282AC (3 bytes)
	// E2 82 AC
}

func ExampleDecode() {
	c, err := utf8codec.Decode(0xF0908D88)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(c)
	// Output: U+10348
}

func ExampleSize() {
	for _, lead := range []byte{0x24, 0xC2, 0xE2, 0xF0, 0x80} {
		n, err := utf8codec.Size(lead)
		fmt.Printf("0x%02X: %d %v\n", lead, n, err)
	}
	// Output:
	// 0x24: 1 <nil>
	// 0xC2: 2 <nil>
	// 0xE2: 3 <nil>
	// 0xF0: 4 <nil>
	// 0x80: 0 utf8codec: invalid lead byte
}
