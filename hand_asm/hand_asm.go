// hand_asm takes a filename and produces a bin file
// from parsing the input as a hand assembled listing
// of the form:
//
//	XXXX OP A1 A2
//
// Where XXXX is the address field and OP is the opcode
// A1,A2 are then optional params as needed.
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/jmchacon/interp6502/loader"
)

var (
	offset = flag.Int("offset", 0x0000, "Offset to start writing assembled data. Everything prior is zero filled.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s <input> <output>", os.Args[0])
	}
	if *offset < 0 || *offset > 0xFFFF {
		log.Fatal("--offset out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]
	out := flag.Args()[1]

	in, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", fn, err)
	}
	b, err := loader.ParseListing(in)
	in.Close()
	if err != nil {
		log.Fatalf("Can't process %q - %v", fn, err)
	}
	output := append(make([]byte, *offset), b...)
	if err := ioutil.WriteFile(out, output, 0644); err != nil {
		log.Fatalf("Got error writing to %q - %v", out, err)
	}
}
