// Command fixture exports the embedded account fixture so it can be
// edited and served back via MOCKSOCIAL_FIXTURE.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/upstar-club/mocksocial/internal/directory"
)

func main() {
	out := flag.String("out", "", "Output path (default: stdout)")
	flag.Parse()

	data := directory.DefaultFixture()

	if *out == "" {
		fmt.Print(string(data))
		return
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatalf("write fixture: %v", err)
	}
	log.Printf("wrote %d bytes to %s", len(data), *out)
}
