// Command exidump decodes a single EXI-encoded ISO 15118-2 V2G_Message
// from a file and prints a one-line summary of its contents. It has no
// opinion on transport, session state, or certificate handling —
// see SPEC_FULL.md's Non-goals.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/v2gkit/iso15118exi/bitio"
	"github.com/v2gkit/iso15118exi/v2g"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <file.exi>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("exidump: %v", err)
	}

	r := bitio.NewReader(data)
	var msg v2g.V2GMessageType
	if err := v2g.DecodeMessage(r, &msg); err != nil {
		log.Fatalf("exidump: decode: %v", err)
	}

	fmt.Println(msg.String())
}
