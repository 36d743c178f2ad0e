// Command adpcm2pcm decompresses a packed ADPCM file into a raw
// little-endian 16-bit PCM file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/its4ff/go-adpcm"
	"github.com/its4ff/go-adpcm/internal/pcm"
)

func main() {
	var (
		inPath  = flag.String("in", "audio.adpcm", "input ADPCM file")
		outPath = flag.String("out", "audio.pcm", "output raw PCM file")
	)
	flag.Parse()

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatal(err)
	}

	samples, err := adpcm.Decode(data)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outPath, pcm.Bytes(samples), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("decoded %d bytes into %d samples: %s\n", len(data), len(samples), *outPath)
}
