// Command pcm2adpcm compresses a raw little-endian 16-bit PCM file into a
// packed ADPCM file, optionally applying the voice bandpass filter first.
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
		inPath  = flag.String("in", "audio.pcm", "input raw PCM file")
		outPath = flag.String("out", "audio.adpcm", "output ADPCM file")
		filter  = flag.Bool("filter", false, "apply the voice bandpass filter before encoding")
		rate    = flag.Float64("rate", adpcm.DefaultSampleRate, "sample rate in Hz (filter only)")
		low     = flag.Float64("low", adpcm.DefaultLowHz, "lower passband corner in Hz (filter only)")
		high    = flag.Float64("high", adpcm.DefaultHighHz, "upper passband corner in Hz (filter only)")
	)
	flag.Parse()

	raw, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	samples, err := pcm.Samples(raw)
	if err != nil {
		log.Fatal(err)
	}

	if *filter {
		f, err := adpcm.NewBandpassFilter(*rate, *low, *high)
		if err != nil {
			log.Fatal(err)
		}
		samples = f.Process(samples)
	}

	data, err := adpcm.Encode(samples)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("encoded %d samples into %d bytes: %s\n", len(samples), len(data), *outPath)
}
