package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fortuna/scorefeed/internal/ingest/espn"
)

// extract runs one extraction offline: it reads an event summary payload
// from a file and prints the canonical record. Useful for checking what a
// crawl would store without touching the network.
func main() {
	sportFlag := flag.String("sport", "", "sport to extract (baseball, basketball, hockey, generic)")
	leagueFlag := flag.String("league", "", "league slug to derive the sport from (alternative to -sport)")
	fileFlag := flag.String("file", "", "path to an event summary JSON file (default stdin)")
	flag.Parse()

	sport := espn.Sport(*sportFlag)
	if *sportFlag == "" {
		if *leagueFlag == "" {
			log.Fatal("either -sport or -league is required")
		}
		sport = espn.SportByLeague(*leagueFlag)
	}

	raw, err := readInput(*fileFlag)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	record, err := espn.ParseMatchDetailBySport(raw, sport)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode record: %v", err)
	}
	fmt.Println(string(out))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
