// Command sheetimport converts a spreadsheet export of the product
// catalog into the products.json file the storefront serves.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"storefront-service/internal/sheet"
)

func main() {
	in := flag.String("in", "products.xlsx", "spreadsheet export to read")
	out := flag.String("out", "products.json", "catalog file to write")
	worksheet := flag.String("sheet", "", "worksheet name (default: first sheet)")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *in, err)
	}
	defer f.Close()

	records, err := sheet.ParseWorkbook(f, *worksheet)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *in, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Updated %s from %s (%d products)", *out, *in, len(records))
}
