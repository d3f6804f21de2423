// gencatalog exports the built-in seed catalog to the file formats the
// catalog loader accepts, so operators have a starting point to edit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/catalog"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

func main() {
	out := flag.String("out", "catalog.xlsx", "Output path (.xlsx or .json)")
	flag.Parse()

	store, err := catalog.Load("")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	products := store.Products()

	switch strings.ToLower(filepath.Ext(*out)) {
	case ".xlsx":
		err = writeExcel(*out, products)
	case ".json":
		err = writeJSON(*out, products)
	default:
		err = fmt.Errorf("unsupported output format %q (want .xlsx or .json)", filepath.Ext(*out))
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d products to %s\n", len(products), *out)
}

func writeExcel(path string, products []model.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", catalog.SheetName); err != nil {
		return err
	}

	header := []interface{}{"ID", "Name", "Category", "Price", "ImageURL", "Description"}
	if err := f.SetSheetRow(catalog.SheetName, "A1", &header); err != nil {
		return err
	}

	for i, p := range products {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{p.ID, p.Name, p.Category, p.Price, p.ImageURL, p.Description}
		if err := f.SetSheetRow(catalog.SheetName, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeJSON(path string, products []model.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
