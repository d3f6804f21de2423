package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// SheetName is the worksheet the Excel loader reads. Expected columns:
// ID, Name, Category, Price, ImageURL, Description (first row is the
// header).
const SheetName = "Products"

// Load builds a Store from the given path. An empty path loads the
// built-in seed catalog; otherwise the extension picks the loader.
func Load(path string) (*Store, error) {
	if path == "" {
		return NewStore(seedProducts)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		products, err := loadExcel(path)
		if err != nil {
			return nil, err
		}
		return NewStore(products)
	case ".json":
		products, err := loadJSON(path)
		if err != nil {
			return nil, err
		}
		return NewStore(products)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .xlsx or .json)", filepath.Ext(path))
	}
}

func loadJSON(path string) ([]model.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return products, nil
}

func loadExcel(path string) ([]model.Product, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file: %w", err)
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", SheetName, err)
	}

	var products []model.Product
	for i, row := range rows {
		if i == 0 {
			continue // skip header
		}

		if len(row) < 6 {
			fmt.Printf("Row %d: Skipped (insufficient columns, got %d columns)\n", i, len(row))
			continue
		}

		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil || price < 0 {
			fmt.Printf("Row %d: Skipped (invalid price: %s)\n", i, row[3])
			continue
		}

		products = append(products, model.Product{
			ID:          strings.TrimSpace(row[0]),
			Name:        row[1],
			Category:    row[2],
			Price:       price,
			ImageURL:    row[4],
			Description: row[5],
		})
	}

	return products, nil
}
