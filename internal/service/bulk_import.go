package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/S3b4sB0t3r0/evg-server/internal/model"
	"github.com/S3b4sB0t3r0/evg-server/internal/money"
)

// RowError reports one rejected bulk-upload row. Row numbering starts at 1
// for the first data row (the header is row 0).
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// BulkReport is the partial-accept result of a bulk upload: valid rows are
// inserted, invalid rows are reported back, the upload never all-or-nothings.
type BulkReport struct {
	Accepted int        `json:"accepted"`
	Rejected []RowError `json:"rejected"`
}

// ImportProductsCSV parses rows of
// nombre,descripcion,categoria,precio,imagen,disponible,stock.
// precio accepts both plain integers and display strings like "$5.000".
func (s *CatalogService) ImportProductsCSV(ctx context.Context, r io.Reader, maxRows int) (*BulkReport, error) {
	rows, err := readCSV(r, 7, maxRows)
	if err != nil {
		return nil, err
	}

	report := &BulkReport{}
	var batch []*model.Product
	for i, rec := range rows {
		p := &model.Product{
			Nombre:      strings.TrimSpace(rec[0]),
			Descripcion: strings.TrimSpace(rec[1]),
			Categoria:   strings.ToLower(strings.TrimSpace(rec[2])),
			Precio:      money.ParseCOP(rec[3]),
			Imagen:      strings.TrimSpace(rec[4]),
			Disponible:  parseBool(rec[5]),
		}
		if st, err := strconv.Atoi(strings.TrimSpace(rec[6])); err == nil {
			p.Stock = st
		}
		if err := validateProduct(p); err != nil {
			report.Rejected = append(report.Rejected, RowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		batch = append(batch, p)
	}
	if err := s.ProductDao.BatchCreate(ctx, batch); err != nil {
		return nil, err
	}
	report.Accepted = len(batch)
	if report.Accepted > 0 {
		s.invalidateMenu(ctx)
	}
	return report, nil
}

// ImportIngredientsCSV parses rows of nombre,categoria,unidad,cantidad,umbral.
func (s *IngredientService) ImportIngredientsCSV(ctx context.Context, r io.Reader, maxRows int) (*BulkReport, error) {
	rows, err := readCSV(r, 5, maxRows)
	if err != nil {
		return nil, err
	}

	report := &BulkReport{}
	var batch []*model.Ingredient
	for i, rec := range rows {
		ing := &model.Ingredient{
			Nombre:    strings.TrimSpace(rec[0]),
			Categoria: strings.TrimSpace(rec[1]),
			Unidad:    strings.TrimSpace(rec[2]),
			Cantidad:  parseFloat(rec[3]),
			Umbral:    parseFloat(rec[4]),
		}
		if err := validateIngredient(ing); err != nil {
			report.Rejected = append(report.Rejected, RowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		batch = append(batch, ing)
	}
	if err := s.IngredientDao.BatchCreate(ctx, batch); err != nil {
		return nil, err
	}
	report.Accepted = len(batch)
	return report, nil
}

// readCSV returns the data rows after the header, enforcing column and row
// counts up front so a malformed upload fails before any insert.
func readCSV(r io.Reader, wantCols, maxRows int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = wantCols
	cr.TrimLeadingSpace = true

	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("csv empty")
	}
	rows := all[1:] // header
	if maxRows > 0 && len(rows) > maxRows {
		return nil, fmt.Errorf("csv has %d rows, limit is %d", len(rows), maxRows)
	}
	return rows, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "si", "sí":
		return true
	}
	return false
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil {
		return 0
	}
	return f
}
