package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var nan = math.NaN()

// WriteCSV writes the table with a header row matching the record schema.
// Missing price/size values are written as empty fields.
func WriteCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(Columns))
	for _, r := range t.Records {
		row[0] = formatFloat(r.Price)
		row[1] = formatFloat(r.Size)
		row[2] = strconv.Itoa(r.Bedrooms)
		row[3] = strconv.Itoa(r.Bathrooms)
		row[4] = strconv.Itoa(r.Age)
		row[5] = formatFloat(r.DistanceToCity)
		row[6] = r.Quality.String()
		row[7] = r.SaleDate.Format(dateLayout)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV loads a table previously written by WriteCSV, coercing each
// column back to its schema type. Empty price/size fields become NaN.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	t := &Table{}
	line := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		t.Records = append(t.Records, row)
	}
	return t, nil
}

func checkHeader(header []string) error {
	if len(header) != len(Columns) {
		return fmt.Errorf("expected %d columns, got %d", len(Columns), len(header))
	}
	for i, want := range Columns {
		if strings.TrimSpace(header[i]) != want {
			return fmt.Errorf("column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseRow(rec []string) (Record, error) {
	var r Record
	if len(rec) != len(Columns) {
		return r, fmt.Errorf("expected %d fields, got %d", len(Columns), len(rec))
	}
	var err error
	if r.Price, err = parseNullableFloat(rec[0]); err != nil {
		return r, fmt.Errorf("price: %w", err)
	}
	if r.Size, err = parseNullableFloat(rec[1]); err != nil {
		return r, fmt.Errorf("size: %w", err)
	}
	if r.Bedrooms, err = strconv.Atoi(rec[2]); err != nil {
		return r, fmt.Errorf("bedrooms: %w", err)
	}
	if r.Bathrooms, err = strconv.Atoi(rec[3]); err != nil {
		return r, fmt.Errorf("bathrooms: %w", err)
	}
	if r.Age, err = strconv.Atoi(rec[4]); err != nil {
		return r, fmt.Errorf("age: %w", err)
	}
	if r.DistanceToCity, err = strconv.ParseFloat(rec[5], 64); err != nil {
		return r, fmt.Errorf("distance_to_city: %w", err)
	}
	if r.Quality, err = ParseQuality(rec[6]); err != nil {
		return r, err
	}
	if r.SaleDate, err = time.Parse(dateLayout, rec[7]); err != nil {
		return r, fmt.Errorf("sale_date: %w", err)
	}
	return r, nil
}

func formatFloat(v float64) string {
	if Missing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseNullableFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" || s == "NaN" {
		return nan, nil
	}
	return strconv.ParseFloat(s, 64)
}
