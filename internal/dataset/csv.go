// Package dataset loads the groceries transaction file and keeps an immutable,
// encoded snapshot of it for request handlers.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"basketlens/internal/basket"
)

// Column names of the groceries export.
const (
	ColumnMember = "Member_number"
	ColumnDate   = "Date"
	ColumnItem   = "itemDescription"
)

var ErrMissingColumn = errors.New("missing required column")

// Table is the raw tabular form of the dataset, kept for previews.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable reads a CSV file into memory. Rows with a different field count
// than the header are skipped.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	t := &Table{Header: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		if len(row) != len(header) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Column returns the index of a header, matched case-insensitively.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if strings.EqualFold(h, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrMissingColumn, name)
}

// Transactions maps the table rows onto purchase records.
func (t *Table) Transactions() ([]basket.Transaction, error) {
	member, err := t.Column(ColumnMember)
	if err != nil {
		return nil, err
	}
	date, err := t.Column(ColumnDate)
	if err != nil {
		return nil, err
	}
	item, err := t.Column(ColumnItem)
	if err != nil {
		return nil, err
	}

	txs := make([]basket.Transaction, 0, len(t.Rows))
	for _, row := range t.Rows {
		txs = append(txs, basket.Transaction{
			CustomerID: strings.TrimSpace(row[member]),
			Date:       strings.TrimSpace(row[date]),
			Item:       strings.TrimSpace(row[item]),
		})
	}
	return txs, nil
}

// ReadTransactions parses a groceries CSV straight into purchase records.
func ReadTransactions(r io.Reader) ([]basket.Transaction, error) {
	t, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	return t.Transactions()
}
