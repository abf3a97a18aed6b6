// Package excel reads table-like files into host exchange models so the
// test tools can consume samples prepared outside the host.
package excel

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/internal"
)

// xlsx workbooks are zip archives
var xlsxSignature = []byte("PK\x03\x04")

// ReadTable reads a workbook or CSV stream into a table model. The format
// is detected from the stream itself: streams carrying the zip signature
// are opened as xlsx, anything else is parsed as CSV.
func ReadTable(r io.Reader, title string) (table.Model, error) {
	br := bufio.NewReader(r)
	sig, err := br.Peek(len(xlsxSignature))
	if err != nil && err != io.EOF {
		return table.Model{}, fmt.Errorf("failed to read stream: %w", err)
	}

	var rows [][]string
	if bytes.HasPrefix(sig, xlsxSignature) {
		rows, err = parseWorkbook(br)
	} else {
		rows, err = parseCSV(br)
	}
	if err != nil {
		return table.Model{}, err
	}
	if len(rows) == 0 {
		return table.Model{}, core.NewInvalidInputError("stream contains no rows")
	}
	return table.NewTableModel(title, rows), nil
}

// WriteCSV writes a table model's rows as CSV
func WriteCSV(m table.Model, w io.Writer) error {
	rows, err := m.AsTable()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func parseWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.NewInvalidInputError("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func parseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// SampleReader handles reading Excel and CSV files
type SampleReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewSampleReader creates a reader that handles both Excel and CSV files
func NewSampleReader(filePath string) *SampleReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &SampleReader{
		filePath: filePath,
		fileType: fileType,
		log:      internal.DefaultLogger,
	}
}

// ReadModel reads the file into a table model
func (r *SampleReader) ReadModel() (table.Model, error) {
	r.log.Debug("reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return table.Model{}, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		err = core.NewInvalidInputError("unsupported file type " + r.fileType)
	}
	if err != nil {
		return table.Model{}, err
	}
	if len(rows) == 0 {
		return table.Model{}, core.NewInvalidInputError(fmt.Sprintf("%s contains no rows", r.filePath))
	}

	r.log.Debug("read %d rows from %s", len(rows), r.filePath)
	return table.NewTableModel(filepath.Base(r.filePath), rows), nil
}

// ReadSamples reads the file and extracts one numeric sample per column
func (r *SampleReader) ReadSamples() ([]table.Sample, error) {
	model, err := r.ReadModel()
	if err != nil {
		return nil, err
	}
	rows, err := model.AsTable()
	if err != nil {
		return nil, err
	}
	return table.SamplesFromRows(rows)
}

func (r *SampleReader) readExcelRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f)
}

func (r *SampleReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()
	return parseCSV(f)
}
