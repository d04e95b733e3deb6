package usecase

import (
	"encoding/csv"
	"errors"
	"io"
	"mime"
	"strings"

	"github.com/prabhatsn1/trameapp/internal/ingest/entity"
)

const (
	csvMIMEType = "text/csv"
	csvSuffix   = ".csv"
)

var errEmptyFile = errors.New("csv contains no records")

// acceptUpload implements the ingestion precondition: the declared content
// type is the CSV MIME type, or the file name ends with ".csv". The suffix
// match is deliberately case-sensitive (".CSV" is rejected), matching the
// original tool.
func acceptUpload(fileName, contentType string) bool {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil && mediaType == csvMIMEType {
			return true
		}
	}

	return strings.HasSuffix(fileName, csvSuffix)
}

// parseTable reads the whole input as CSV and normalizes it into a Table.
//
// The first record becomes the headers verbatim; every later record becomes a
// data row unless all its cells are blank after trimming. Record lengths may
// vary, wholly empty lines are skipped by the reader, and any read error
// discards the partial result. The second return value is the number of
// all-blank rows that were dropped.
func parseTable(r io.Reader) (entity.Table, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return entity.Table{}, 0, err
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return entity.Table{}, 0, errEmptyFile
	}

	rows := make([][]string, 0, len(records)-1)
	dropped := 0
	for _, record := range records[1:] {
		if isBlankRow(record) {
			dropped++
			continue
		}
		rows = append(rows, record)
	}

	return entity.Table{Headers: records[0], Rows: rows}, dropped, nil
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
