package inbound

import "net/http"

type TableResponse struct {
	FileName     string   `json:"file_name"`
	Headers      []string `json:"headers"`
	RowCount     int      `json:"row_count"`
	BlankDropped int      `json:"blank_rows_dropped"`
	Compatible3D bool     `json:"compatible_3d"`
}

func (TableResponse) StatusCode() int {
	return http.StatusCreated
}

func (TableResponse) Message() string {
	return "CSV file loaded"
}

type SnapshotResponse struct {
	HasTable     bool     `json:"has_table"`
	FileName     string   `json:"file_name,omitempty"`
	Headers      []string `json:"headers,omitempty"`
	RowCount     int      `json:"row_count"`
	Compatible3D bool     `json:"compatible_3d"`
	Error        string   `json:"error,omitempty"`
	LoadedAt     int64    `json:"loaded_at,omitempty"`
}

type PreviewResponse struct {
	FileName  string     `json:"file_name"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	totalRows int
}

func (r PreviewResponse) Meta() map[string]any {
	return map[string]any{
		"total_rows": r.totalRows,
		"shown_rows": len(r.Rows),
	}
}

type StatsResponse struct {
	Ingested      int64 `json:"ingested"`
	Failed        int64 `json:"failed"`
	RowsKept      int64 `json:"rows_kept"`
	BlanksDropped int64 `json:"blank_rows_dropped"`
}
