package inbound

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/prabhatsn1/trameapp/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	uc    uc
	stats statsProvider
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	upload, cleanup, err := extractUpload(r)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result, err := h.uc.Ingest(ctx, upload.reader, upload.fileName, upload.contentType)
	if err != nil {
		return nil, err
	}

	return TableResponse{
		FileName:     result.FileName,
		Headers:      result.Headers,
		RowCount:     result.RowCount,
		BlankDropped: result.BlankDropped,
		Compatible3D: result.Compatible3D,
	}, nil
}

func (h *HTTPEndpoint) Current(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Current(ctx)
	if err != nil {
		return nil, err
	}

	return SnapshotResponse{
		HasTable:     result.HasTable,
		FileName:     result.FileName,
		Headers:      result.Headers,
		RowCount:     result.RowCount,
		Compatible3D: result.Compatible3D,
		Error:        result.Err,
		LoadedAt:     result.LoadedAt,
	}, nil
}

func (h *HTTPEndpoint) Preview(ctx context.Context, r *http.Request) (any, error) {
	limit, err := parseRows(r.URL.Query().Get("rows"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Preview(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows := result.Rows
	if rows == nil {
		rows = [][]string{}
	}

	return PreviewResponse{
		FileName:  result.FileName,
		Headers:   result.Headers,
		Rows:      rows,
		totalRows: result.TotalRows,
	}, nil
}

func (h *HTTPEndpoint) Clear(ctx context.Context, r *http.Request) (any, error) {
	if err := h.uc.Clear(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, r *http.Request) (any, error) {
	if h.stats == nil {
		return nil, pkgerror.NewServer(errors.New("stats recorder is not configured"))
	}

	stats := h.stats.Snapshot()

	return StatsResponse{
		Ingested:      stats.Ingested,
		Failed:        stats.Failed,
		RowsKept:      stats.RowsKept,
		BlanksDropped: stats.BlanksDropped,
	}, nil
}

func parseRows(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, pkgerror.NewInvalidInput(errors.New("invalid rows"))
	}

	return value, nil
}

type upload struct {
	reader      io.Reader
	fileName    string
	contentType string
}

// extractUpload pulls the uploaded file out of the request. Multipart
// requests use the "file" part; raw bodies fall back to the request's own
// Content-Type plus an optional filename query parameter.
func extractUpload(r *http.Request) (upload, func(), error) {
	noop := func() {}

	contentType := r.Header.Get("Content-Type")
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil && strings.EqualFold(mediaType, "multipart/form-data") {
			return extractMultipartFile(r)
		}
	}

	if r.Body == nil {
		return upload{}, noop, pkgerror.NewInvalidInput(errors.New("empty request body"))
	}

	return upload{
		reader:      r.Body,
		fileName:    r.URL.Query().Get("filename"),
		contentType: contentType,
	}, noop, nil
}

func extractMultipartFile(r *http.Request) (upload, func(), error) {
	noop := func() {}

	reader, err := r.MultipartReader()
	if err != nil {
		return upload{}, noop, pkgerror.NewInvalidInput(errors.New("malformed multipart body"))
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return upload{}, noop, pkgerror.NewInvalidInput(errors.New("file part is required"))
			}
			return upload{}, noop, pkgerror.NewInvalidInput(errors.New("malformed multipart body"))
		}

		if part.FormName() == "file" {
			return upload{
				reader:      part,
				fileName:    part.FileName(),
				contentType: part.Header.Get("Content-Type"),
			}, func() { _ = part.Close() }, nil
		}
		_ = part.Close()
	}
}
