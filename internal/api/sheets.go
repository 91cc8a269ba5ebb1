package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/anselboero/cloud-functions/internal/bucket"
	"github.com/anselboero/cloud-functions/internal/config"
	"github.com/anselboero/cloud-functions/internal/keyvalue"
	"github.com/anselboero/cloud-functions/internal/metrics"
	"github.com/anselboero/cloud-functions/internal/movies"
	"github.com/anselboero/cloud-functions/internal/spreadsheet"
)

const maxBody = 1 << 20

// LastMovie returns the last movie watched as JSON, optionally caching it in a bucket.
type LastMovie struct {
	config config.LastMovie
	cors   config.CORS
	reader spreadsheet.Reader
	store  bucket.Store
}

// NetWorth exports the net worth key/value sheet to a bucket.
type NetWorth struct {
	config config.NetWorth
	cors   config.CORS
	reader spreadsheet.Reader
	store  bucket.Store
}

// Export copies an arbitrary key/value range to a bucket object named in the request.
type Export struct {
	area   string
	reader spreadsheet.Reader
	store  bucket.Store
}

type exportRequest struct {
	Spreadsheet string `json:"spreadsheet_id"`
	Bucket      string `json:"gcs_bucket_name"`
	Object      string `json:"json_output_filename"`
	Range       string `json:"range"`
}

func NewLastMovie(cfg *config.Config, reader spreadsheet.Reader, store bucket.Store) *LastMovie {
	return &LastMovie{
		config: cfg.LastMovie,
		cors:   cfg.CORS,
		reader: reader,
		store:  store,
	}
}

// NewNetWorth fails if no destination bucket is configured.
func NewNetWorth(cfg *config.Config, reader spreadsheet.Reader, store bucket.Store) (*NetWorth, error) {
	if cfg.NetWorth.Bucket == "" {
		return nil, errors.New("net worth bucket not configured (set BUCKET_NAME or net_worth.bucket)")
	}

	return &NetWorth{
		config: cfg.NetWorth,
		cors:   cfg.CORS,
		reader: reader,
		store:  store,
	}, nil
}

func NewExport(cfg *config.Config, reader spreadsheet.Reader, store bucket.Store) *Export {
	return &Export{
		area:   cfg.Export.Range,
		reader: reader,
		store:  store,
	}
}

func (h *LastMovie) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	inv := invocation(r.Context())

	if h.config.CORS {
		setCORS(w, h.cors)
	}

	if !allow(w, r, http.MethodGet) {
		return
	}

	rows, err := h.reader.Read(r.Context(), h.config.Spreadsheet, h.config.Range)
	if err != nil {
		inv.warnf("%v", err)
		writeError(w, http.StatusInternalServerError, codeUpstream, err.Error())
		return
	}

	var movie *movies.Movie
	if h.config.Header {
		movie, err = movies.FromTable(rows)
	} else {
		movie, err = movies.FromRows(rows)
	}

	switch {
	case errors.Is(err, spreadsheet.ErrNoData):
		inv.infof("no data in %v", h.config.Range)
		w.WriteHeader(http.StatusNoContent)
		return

	case errors.Is(err, spreadsheet.ErrMalformedRow):
		inv.warnf("%v", err)
		writeError(w, http.StatusInternalServerError, codeMalformedRow, err.Error())
		return

	case err != nil:
		inv.warnf("%v", err)
		writeError(w, http.StatusInternalServerError, codeUpstream, err.Error())
		return
	}

	body, err := json.Marshal(movie)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeUpstream, err.Error())
		return
	}

	if h.config.Bucket != "" {
		if err := store(r, h.store, h.config.Bucket, h.config.Object, body); err != nil {
			writeError(w, http.StatusInternalServerError, codeUpstream, err.Error())
			return
		}
	}

	inv.debugf("last movie watched: %v", movie.Title)

	writeJSON(w, http.StatusOK, body)
}

func (h *NetWorth) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.config.CORS {
		setCORS(w, h.cors)
	}

	if !allow(w, r, http.MethodGet) {
		return
	}

	snapshot(w, r, h.reader, h.store, h.config.Spreadsheet, h.config.Range, h.config.Bucket, h.config.Object)
}

func (h *Export) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	inv := invocation(r.Context())

	if !allow(w, r, http.MethodPost) {
		return
	}

	var request exportRequest
	if err := decode(r, &request); err != nil {
		inv.warnf("%v", err)
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"spreadsheet_id", request.Spreadsheet},
		{"gcs_bucket_name", request.Bucket},
		{"json_output_filename", request.Object},
	} {
		if strings.TrimSpace(f.value) == "" {
			writeError(w, http.StatusBadRequest, codeInvalidRequest, fmt.Sprintf("missing '%v'", f.name))
			return
		}
	}

	id, err := spreadsheet.ParseID(strings.TrimSpace(request.Spreadsheet))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	area := strings.TrimSpace(request.Range)
	if area == "" {
		area = h.area
	}

	if _, err := spreadsheet.SheetName(area); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	snapshot(w, r, h.reader, h.store, id, area, strings.TrimSpace(request.Bucket), strings.TrimSpace(request.Object))
}

// snapshot reads a key/value range, stores it as JSON and echoes the stored bytes.
func snapshot(w http.ResponseWriter, r *http.Request, reader spreadsheet.Reader, st bucket.Store, id, area, bucketName, object string) {
	inv := invocation(r.Context())

	rows, err := reader.Read(r.Context(), id, area)
	if err != nil {
		inv.warnf("%v", err)
		writeError(w, http.StatusInternalServerError, codeUpstream, err.Error())
		return
	}

	body, err := keyvalue.Build(rows).JSON()
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeUpstream, err.Error())
		return
	}

	if err := store(r, st, bucketName, object, body); err != nil {
		writeError(w, http.StatusInternalServerError, codeUpstream, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, body)
}

func store(r *http.Request, st bucket.Store, bucketName, object string, body []byte) error {
	inv := invocation(r.Context())

	if err := st.Put(r.Context(), bucketName, object, "application/json", body); err != nil {
		inv.warnf("%v", err)
		return err
	}

	metrics.RecordArtifact(inv.Function, len(body))
	inv.infof("stored %v (%d bytes)", object, len(body))

	return nil
}

func decode(r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBody))
	if err != nil {
		return fmt.Errorf("unable to read request body (%w)", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid JSON request body (%w)", err)
	}

	return nil
}
