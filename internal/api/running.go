package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anselboero/cloud-functions/internal/bucket"
	"github.com/anselboero/cloud-functions/internal/chart"
	"github.com/anselboero/cloud-functions/internal/config"
	"github.com/anselboero/cloud-functions/internal/metrics"
	"github.com/anselboero/cloud-functions/internal/running"
)

// RunningChart renders the weekly pace and heart rate chart from the activity CSV in the
// source bucket and uploads it to the destination bucket.
type RunningChart struct {
	config config.Running
	store  bucket.Store
}

type chartRequest struct {
	Source       string  `json:"SOURCE_BUCKET"`
	Destination  string  `json:"DESTINATION_BUCKET"`
	Variant      string  `json:"variant"`
	Sport        *string `json:"sport"`
	NameContains *string `json:"name_contains"`
}

func NewRunningChart(cfg *config.Config, store bucket.Store) *RunningChart {
	return &RunningChart{
		config: cfg.Running,
		store:  store,
	}
}

func (h *RunningChart) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	inv := invocation(r.Context())

	if !allow(w, r, http.MethodPost) {
		return
	}

	var request chartRequest
	if err := decode(r, &request); err != nil {
		inv.warnf("%v", err)
		writeText(w, http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	source := strings.TrimSpace(request.Source)
	destination := strings.TrimSpace(request.Destination)
	if source == "" || destination == "" {
		writeText(w, http.StatusBadRequest, "Error: SOURCE_BUCKET and DESTINATION_BUCKET must be set.")
		return
	}

	opts, err := h.options(request)
	if err != nil {
		writeText(w, http.StatusBadRequest, "Error: "+err.Error())
		return
	}

	data, err := h.store.Get(r.Context(), source, h.config.CSVObject)
	if err != nil {
		inv.warnf("%v", err)
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Error reading from GCS: %v", err))
		return
	}

	records, summary, err := running.Load(bytes.NewReader(data), opts)
	if err != nil {
		inv.warnf("%v", err)
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Error reading from GCS: %v", err))
		return
	}

	inv.debugf("activities: %d rows, %d filtered, %d dropped, %d loaded", summary.Rows, summary.Filtered, summary.Dropped, summary.Loaded)

	weeks := running.Plottable(running.Aggregate(records, h.config.WeekEnding()))
	if len(weeks) == 0 {
		inv.infof("no plottable weeks in gs://%v/%v", source, h.config.CSVObject)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var png bytes.Buffer
	err = chart.Render(&png, weeks, chart.Options{
		Title:         h.config.Chart.Title,
		Width:         h.config.Chart.Width,
		Height:        h.config.Chart.Height,
		DPI:           h.config.Chart.DPI,
		PaceGoal:      h.config.PaceGoal,
		HeartRateGoal: h.config.HeartRateGoal,
	})
	if errors.Is(err, chart.ErrNoWeeks) {
		w.WriteHeader(http.StatusNoContent)
		return
	} else if err != nil {
		inv.warnf("%v", err)
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Error generating chart: %v", err))
		return
	}

	if err := h.store.Put(r.Context(), destination, h.config.ChartObject, "image/png", png.Bytes()); err != nil {
		inv.warnf("%v", err)
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Error uploading chart: %v", err))
		return
	}

	metrics.RecordArtifact(inv.Function, png.Len())
	inv.infof("stored %v (%d weeks, %d bytes)", h.config.ChartObject, len(weeks), png.Len())

	url := bucket.PublicURL(destination, h.config.ChartObject)

	writeText(w, http.StatusOK, "Chart successfully generated and saved to: "+url)
}

func (h *RunningChart) options(request chartRequest) (running.Options, error) {
	variant := h.config.Variant
	if v := strings.ToLower(strings.TrimSpace(request.Variant)); v != "" {
		variant = v
	}

	if variant != config.VariantPace && variant != config.VariantDuration {
		return running.Options{}, fmt.Errorf("variant must be '%v' or '%v'", config.VariantPace, config.VariantDuration)
	}

	sport := h.config.Sport
	if request.Sport != nil {
		sport = strings.TrimSpace(*request.Sport)
	}

	name := h.config.NameContains
	if request.NameContains != nil {
		name = *request.NameContains
	}

	opts := h.config.LoadOptions()
	opts.Variant = running.Variant(variant)
	opts.Sport = sport
	opts.NameContains = name

	return opts, nil
}
