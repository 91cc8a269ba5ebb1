package functions

import (
	"log"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/anselboero/cloud-functions/internal/api"
	"github.com/anselboero/cloud-functions/internal/bucket"
	"github.com/anselboero/cloud-functions/internal/config"
	"github.com/anselboero/cloud-functions/internal/metrics"
	"github.com/anselboero/cloud-functions/internal/spreadsheet"
)

const VERSION = "v0.3.0"

// Function names, as deployed.
const (
	GetLastMovieWatched = "GetLastMovieWatched"
	GsheetToGCS         = "GsheetToGCS"
	GetNetWorth         = "GetNetWorth"
	UpdateRunningImages = "UpdateRunningImages"
	Metrics             = "Metrics"
)

// Names lists every registered function.
var Names = []string{
	GetLastMovieWatched,
	GsheetToGCS,
	GetNetWorth,
	UpdateRunningImages,
	Metrics,
}

var (
	once     sync.Once
	handlers map[string]http.Handler
)

func init() {
	for _, name := range Names {
		functions.HTTP(name, dispatch(name))
	}
}

// dispatch defers loading the configuration to the first request so that a local server can
// point CONFIG_FILE at a file before any function runs.
func dispatch(name string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			cfg, err := config.Load("")
			if err != nil {
				log.Printf("%-5s %v", "ERROR", err)
				handlers = Unconfigured(err)
				return
			}

			reader := spreadsheet.Google{Credentials: cfg.Credentials.File}
			store := bucket.GCS{Credentials: cfg.Credentials.File}

			handlers = Handlers(cfg, reader, store)
		})

		handlers[name].ServeHTTP(w, r)
	}
}

// Handlers builds the instrumented handler for every function.
func Handlers(cfg *config.Config, reader spreadsheet.Reader, store bucket.Store) map[string]http.Handler {
	var netWorth http.Handler
	if h, err := api.NewNetWorth(cfg, reader, store); err != nil {
		log.Printf("%-5s %v: %v", "WARN", GetNetWorth, err)
		netWorth = api.Misconfigured(err)
	} else {
		netWorth = h
	}

	return map[string]http.Handler{
		GetLastMovieWatched: api.Instrument(GetLastMovieWatched, cfg.Debug, api.NewLastMovie(cfg, reader, store)),
		GsheetToGCS:         api.Instrument(GsheetToGCS, cfg.Debug, api.NewExport(cfg, reader, store)),
		GetNetWorth:         api.Instrument(GetNetWorth, cfg.Debug, netWorth),
		UpdateRunningImages: api.Instrument(UpdateRunningImages, cfg.Debug, api.NewRunningChart(cfg, store)),
		Metrics:             metrics.Handler(),
	}
}

// Unconfigured answers every function except Metrics with the configuration error.
func Unconfigured(err error) map[string]http.Handler {
	m := map[string]http.Handler{}
	for _, name := range Names {
		m[name] = api.Instrument(name, false, api.Misconfigured(err))
	}

	m[Metrics] = metrics.Handler()

	return m
}
