// Copyright 2025 anselboero. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package functions implements a small set of HTTP triggered Cloud Run functions that publish
personal data kept in Google Sheets and Cloud Storage to a static website.

The package registers the following functions with the functions framework:

  - GetLastMovieWatched, to return the last movie watched from the MyMoviesDb worksheet as JSON
  - GsheetToGCS, to export a key/value worksheet range to a JSON object in a bucket
  - GetNetWorth, to export the net worth worksheet to a fixed JSON object in a bucket
  - UpdateRunningImages, to render the weekly average pace and heart rate chart from the Garmin
    activity export and upload it as a PNG
  - Metrics, to expose the Prometheus invocation metrics

Configuration is read from an optional TOML file (CONFIG_FILE) and the environment on the first
invocation. A function whose configuration is invalid answers every request with a 500.
*/
package functions
