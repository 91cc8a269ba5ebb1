package config

const (
	defaultCORSAllowOrigin  = "https://anselboero.com"
	defaultCORSAllowMethods = "GET"
	defaultCORSAllowHeaders = "Content-Type"

	defaultLastMovieSpreadsheet = "1evnjLFzM3apXph0sUahqcbCwuEKCeAZh6bp3bdshSm4"
	defaultLastMovieRange       = "LastMovieWatched!A2:E2"
	defaultLastMovieObject      = "last_movie_watched.json"

	defaultNetWorthSpreadsheet = "1G_CqV95lI7r-XtgpO5UOzsB_h77G4JVV9kThdzfsujk"
	defaultNetWorthRange       = "API!A:B"
	defaultNetWorthObject      = "net_worth.json"

	defaultExportRange = "API!A:B"

	defaultRunningCSVObject     = "garmin_activities.csv"
	defaultRunningChartObject   = "running__base_runs_weekly_avg_pace.png"
	defaultRunningVariant       = VariantPace
	defaultRunningWeekEnd       = "Monday"
	defaultRunningPaceGoal      = 6.5
	defaultRunningHeartRateGoal = 150
	defaultChartTitle           = "Weekly Average Pace and Heart Rate vs. Targets"
	defaultChartWidth           = 2250
	defaultChartHeight          = 1200
	defaultChartDPI             = 150
)

// Activity CSV variants.
const (
	VariantPace     = "pace"
	VariantDuration = "duration"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		CORS: CORS{
			AllowOrigin:  defaultCORSAllowOrigin,
			AllowMethods: defaultCORSAllowMethods,
			AllowHeaders: defaultCORSAllowHeaders,
		},
		LastMovie: LastMovie{
			Spreadsheet: defaultLastMovieSpreadsheet,
			Range:       defaultLastMovieRange,
			Object:      defaultLastMovieObject,
			CORS:        true,
		},
		NetWorth: NetWorth{
			Spreadsheet: defaultNetWorthSpreadsheet,
			Range:       defaultNetWorthRange,
			Object:      defaultNetWorthObject,
			CORS:        false,
		},
		Export: Export{
			Range: defaultExportRange,
		},
		Running: Running{
			CSVObject:     defaultRunningCSVObject,
			ChartObject:   defaultRunningChartObject,
			Variant:       defaultRunningVariant,
			WeekEnd:       defaultRunningWeekEnd,
			PaceGoal:      defaultRunningPaceGoal,
			HeartRateGoal: defaultRunningHeartRateGoal,
			DecimalComma:  true,
			Columns: Columns{
				Date:       "Date",
				Distance:   "Distance",
				Pace:       "Avg Pace",
				MovingTime: "Moving Time",
				HeartRate:  "Avg HR",
				Sport:      "Activity Type",
				Name:       "Title",
			},
			Chart: Chart{
				Title:  defaultChartTitle,
				Width:  defaultChartWidth,
				Height: defaultChartHeight,
				DPI:    defaultChartDPI,
			},
		},
	}
}
