// Command timetable is the CLI wrapper around the scheduler core: it
// reads a problem instance from disk, runs Schedule, and writes a
// result plus a human-readable report. It is scaffolding around the
// core, not a scheduling decision-maker in its own right.
package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edusched/timetable/internal/config"
	"github.com/edusched/timetable/internal/logging"
	"github.com/edusched/timetable/internal/metrics"
	"github.com/edusched/timetable/internal/report"
	"github.com/edusched/timetable/scheduler"
)

var (
	inPath      string
	outPath     string
	pdfPath     string
	schedPath   string
	seed        int64
	metricsAddr string
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("loading config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		os.Stderr.WriteString("building logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	root := &cobra.Command{
		Use:   "timetable",
		Short: "Constraint-driven university timetable generator",
		Long:  "Generates conflict-free class timetables subject to teacher, room, and prerequisite constraints.",
	}

	cmdGen := &cobra.Command{
		Use:   "gen",
		Short: "generate a schedule from a problem instance",
		Run:   runGen(cfg, log),
	}
	cmdGen.Flags().StringVar(&inPath, "in", "", "path to the problem JSON file (required)")
	cmdGen.Flags().StringVar(&outPath, "out", "result.json", "path to write the result JSON")
	cmdGen.Flags().StringVar(&pdfPath, "pdf", "", "optional path to also write a PDF timetable")
	cmdGen.Flags().Int64Var(&seed, "seed", cfg.Seed, "random seed override (0 keeps the problem file's seed; a zero seed there derives from current time)")
	cmdGen.MarkFlagRequired("in") //nolint:errcheck
	root.AddCommand(cmdGen)

	cmdVerify := &cobra.Command{
		Use:   "verify",
		Short: "re-check hard constraints against an externally-produced schedule",
		Run:   runVerify(log),
	}
	cmdVerify.Flags().StringVar(&inPath, "in", "", "path to the problem JSON file (required)")
	cmdVerify.Flags().StringVar(&schedPath, "schedule", "", "path to the result JSON to verify (required)")
	cmdVerify.MarkFlagRequired("in")       //nolint:errcheck
	cmdVerify.MarkFlagRequired("schedule") //nolint:errcheck
	root.AddCommand(cmdVerify)

	cmdServeMetrics := &cobra.Command{
		Use:   "serve-metrics",
		Short: "serve the timetable Prometheus gauges; this command runs and publishes no schedule, so they report zero values",
		Run:   runServeMetrics(cfg, log),
	}
	cmdServeMetrics.Flags().StringVar(&metricsAddr, "addr", cfg.MetricsAddr, "address to listen on")
	root.AddCommand(cmdServeMetrics)

	if err := root.Execute(); err != nil {
		log.Fatalw("command failed", "error", err)
	}
}

func runGen(cfg *config.Config, log *zap.SugaredLogger) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		problem := readProblem(log, inPath)
		if seed != 0 {
			problem.Seed = seed
		}
		if problem.TeacherMaxDailyLoad == 0 {
			problem.TeacherMaxDailyLoad = cfg.TeacherMaxDailyLoad
		}

		result, err := scheduler.Schedule(problem, scheduler.WithLogger(log))
		if err != nil {
			log.Fatalw("scheduling failed", "error", err)
		}

		out, err := os.Create(outPath)
		if err != nil {
			log.Fatalw("creating output file", "path", outPath, "error", err)
		}
		if err := report.WriteJSON(out, result); err != nil {
			out.Close()
			log.Fatalw("writing result JSON", "error", err)
		}
		if err := out.Close(); err != nil {
			log.Fatalw("closing output file", "error", err)
		}

		if err := report.WriteText(os.Stdout, problem, result); err != nil {
			log.Fatalw("writing text report", "error", err)
		}

		if pdfPath != "" {
			pdfFile, err := os.Create(pdfPath)
			if err != nil {
				log.Fatalw("creating PDF file", "path", pdfPath, "error", err)
			}
			if err := report.WritePDF(pdfFile, problem, result); err != nil {
				pdfFile.Close()
				log.Fatalw("writing PDF", "error", err)
			}
			if err := pdfFile.Close(); err != nil {
				log.Fatalw("closing PDF file", "error", err)
			}
		}

		metrics.Publish(result)
	}
}

func runVerify(log *zap.SugaredLogger) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		problem := readProblem(log, inPath)

		schedFile, err := os.Open(schedPath)
		if err != nil {
			log.Fatalw("opening schedule file", "path", schedPath, "error", err)
		}
		defer schedFile.Close()

		var result scheduler.Result
		if err := json.NewDecoder(schedFile).Decode(&result); err != nil {
			log.Fatalw("decoding schedule file", "error", err)
		}

		violations, err := scheduler.Verify(problem, &result)
		if err != nil {
			log.Fatalw("verification could not run", "error", err)
		}
		for _, line := range violations {
			log.Infow("verification", "result", line)
		}
	}
}

func runServeMetrics(cfg *config.Config, log *zap.SugaredLogger) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		log.Infow("serving metrics", "addr", metricsAddr)
		if err := metrics.Serve(metricsAddr); err != nil {
			log.Fatalw("metrics server stopped", "error", err)
		}
	}
}

func readProblem(log *zap.SugaredLogger, path string) *scheduler.Problem {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalw("opening problem file", "path", path, "error", err)
	}
	defer f.Close()

	var problem scheduler.Problem
	if err := json.NewDecoder(f).Decode(&problem); err != nil {
		log.Fatalw("decoding problem file", "path", path, "error", err)
	}
	return &problem
}
