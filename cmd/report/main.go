// Command report runs one query-to-report cycle from the command line and
// writes the xlsx to disk.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/logging"
	"cuifreport.sfcdata.org/internal/niif"
	"cuifreport.sfcdata.org/internal/pipeline"
	"cuifreport.sfcdata.org/internal/socrata"
	"cuifreport.sfcdata.org/internal/utils"
)

func main() {
	var (
		entityType   = flag.String("entity-type", "", "Entity type label, exactly as published (e.g. \"ESTABLECIMIENTOS BANCARIOS\")")
		fromFlag     = flag.String("from", "", "Range start date, YYYY-MM-DD")
		toFlag       = flag.String("to", "", "Range end date, YYYY-MM-DD")
		unit         = flag.String("unit", "Sin Unidades", "Unit scale name (Sin Unidades|Miles|Millones|Cientos de Millones|Miles de Millones|Billones)")
		templatePath = flag.String("template", "", "Path to the NIIF template workbook")
		outDir       = flag.String("out", ".", "Directory the report is written to")
		socrataURL   = flag.String("socrata-url", socrata.DefaultBaseURL, "Base URL of the CUIF open-data resource")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	from, err := utils.ParseDate(*fromFlag)
	if err != nil {
		logger.Error("invalid -from flag", "error", err)
		os.Exit(1)
	}
	to, err := utils.ParseDate(*toFlag)
	if err != nil {
		logger.Error("invalid -to flag", "error", err)
		os.Exit(1)
	}

	templateFile, err := os.Open(*templatePath)
	if err != nil {
		logger.Error("cannot open template workbook", "error", err, "path", *templatePath)
		os.Exit(1)
	}
	template, err := niif.LoadAccountTemplate(templateFile)
	logging.SafeCloseWithLogging(templateFile, logger, "template_workbook")
	if err != nil {
		logger.Error("cannot read template workbook", "error", err)
		os.Exit(1)
	}

	catalog := cuif.DefaultCatalog()
	dataset := socrata.NewClient(*socrataURL, nil, logger)
	p := pipeline.New(dataset, catalog, nil, logger)

	result, err := p.Run(context.Background(), pipeline.Request{
		EntityType: *entityType,
		From:       from,
		To:         to,
		Unit:       *unit,
		Template:   template,
	})
	if err != nil {
		logger.Error("report generation failed", "error", err)
		os.Exit(1)
	}

	outPath := filepath.Join(*outDir, result.Filename)
	if err := os.WriteFile(outPath, result.Data, 0o644); err != nil {
		logger.Error("cannot write report file", "error", err, "path", outPath)
		os.Exit(1)
	}

	logger.Info("report written", "path", outPath, "records", result.RecordCount, "sheet", result.SheetName)
}
