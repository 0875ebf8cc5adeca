// Package pipeline orchestrates one full query-to-report cycle: validate,
// count, fetch, transform, pivot, reconcile, layout, serialize. Each stage
// consumes the complete output of the prior stage; nothing is shared between
// requests.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/logging"
	"cuifreport.sfcdata.org/internal/report"
)

// DatasetClient is the remote dataset surface the pipeline needs. Satisfied
// by *socrata.Client.
type DatasetClient interface {
	Count(ctx context.Context, criteria cuif.FilterCriteria) (int, error)
	FetchAll(ctx context.Context, criteria cuif.FilterCriteria) ([]cuif.RawRecord, error)
}

// Request is one report request. Template must already be loaded; the
// pipeline performs no file handling.
type Request struct {
	EntityType string
	From       time.Time
	To         time.Time
	Unit       string
	Template   []cuif.TemplateEntry
}

// Result is the finished report.
type Result struct {
	Filename    string
	SheetName   string
	Data        []byte
	RecordCount int
}

// Pipeline wires the dataset client, the constant catalogs and the
// serializer for repeated report runs. It holds no per-request state.
type Pipeline struct {
	client     DatasetClient
	catalog    *cuif.Catalog
	serializer report.Serializer
	logger     *slog.Logger
}

func New(client DatasetClient, catalog *cuif.Catalog, serializer report.Serializer, logger *slog.Logger) *Pipeline {
	if serializer == nil {
		serializer = report.ExcelSerializer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{client: client, catalog: catalog, serializer: serializer, logger: logger}
}

// Validate checks the request before any network call. It resolves the
// entity type and unit against the catalog so layout can never fail a lookup
// late in the run.
func (p *Pipeline) Validate(req Request) (cuif.EntityType, cuif.UnitScale, error) {
	entity, ok := p.catalog.EntityType(req.EntityType)
	if !ok {
		return cuif.EntityType{}, cuif.UnitScale{}, &cuif.ValidationError{
			Field:   "entityType",
			Message: "unknown entity type " + req.EntityType,
		}
	}
	unit, ok := p.catalog.Unit(req.Unit)
	if !ok {
		return cuif.EntityType{}, cuif.UnitScale{}, &cuif.ValidationError{
			Field:   "unit",
			Message: "unknown unit " + req.Unit,
		}
	}
	if req.From.After(req.To) {
		return cuif.EntityType{}, cuif.UnitScale{}, &cuif.ValidationError{
			Field:   "dateRange",
			Message: "from date is after to date",
		}
	}
	if len(req.Template) == 0 {
		return cuif.EntityType{}, cuif.UnitScale{}, &cuif.ValidationError{
			Field:   "template",
			Message: "account template is required",
		}
	}
	return entity, unit, nil
}

// Run executes the whole pipeline for one request.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	entity, unit, err := p.Validate(req)
	if err != nil {
		return nil, err
	}

	criteria := cuif.FilterCriteria{EntityType: req.EntityType, From: req.From, To: req.To}

	total, err := p.client.Count(ctx, criteria)
	if err != nil {
		return nil, err
	}
	logging.LogOperation(p.logger, "preflight count",
		slog.String("component", "pipeline"),
		slog.String("entity_type", req.EntityType),
		slog.Int("records", total))

	records, err := p.client.FetchAll(ctx, criteria)
	if err != nil {
		return nil, err
	}

	transformed := cuif.NewTransformer(p.catalog, unit).Apply(records)

	matrix, err := cuif.BuildMatrix(transformed)
	if err != nil {
		return nil, err
	}

	table, err := cuif.Reconcile(req.Template, matrix)
	if err != nil {
		return nil, err
	}

	layout := report.BuildLayout(table, report.Params{
		Entity:     entity,
		ReportDate: req.From,
		Unit:       unit,
	})

	data, err := p.serializer.Serialize(layout)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(p.logger, "report generated",
		slog.String("component", "pipeline"),
		slog.String("sheet", layout.SheetName),
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Columns)))

	return &Result{
		Filename:    report.Filename(entity, req.From),
		SheetName:   layout.SheetName,
		Data:        data,
		RecordCount: len(records),
	}, nil
}
