package usecase

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/ports"
)

const EmitterNames = "names"

// EmitNames upper-cases every name and writes one per line.
type EmitNames struct {
	base
	sink  ports.LineSink
	upper cases.Caser
}

func NewEmitNames(sink ports.LineSink, report ports.Reporter, opts ...Option) *EmitNames {
	return &EmitNames{
		base:  newBase(report, opts),
		sink:  sink,
		upper: cases.Upper(language.Und),
	}
}

func (uc *EmitNames) Execute(ctx context.Context, records []domain.NameRecord, path string) (domain.EmitResult, error) {
	uc.begin(EmitterNames, len(records), path)

	lines := mapRecords(records, func(r domain.NameRecord) string {
		return uc.upper.String(r.Name)
	})

	if err := uc.write(ctx, EmitterNames, path, func() error {
		return uc.sink.WriteLines(path, lines)
	}); err != nil {
		return domain.EmitResult{}, err
	}

	uc.report.Success("Processing complete!")
	uc.report.Info(fmt.Sprintf("Output saved to %s", path))

	return domain.EmitResult{
		Emitter: EmitterNames,
		Records: len(records),
		Path:    path,
	}, nil
}
