package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/ports"
)

const EmitterPeople = "people"

// EmitPeople serializes the people as one structured document and reports their average age.
type EmitPeople struct {
	base
	sink ports.DocumentSink
}

func NewEmitPeople(sink ports.DocumentSink, report ports.Reporter, opts ...Option) *EmitPeople {
	return &EmitPeople{
		base: newBase(report, opts),
		sink: sink,
	}
}

func (uc *EmitPeople) Execute(ctx context.Context, people []domain.Person, path string) (domain.EmitResult, error) {
	uc.begin(EmitterPeople, len(people), path)

	// An empty set is still a document: "[]", never "null".
	doc := people
	if doc == nil {
		doc = []domain.Person{}
	}
	avg := domain.AverageAge(people)

	if err := uc.write(ctx, EmitterPeople, path, func() error {
		return uc.sink.WriteDocument(path, doc)
	}); err != nil {
		return domain.EmitResult{}, err
	}

	uc.report.Success(fmt.Sprintf("Processed %d records", len(people)))
	uc.report.Success(fmt.Sprintf("Average age: %.1f", avg))
	uc.report.Success(fmt.Sprintf("Output saved to %s", path))

	return domain.EmitResult{
		Emitter:    EmitterPeople,
		Records:    len(people),
		Path:       path,
		AverageAge: avg,
	}, nil
}
