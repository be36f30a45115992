package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/ports"
)

// base carries what every emitter shares: where progress goes and where logs go.
type base struct {
	report ports.Reporter
	log    *slog.Logger
}

type Option func(*base)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.log = l
		}
	}
}

func newBase(report ports.Reporter, opts []Option) base {
	b := base{
		report: report,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// begin reports the record count. It runs before any transform.
func (b base) begin(emitter string, n int, path string) {
	b.log.Info("emit.start", "emitter", emitter, "records", n, "path", path)
	b.report.Info(fmt.Sprintf("Processing %d records...", n))
}

// write runs the write step once the context is still live and logs its outcome.
func (b base) write(ctx context.Context, emitter, path string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		b.log.Warn("emit.canceled", "emitter", emitter, "err", err)
		return err
	}
	if err := fn(); err != nil {
		b.log.Error("emit.failed", "emitter", emitter, "path", path, "err", err)
		return err
	}
	b.log.Info("emit.written", "emitter", emitter, "path", path)
	return nil
}

// mapRecords applies fn to every record, keeping input order.
func mapRecords[I, O any](in []I, fn func(I) O) []O {
	out := make([]O, 0, len(in))
	for _, r := range in {
		out = append(out, fn(r))
	}
	return out
}

var usd = message.NewPrinter(language.English)

// formatUSD renders an amount as "$67,996.00".
func formatUSD(c domain.Cents) string {
	neg, whole, cents := c.Split()
	sign := "$"
	if neg {
		sign = "-$"
	}
	return sign + usd.Sprintf("%d", whole) + fmt.Sprintf(".%02d", cents)
}
