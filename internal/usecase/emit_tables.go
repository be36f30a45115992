package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aalvaropc/recordemit/internal/domain"
	"github.com/aalvaropc/recordemit/internal/ports"
)

const (
	EmitterSales  = "sales"
	EmitterOrders = "orders"
)

var (
	salesHeader  = []string{"product", "quantity", "price", "revenue"}
	ordersHeader = []string{"order_id", "customer", "amount"}
)

// EmitSales adds a revenue column to every sale line and writes the table.
type EmitSales struct {
	base
	sink ports.TableSink
}

func NewEmitSales(sink ports.TableSink, report ports.Reporter, opts ...Option) *EmitSales {
	return &EmitSales{
		base: newBase(report, opts),
		sink: sink,
	}
}

func (uc *EmitSales) Execute(ctx context.Context, lines []domain.SaleLine, path string) (domain.EmitResult, error) {
	uc.begin(EmitterSales, len(lines), path)

	rows := mapRecords(lines, func(l domain.SaleLine) []string {
		return []string{
			l.Product,
			strconv.Itoa(l.Quantity),
			l.Price.String(),
			l.Revenue().String(),
		}
	})
	total := domain.TotalRevenue(lines)

	if err := uc.write(ctx, EmitterSales, path, func() error {
		return uc.sink.WriteTable(path, salesHeader, rows)
	}); err != nil {
		return domain.EmitResult{}, err
	}

	uc.report.Success(fmt.Sprintf("Total revenue: %s", formatUSD(total)))
	uc.report.Success(fmt.Sprintf("Output saved to %s", path))

	return domain.EmitResult{
		Emitter: EmitterSales,
		Records: len(lines),
		Path:    path,
		Total:   total,
	}, nil
}

// EmitOrders writes the order table and reports the order total.
type EmitOrders struct {
	base
	sink ports.TableSink
}

func NewEmitOrders(sink ports.TableSink, report ports.Reporter, opts ...Option) *EmitOrders {
	return &EmitOrders{
		base: newBase(report, opts),
		sink: sink,
	}
}

func (uc *EmitOrders) Execute(ctx context.Context, orders []domain.Order, path string) (domain.EmitResult, error) {
	uc.begin(EmitterOrders, len(orders), path)

	rows := mapRecords(orders, func(o domain.Order) []string {
		return []string{strconv.Itoa(o.ID), o.Customer, o.Amount.String()}
	})
	total := domain.TotalAmount(orders)

	if err := uc.write(ctx, EmitterOrders, path, func() error {
		return uc.sink.WriteTable(path, ordersHeader, rows)
	}); err != nil {
		return domain.EmitResult{}, err
	}

	uc.report.Success(fmt.Sprintf("Total orders: %s", formatUSD(total)))
	uc.report.Success(fmt.Sprintf("Output saved to %s", path))

	return domain.EmitResult{
		Emitter: EmitterOrders,
		Records: len(orders),
		Path:    path,
		Total:   total,
	}, nil
}
