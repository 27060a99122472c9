package app

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/cinema-desk/internal/console"
	"github.com/xenking/cinema-desk/internal/domain/hall"
	"github.com/xenking/cinema-desk/internal/seatmap"
)

// Run builds the hall, runs the interactive desk session over stdin/stdout,
// and writes the optional seat-map export. It is the single wiring point for
// the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Opening the box office",
		zap.Int("rows", cfg.Rows),
		zap.Int("seats_per_row", cfg.SeatsPerRow),
		zap.String("base_price", cfg.BasePrice))

	base, err := cfg.basePrice()
	if err != nil {
		return err
	}

	h, err := hall.New(cfg.Rows, cfg.SeatsPerRow)
	if err != nil {
		return errors.Wrap(err, "create hall")
	}

	meter := m.MeterProvider().Meter("box-office")
	reservations, err := meter.Int64Counter("boxoffice.reservations",
		metric.WithDescription("Seats reserved during desk sessions"))
	if err != nil {
		return errors.Wrap(err, "create reservations counter")
	}
	rejections, err := meter.Int64Counter("boxoffice.rejections",
		metric.WithDescription("Reservation attempts rejected during desk sessions"))
	if err != nil {
		return errors.Wrap(err, "create rejections counter")
	}

	desk := console.NewDesk(h, base, os.Stdin, os.Stdout)
	sum, err := desk.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "desk session")
	}

	reservations.Add(ctx, int64(sum.Reservations))
	rejections.Add(ctx, int64(sum.Rejections))

	if cfg.ExportPath != "" {
		if err := writeExport(cfg.ExportPath, h); err != nil {
			return err
		}
		lg.Info("Seat map exported", zap.String("path", cfg.ExportPath))
	}

	lg.Info("Session finished",
		zap.Int("reservations", sum.Reservations),
		zap.Int("rejections", sum.Rejections))

	return nil
}

func writeExport(path string, h *hall.Hall) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	if err := seatmap.Write(f, h); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close export file")
}
