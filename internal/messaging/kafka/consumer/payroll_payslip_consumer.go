package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-hrms/internal/events"
	"go-hrms/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollGenerated renders a payslip PDF for every generated record and
// drops it into artifactDir. Rendering is idempotent, so redelivery just
// rewrites the same file.
func ConsumePayrollGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	artifactDir string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started", zap.String("artifact_dir", artifactDir))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll payslip consumer stopped")
				return
			}
			log.Error("fetch payroll generated message failed", zap.Error(err))
			continue
		}

		var event events.PayrollGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		pdf, err := payrollService.RenderPayslip(ctx, event.PayrollID)
		if err != nil {
			log.Error("render payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		path := filepath.Join(artifactDir, fmt.Sprintf("payslip-%s.pdf", event.PayrollID))
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			log.Error("write payslip artifact failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll generated message failed", zap.Error(err))
			continue
		}

		log.Info("payslip rendered",
			zap.String("payroll_id", event.PayrollID),
			zap.String("path", path),
		)
	}
}
