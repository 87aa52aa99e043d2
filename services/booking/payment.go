package booking

import (
	"context"
	"fmt"
	"time"

	"frontdesk/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	onlinePaymentMessage = "Redirecting to online payment (simulated). Payment successful!"
	cashPaymentMessage   = "Please pay at the hotel during check-in."
)

type PaymentHandler interface {
	ProcessPayment(ctx context.Context, method models.PaymentMethod, amount decimal.Decimal) (models.PaymentReceipt, error)
}

// SimulatedPaymentHandler never moves money. Online payments are reported as
// paid straight away, cash stays pending until the guest arrives.
type SimulatedPaymentHandler struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewPaymentHandler(logger *zap.Logger) *SimulatedPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedPaymentHandler{logger: logger, now: time.Now}
}

func (h *SimulatedPaymentHandler) ProcessPayment(_ context.Context, method models.PaymentMethod, amount decimal.Decimal) (models.PaymentReceipt, error) {
	receipt := models.PaymentReceipt{
		ReceiptID: uuid.New().String(),
		Method:    method,
		Amount:    amount,
		CreatedAt: h.now(),
	}

	switch method {
	case models.PaymentOnline:
		receipt.Status = models.PaymentStatusPaid
		receipt.Message = onlinePaymentMessage
		h.logger.Info("Online payment simulated", zap.String("receipt", receipt.ReceiptID), zap.String("amount", amount.StringFixed(2)))
	case models.PaymentCash:
		receipt.Status = models.PaymentStatusPending
		receipt.Message = cashPaymentMessage
		h.logger.Info("Cash payment recorded", zap.String("receipt", receipt.ReceiptID), zap.String("amount", amount.StringFixed(2)))
	default:
		return models.PaymentReceipt{}, models.NewDomainError(models.CodeInvalidStay, fmt.Sprintf("Unsupported payment method %q.", method))
	}
	return receipt, nil
}

// PaymentMethodLabel is how the summary names a payment method.
func PaymentMethodLabel(method models.PaymentMethod) string {
	if method == models.PaymentOnline {
		return "Online Payment"
	}
	return "Cash at Hotel"
}
