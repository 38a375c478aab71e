package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	paymenterrors "github.com/grehub24-dot/campusflow/internal/payment/errors"
	"github.com/grehub24-dot/campusflow/internal/shared/counter"
)

type Service interface {
	Create(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)
	GetAll(ctx context.Context) ([]PaymentResponse, error)
	GetByStudent(ctx context.Context, studentID string) ([]PaymentResponse, error)
}

type service struct {
	repo     Repository
	counters counter.Repository
}

func NewService(repo Repository, counters counter.Repository) Service {
	return &service{repo: repo, counters: counters}
}

func (s *service) Create(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return PaymentResponse{}, paymenterrors.ErrInvalidAmount
	}

	paidAt, err := time.Parse("2006-01-02", req.PaidAt)
	if err != nil {
		return PaymentResponse{}, paymenterrors.ErrInvalidPaidAt
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return PaymentResponse{}, paymenterrors.ErrUnknownStudent
	}

	exists, err := s.repo.StudentExists(ctx, req.StudentID)
	if err != nil {
		return PaymentResponse{}, err
	}
	if !exists {
		return PaymentResponse{}, paymenterrors.ErrUnknownStudent
	}

	items := make(PaymentItemList, 0, len(req.Items))
	for _, item := range req.Items {
		itemAmount, err := decimal.NewFromString(item.Amount)
		if err != nil || itemAmount.IsNegative() {
			return PaymentResponse{}, paymenterrors.ErrInvalidAmount
		}
		items = append(items, PaymentItem{Name: item.Name, Amount: itemAmount})
	}

	seq, err := s.counters.GetNextValue(ctx, "payment_receipt")
	if err != nil {
		return PaymentResponse{}, err
	}

	payment := &Payment{
		ID:            uuid.New(),
		ReceiptNumber: fmt.Sprintf("RCT-%06d", seq),
		StudentID:     studentID,
		Amount:        amount,
		PaidAt:        paidAt,
		AcademicYear:  req.AcademicYear,
		Session:       req.Session,
		Items:         items,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return PaymentResponse{}, err
	}

	return mapToResponse(*payment), nil
}

func (s *service) GetAll(ctx context.Context) ([]PaymentResponse, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payments), nil
}

func (s *service) GetByStudent(ctx context.Context, studentID string) ([]PaymentResponse, error) {
	payments, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(payments), nil
}

func mapToResponse(payment Payment) PaymentResponse {
	items := make([]PaymentItemResponse, len(payment.Items))
	for i, item := range payment.Items {
		items[i] = PaymentItemResponse{Name: item.Name, Amount: item.Amount.StringFixed(2)}
	}

	return PaymentResponse{
		ID:            payment.ID.String(),
		ReceiptNumber: payment.ReceiptNumber,
		StudentID:     payment.StudentID.String(),
		Amount:        payment.Amount.StringFixed(2),
		PaidAt:        payment.PaidAt.Format("2006-01-02"),
		AcademicYear:  payment.AcademicYear,
		Session:       payment.Session,
		Items:         items,
	}
}

func mapToListResponse(payments []Payment) []PaymentResponse {
	resp := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		resp[i] = mapToResponse(payment)
	}
	return resp
}
