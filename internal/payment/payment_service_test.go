package payment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/grehub24-dot/campusflow/internal/payment"
	paymenterrors "github.com/grehub24-dot/campusflow/internal/payment/errors"
)

type fakePaymentRepository struct {
	createFn        func(ctx context.Context, p *payment.Payment) error
	studentExistsFn func(ctx context.Context, studentID string) (bool, error)
}

func (f *fakePaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePaymentRepository) FindAll(ctx context.Context) ([]payment.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepository) FindByStudent(ctx context.Context, studentID string) ([]payment.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepository) FindByStudentAndPeriod(ctx context.Context, studentID, academicYear, session string) ([]payment.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepository) StudentExists(ctx context.Context, studentID string) (bool, error) {
	if f.studentExistsFn != nil {
		return f.studentExistsFn(ctx, studentID)
	}
	return true, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func createRequest(studentID string) payment.CreatePaymentRequest {
	return payment.CreatePaymentRequest{
		StudentID:    studentID,
		Amount:       "250.00",
		PaidAt:       "2026-01-15",
		AcademicYear: "2025-2026",
		Session:      "2nd Term",
		Items: []payment.PaymentItemRequest{
			{Name: "Tuition Later Terms", Amount: "250.00"},
		},
	}
}

func TestCreate_AllocatesSequentialReceiptNumbers(t *testing.T) {
	var created []payment.Payment
	repo := &fakePaymentRepository{
		createFn: func(ctx context.Context, p *payment.Payment) error {
			created = append(created, *p)
			return nil
		},
	}
	counters := &fakeCounterRepository{next: 41}

	service := payment.NewService(repo, counters)

	first, err := service.Create(context.Background(), createRequest(uuid.NewString()))
	assert.NoError(t, err)
	second, err := service.Create(context.Background(), createRequest(uuid.NewString()))
	assert.NoError(t, err)

	assert.Equal(t, "RCT-000042", first.ReceiptNumber)
	assert.Equal(t, "RCT-000043", second.ReceiptNumber)
	assert.Len(t, created, 2)
	assert.Equal(t, "Tuition Later Terms", created[0].Items[0].Name)
}

func TestCreate_ValidatesAmountAndDate(t *testing.T) {
	service := payment.NewService(&fakePaymentRepository{}, &fakeCounterRepository{})

	req := createRequest(uuid.NewString())
	req.Amount = "-10"
	_, err := service.Create(context.Background(), req)
	assert.ErrorIs(t, err, paymenterrors.ErrInvalidAmount)

	req = createRequest(uuid.NewString())
	req.Amount = "abc"
	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, paymenterrors.ErrInvalidAmount)

	req = createRequest(uuid.NewString())
	req.PaidAt = "15/01/2026"
	_, err = service.Create(context.Background(), req)
	assert.ErrorIs(t, err, paymenterrors.ErrInvalidPaidAt)
}

func TestCreate_RejectsUnknownStudent(t *testing.T) {
	repo := &fakePaymentRepository{
		studentExistsFn: func(ctx context.Context, studentID string) (bool, error) {
			return false, nil
		},
	}
	counters := &fakeCounterRepository{}

	service := payment.NewService(repo, counters)

	_, err := service.Create(context.Background(), createRequest(uuid.NewString()))
	assert.ErrorIs(t, err, paymenterrors.ErrUnknownStudent)

	// No receipt number is burned on a rejected payment.
	assert.Equal(t, int64(0), counters.next)
}

func TestCreate_RejectsMalformedStudentID(t *testing.T) {
	repo := &fakePaymentRepository{
		studentExistsFn: func(ctx context.Context, studentID string) (bool, error) {
			return true, nil
		},
	}
	counters := &fakeCounterRepository{}

	service := payment.NewService(repo, counters)

	_, err := service.Create(context.Background(), createRequest("not-a-uuid"))
	assert.ErrorIs(t, err, paymenterrors.ErrUnknownStudent)
	assert.Equal(t, int64(0), counters.next)
}
