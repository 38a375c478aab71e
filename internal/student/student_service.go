package student

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/grehub24-dot/campusflow/internal/events"
	"github.com/grehub24-dot/campusflow/internal/messaging/kafka"
	studenterrors "github.com/grehub24-dot/campusflow/internal/student/errors"
	"github.com/grehub24-dot/campusflow/internal/term"
)

// admissionMaxRetries bounds the optimistic retry loop so two hot admission
// desks cannot spin forever on serialization conflicts.
const admissionMaxRetries = 5

type Service interface {
	Admit(ctx context.Context, req AdmitStudentRequest) (StudentResponse, error)
	GetAll(ctx context.Context) ([]StudentResponse, error)
	GetByID(ctx context.Context, id string) (StudentResponse, error)
	Update(ctx context.Context, id string, req UpdateStudentRequest) (StudentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	prefix string
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, prefix string) Service {
	return &service{db: db, repo: repo, outbox: outbox, prefix: prefix}
}

// Admit allocates the next sequential admission number and creates the
// student inside one serializable transaction. The scan of existing numbers
// and the insert are validated together at commit, so two concurrent
// admissions can never both observe the same maximum. Conflicts roll back and
// retry up to admissionMaxRetries times.
func (s *service) Admit(ctx context.Context, req AdmitStudentRequest) (StudentResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return StudentResponse{}, studenterrors.ErrInvalidDateOfBirth
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return StudentResponse{}, studenterrors.ErrStudentNotFound
	}

	// The admission labels feed IsNewFor, which compares them against the
	// current term's labels verbatim. A label outside the term vocabulary
	// would make the student continuing forever.
	if !term.ValidAcademicYear(req.AcademicYear) {
		return StudentResponse{}, studenterrors.ErrInvalidAdmissionYear
	}
	if !term.ValidSessionLabel(req.Term) {
		return StudentResponse{}, studenterrors.ErrInvalidAdmissionTerm
	}

	log := zap.L().Named("student.admit")

	var lastErr error
	for attempt := 1; attempt <= admissionMaxRetries; attempt++ {
		resp, err := s.admitOnce(ctx, req, classID, dob)
		if err == nil {
			return resp, nil
		}
		if !isRetryableTxError(err) {
			return StudentResponse{}, mapRepositoryError(err)
		}

		lastErr = err
		log.Warn("admission allocation conflict, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}

	log.Error("admission retries exhausted", zap.Error(lastErr))
	return StudentResponse{}, studenterrors.ErrAdmissionContention
}

func (s *service) admitOnce(
	ctx context.Context,
	req AdmitStudentRequest,
	classID uuid.UUID,
	dob time.Time,
) (StudentResponse, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return StudentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	numbers, err := qtx.ListAdmissionNumbers(ctx, s.prefix)
	if err != nil {
		return StudentResponse{}, err
	}

	student := &Student{
		ID:              uuid.New(),
		AdmissionNumber: formatAdmissionNumber(s.prefix, nextSequence(numbers)),
		FullName:        strings.TrimSpace(req.FullName),
		ClassID:         classID,
		AdmissionYear:   req.AcademicYear,
		AdmissionTerm:   req.Term,
		DateOfBirth:     dob,
		GuardianName:    req.GuardianName,
		GuardianPhone:   req.GuardianPhone,
		Status:          StatusActive,
	}

	if err := qtx.Create(ctx, student); err != nil {
		return StudentResponse{}, err
	}

	event := events.StudentAdmittedEvent{
		EventType:       "student.admitted",
		StudentID:       student.ID.String(),
		AdmissionNumber: student.AdmissionNumber,
		ClassID:         student.ClassID.String(),
		AcademicYear:    student.AdmissionYear,
		Term:            student.AdmissionTerm,
		OccurredAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return StudentResponse{}, err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "student",
		AggregateID:   student.ID.String(),
		EventType:     event.EventType,
		Topic:         events.StudentAdmittedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return StudentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return StudentResponse{}, err
	}

	return mapToResponse(*student), nil
}

func (s *service) GetAll(ctx context.Context) ([]StudentResponse, error) {
	students, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]StudentResponse, len(students))
	for i, st := range students {
		resp[i] = mapToResponse(st)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*student), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStudentRequest) (StudentResponse, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return StudentResponse{}, studenterrors.ErrStudentNotFound
	}

	student.FullName = strings.TrimSpace(req.FullName)
	student.ClassID = classID
	student.GuardianName = req.GuardianName
	student.GuardianPhone = req.GuardianPhone
	student.Status = req.Status

	if err := s.repo.Update(ctx, student); err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*student), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return s.repo.Delete(ctx, id)
}

// isRetryableTxError matches postgres serialization failures, deadlocks and
// admission-number unique violations; all three mean "another admission won,
// rescan and try again".
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01":
			return true
		case "23505":
			return strings.Contains(pgErr.ConstraintName, "admission_number")
		}
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "could not serialize") ||
		(strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "admission_number"))
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return studenterrors.ErrStudentNotFound
	}
	return err
}

func mapToResponse(student Student) StudentResponse {
	return StudentResponse{
		ID:              student.ID.String(),
		AdmissionNumber: student.AdmissionNumber,
		FullName:        student.FullName,
		ClassID:         student.ClassID.String(),
		AdmissionYear:   student.AdmissionYear,
		AdmissionTerm:   student.AdmissionTerm,
		DateOfBirth:     student.DateOfBirth.Format("2006-01-02"),
		GuardianName:    student.GuardianName,
		GuardianPhone:   student.GuardianPhone,
		Status:          student.Status,
	}
}
