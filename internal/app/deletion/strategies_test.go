package deletion

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
)

func schoolFixture() *memStore {
	data := tables{
		"institutions": {
			{"id": int64(3), "name": "Escuela Benito Juárez"},
			{"id": int64(4), "name": "CAM 12"},
			{"id": int64(5), "name": "USAER Norte"},
		},
		"staff": {
			{"id": int64(7), "full_name": "María López", "institution_id": int64(4)},
			{"id": int64(8), "full_name": "Pedro Sánchez", "institution_id": int64(4)},
		},
		"groups": {
			{"id": int64(10), "name": "A", "teacher_id": int64(7)},
			{"id": int64(11), "name": "B", "teacher_id": int64(7)},
			{"id": int64(12), "name": "C", "teacher_id": nil},
		},
		"students": {
			{"id": int64(42), "full_name": "Carlos Ruiz", "institution_id": int64(4), "group_id": int64(12), "teacher_id": int64(7)},
			{"id": int64(50), "full_name": "Ana Pérez", "institution_id": int64(3), "group_id": int64(12), "teacher_id": nil},
			{"id": int64(51), "full_name": "Luis Gómez", "institution_id": int64(3), "group_id": nil, "teacher_id": nil},
		},
		"student_disabilities": {
			{"id": int64(1), "student_id": int64(42)},
			{"id": int64(2), "student_id": int64(42)},
			{"id": int64(3), "student_id": int64(50)},
		},
		"student_special_needs": {
			{"id": int64(1), "student_id": int64(50)},
		},
		"specialist_attentions": {
			{"id": int64(1), "student_id": int64(42)},
		},
	}

	fks := []foreignKey{
		{table: "student_disabilities", column: "student_id", parent: "students"},
		{table: "student_special_needs", column: "student_id", parent: "students"},
		{table: "specialist_attentions", column: "student_id", parent: "students"},
		{table: "students", column: "institution_id", parent: "institutions"},
		{table: "students", column: "group_id", parent: "groups"},
		{table: "students", column: "teacher_id", parent: "staff"},
		{table: "staff", column: "institution_id", parent: "institutions"},
		{table: "groups", column: "teacher_id", parent: "staff"},
	}

	return newMemStore(data, fks)
}

type StrategiesTestSuite struct {
	suite.Suite
	ctx        context.Context
	store      *memStore
	strategies map[EntityKind]Strategy
}

func (s *StrategiesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = schoolFixture()
	s.strategies = DefaultStrategies()
}

func (s *StrategiesTestSuite) delete(kind EntityKind, id int64) error {
	return s.strategies[kind].Delete(s.ctx, s.store, id)
}

func (s *StrategiesTestSuite) TestCascadeRemovesStudentAndOwnedRows() {
	err := s.delete(KindStudent, 42)

	s.Require().NoError(err)
	s.Nil(s.store.find("students", 42))
	s.Empty(s.store.where("student_disabilities", "student_id", int64(42)))
	s.Empty(s.store.where("specialist_attentions", "student_id", int64(42)))
	s.Len(s.store.where("student_disabilities", "student_id", int64(50)), 1)
	s.Len(s.store.where("student_special_needs", "student_id", int64(50)), 1)
	s.Equal(2, s.store.count("students"))
	s.Zero(s.store.openUnits)
}

func (s *StrategiesTestSuite) TestCascadeFailureLeavesNoNetChange() {
	diskFull := &dberrors.StoreFailure{Kind: apperrors.ErrStore, Err: errors.New("disk full")}
	s.store.failOn = func(sql string, _ []any) error {
		if strings.HasPrefix(sql, "DELETE FROM student_special_needs") {
			return diskFull
		}
		return nil
	}

	err := s.delete(KindStudent, 42)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrStore)
	s.NotNil(s.store.find("students", 42))
	s.Len(s.store.where("student_disabilities", "student_id", int64(42)), 2)
	s.Len(s.store.where("specialist_attentions", "student_id", int64(42)), 1)
	s.Zero(s.store.openUnits)
}

func (s *StrategiesTestSuite) TestCascadeStudentWithoutDependents() {
	err := s.delete(KindStudent, 51)

	s.Require().NoError(err)
	s.Nil(s.store.find("students", 51))
}

func (s *StrategiesTestSuite) TestDetachKeepsReferencingRows() {
	err := s.delete(KindStaff, 7)

	s.Require().NoError(err)
	s.Nil(s.store.find("staff", 7))

	groupA := s.store.find("groups", 10)
	groupB := s.store.find("groups", 11)
	s.Require().NotNil(groupA)
	s.Require().NotNil(groupB)
	s.Nil(groupA["teacher_id"])
	s.Nil(groupB["teacher_id"])
	s.Equal("A", groupA["name"])

	student := s.store.find("students", 42)
	s.Require().NotNil(student)
	s.Nil(student["teacher_id"])
	s.Equal(3, s.store.count("groups"))
	s.Zero(s.store.openUnits)
}

func (s *StrategiesTestSuite) TestDetachUnreferencedStaff() {
	err := s.delete(KindStaff, 8)

	s.Require().NoError(err)
	s.Nil(s.store.find("staff", 8))
	s.Equal(int64(7), s.store.find("groups", 10)["teacher_id"])
}

func (s *StrategiesTestSuite) TestRejectReportsBlockingStudents() {
	err := s.delete(KindInstitution, 3)

	var blocked *apperrors.DeletionBlockedError
	s.Require().ErrorAs(err, &blocked)
	s.ErrorIs(err, apperrors.ErrDeletionBlocked)
	s.Equal("institution", blocked.Entity)
	s.Equal(int64(3), blocked.ID)
	s.ElementsMatch([]string{"Ana Pérez", "Luis Gómez"}, blocked.Labels)
	s.NotNil(s.store.find("institutions", 3))
}

func (s *StrategiesTestSuite) TestRejectReportsEveryBlockingTable() {
	err := s.delete(KindInstitution, 4)

	var blocked *apperrors.DeletionBlockedError
	s.Require().ErrorAs(err, &blocked)
	s.ElementsMatch([]string{"Carlos Ruiz", "María López", "Pedro Sánchez"}, blocked.Labels)
}

func (s *StrategiesTestSuite) TestRejectDeletesUnreferencedOwner() {
	err := s.delete(KindInstitution, 5)

	s.Require().NoError(err)
	s.Nil(s.store.find("institutions", 5))
}

func (s *StrategiesTestSuite) TestRejectSecondDeleteIsNotFound() {
	s.Require().NoError(s.delete(KindInstitution, 5))

	err := s.delete(KindInstitution, 5)

	s.ErrorIs(err, apperrors.ErrResourceNotFound)
	s.Equal(OutcomeNotFound, OutcomeOf(err))
}

func (s *StrategiesTestSuite) TestRejectGroupWithStudents() {
	err := s.delete(KindGroup, 12)

	var blocked *apperrors.DeletionBlockedError
	s.Require().ErrorAs(err, &blocked)
	s.ElementsMatch([]string{"Ana Pérez", "Carlos Ruiz"}, blocked.Labels)
	s.NotNil(s.store.find("groups", 12))
}

func (s *StrategiesTestSuite) TestRejectEmptyGroup() {
	err := s.delete(KindGroup, 10)

	s.Require().NoError(err)
	s.Nil(s.store.find("groups", 10))
}

func (s *StrategiesTestSuite) TestRejectReferencesVanishedIsConflict() {
	s.store.failOn = func(sql string, _ []any) error {
		if strings.HasPrefix(sql, "DELETE FROM institutions") {
			return dberrors.NewForeignKeyViolation("students", "students_institution_id_fkey", nil)
		}
		return nil
	}

	err := s.delete(KindInstitution, 5)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.NotErrorIs(err, apperrors.ErrDeletionBlocked)
	s.Equal(OutcomeConflict, OutcomeOf(err))
}

func (s *StrategiesTestSuite) TestRejectBlockerLookupFailure() {
	s.store.failOn = func(sql string, _ []any) error {
		if strings.HasPrefix(sql, "SELECT") {
			return &dberrors.StoreFailure{Kind: apperrors.ErrConnectionUnavailable, Err: context.DeadlineExceeded}
		}
		return nil
	}

	err := s.delete(KindInstitution, 3)

	s.ErrorIs(err, apperrors.ErrConnectionUnavailable)
	s.NotErrorIs(err, apperrors.ErrDeletionBlocked)
}

func (s *StrategiesTestSuite) TestMissingOwnerIsNotFoundForEveryKind() {
	for kind := range s.strategies {
		s.Run(string(kind), func() {
			before := s.store.data.clone()

			err := s.delete(kind, 999)

			s.ErrorIs(err, apperrors.ErrResourceNotFound)
			s.Equal(before, s.store.data)
			s.Zero(s.store.openUnits)
		})
	}
}

func (s *StrategiesTestSuite) TestUnavailableStoreRollsBack() {
	s.store.failOn = func(sql string, _ []any) error {
		return &dberrors.StoreFailure{Kind: apperrors.ErrConnectionUnavailable, Err: context.DeadlineExceeded}
	}

	for _, kind := range []EntityKind{KindStudent, KindStaff} {
		err := s.delete(kind, 42)

		s.ErrorIs(err, apperrors.ErrConnectionUnavailable)
		s.Equal(OutcomeUnavailable, OutcomeOf(err))
		s.Zero(s.store.openUnits)
	}
	s.NotNil(s.store.find("students", 42))
}

func (s *StrategiesTestSuite) TestCancelledContextNeverStarts() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.strategies[KindStudent].Delete(ctx, s.store, 42)

	s.ErrorIs(err, context.Canceled)
	s.NotNil(s.store.find("students", 42))
	s.Zero(s.store.openUnits)
}

func TestStrategiesTestSuite(t *testing.T) {
	suite.Run(t, new(StrategiesTestSuite))
}

func TestStrategyStatements(t *testing.T) {
	store := schoolFixture()
	strategies := DefaultStrategies()

	require.NoError(t, strategies[KindStaff].Delete(context.Background(), store, 7))

	assert.Equal(t, []string{
		"UPDATE groups SET teacher_id = $1 WHERE teacher_id = $2",
		"UPDATE students SET teacher_id = $1 WHERE teacher_id = $2",
		"DELETE FROM staff WHERE id = $1",
	}, store.statements)
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil", nil, OutcomeDeleted},
		{"blocked", apperrors.NewDeletionBlockedError("group", 1, []string{"x"}), OutcomeBlocked},
		{"not found", apperrors.NewResourceNotFoundError("gone"), OutcomeNotFound},
		{"conflict", apperrors.NewConflictError("raced"), OutcomeConflict},
		{"constraint", dberrors.NewForeignKeyViolation("students", "fk", nil), OutcomeConflict},
		{"unavailable", &dberrors.StoreFailure{Kind: apperrors.ErrConnectionUnavailable}, OutcomeUnavailable},
		{"other", errors.New("boom"), OutcomeStoreError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomeOf(tt.err))
		})
	}
}
