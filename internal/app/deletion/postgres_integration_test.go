//go:build integration

package deletion_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/yigit/schooladmin/internal/app/deletion"
	"github.com/yigit/schooladmin/internal/db"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/testutil/containers"
)

const fixtureSQL = `
INSERT INTO institutions (id, name) VALUES (3, 'Escuela Benito Juárez'), (4, 'CAM 12'), (5, 'USAER Norte');
INSERT INTO staff (id, institution_id, full_name) VALUES (7, 4, 'María López'), (8, 4, 'Pedro Sánchez');
INSERT INTO groups (id, name, grade_id, teacher_id) VALUES (10, 'A', 1, 7), (11, 'B', 1, 7), (12, 'C', 1, NULL);
INSERT INTO students (id, institution_id, group_id, teacher_id, full_name) VALUES
	(42, 4, 12, 7, 'Carlos Ruiz'),
	(50, 3, 12, NULL, 'Ana Pérez'),
	(51, 3, NULL, NULL, 'Luis Gómez');
INSERT INTO student_disabilities (student_id, description) VALUES (42, 'Auditiva'), (42, 'Motriz'), (50, 'Visual');
INSERT INTO student_special_needs (student_id, description) VALUES (50, 'Lenguaje');
INSERT INTO specialist_attentions (student_id, specialist) VALUES (42, 'Psicología');
`

type PostgresDeletionSuite struct {
	suite.Suite
	pg         *containers.PostgresContainer
	dispatcher *deletion.Dispatcher
	ctx        context.Context
}

func TestPostgresDeletion(t *testing.T) {
	suite.Run(t, new(PostgresDeletionSuite))
}

func (s *PostgresDeletionSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.dispatcher = deletion.NewDispatcher(db.NewPostgresStore(s.pg.Pool), deletion.DefaultStrategies(), nil, zerolog.Nop())
}

func (s *PostgresDeletionSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(s.ctx))
	_, err := s.pg.Pool.Exec(s.ctx, fixtureSQL)
	s.Require().NoError(err)
}

func (s *PostgresDeletionSuite) count(query string, args ...any) int {
	var n int
	s.Require().NoError(s.pg.Pool.QueryRow(s.ctx, query, args...).Scan(&n))
	return n
}

func (s *PostgresDeletionSuite) TestStudentCascade() {
	res, err := s.dispatcher.Delete(s.ctx, deletion.KindStudent, 42)
	s.Require().NoError(err)
	s.Equal("cascade", res.Strategy)

	s.Zero(s.count(`SELECT count(*) FROM students WHERE id = 42`))
	s.Zero(s.count(`SELECT count(*) FROM student_disabilities WHERE student_id = 42`))
	s.Zero(s.count(`SELECT count(*) FROM specialist_attentions WHERE student_id = 42`))
	s.Equal(1, s.count(`SELECT count(*) FROM student_disabilities WHERE student_id = 50`))
}

func (s *PostgresDeletionSuite) TestStaffDetach() {
	_, err := s.dispatcher.Delete(s.ctx, deletion.KindStaff, 7)
	s.Require().NoError(err)

	s.Zero(s.count(`SELECT count(*) FROM staff WHERE id = 7`))
	s.Zero(s.count(`SELECT count(*) FROM groups WHERE teacher_id = 7`))
	s.Equal(3, s.count(`SELECT count(*) FROM groups`))
	s.Equal(3, s.count(`SELECT count(*) FROM students`))
	s.Zero(s.count(`SELECT count(*) FROM students WHERE teacher_id IS NOT NULL`))
}

func (s *PostgresDeletionSuite) TestInstitutionRejectListsBlockers() {
	_, err := s.dispatcher.Delete(s.ctx, deletion.KindInstitution, 3)

	var blocked *apperrors.DeletionBlockedError
	s.Require().ErrorAs(err, &blocked)
	s.ElementsMatch([]string{"Ana Pérez", "Luis Gómez"}, blocked.Labels)
	s.Equal(1, s.count(`SELECT count(*) FROM institutions WHERE id = 3`))
}

func (s *PostgresDeletionSuite) TestGroupRejectThenSucceed() {
	_, err := s.dispatcher.Delete(s.ctx, deletion.KindGroup, 12)
	s.ErrorIs(err, apperrors.ErrDeletionBlocked)

	_, err = s.pg.Pool.Exec(s.ctx, `UPDATE students SET group_id = 10 WHERE group_id = 12`)
	s.Require().NoError(err)

	_, err = s.dispatcher.Delete(s.ctx, deletion.KindGroup, 12)
	s.Require().NoError(err)
	s.Zero(s.count(`SELECT count(*) FROM groups WHERE id = 12`))
}

func (s *PostgresDeletionSuite) TestUnreferencedInstitution() {
	_, err := s.dispatcher.Delete(s.ctx, deletion.KindInstitution, 5)
	s.Require().NoError(err)

	_, err = s.dispatcher.Delete(s.ctx, deletion.KindInstitution, 5)
	s.ErrorIs(err, apperrors.ErrResourceNotFound)
}

func (s *PostgresDeletionSuite) TestMissingOwner() {
	for _, kind := range []deletion.EntityKind{deletion.KindStudent, deletion.KindStaff, deletion.KindInstitution, deletion.KindGroup} {
		_, err := s.dispatcher.Delete(s.ctx, kind, 999)
		s.ErrorIs(err, apperrors.ErrResourceNotFound, string(kind))
	}
}
