package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/student-services/internal/studentsvc/models"
	"github.com/gocql/gocql"
)

// RowScanner is satisfied by *gocql.Iter.
type RowScanner interface {
	Scan(dest ...interface{}) bool
	Close() error
}

// CQLSession is the slice of *gocql.Session the columnar adapter runs on.
type CQLSession interface {
	Exec(ctx context.Context, stmt string, values ...interface{}) error
	ScanOne(ctx context.Context, stmt string, values []interface{}, dest ...interface{}) error
	Iter(ctx context.Context, stmt string, values ...interface{}) RowScanner
}

type gocqlSession struct {
	session *gocql.Session
}

func (g gocqlSession) Exec(ctx context.Context, stmt string, values ...interface{}) error {
	return g.session.Query(stmt, values...).WithContext(ctx).Exec()
}

func (g gocqlSession) ScanOne(ctx context.Context, stmt string, values []interface{}, dest ...interface{}) error {
	return g.session.Query(stmt, values...).WithContext(ctx).Scan(dest...)
}

func (g gocqlSession) Iter(ctx context.Context, stmt string, values ...interface{}) RowScanner {
	return g.session.Query(stmt, values...).WithContext(ctx).Iter()
}

type CassandraStore struct {
	session CQLSession // nil when the startup connect failed
	table   string
}

func NewCassandraStore(session *gocql.Session, table string) *CassandraStore {
	if session == nil {
		return &CassandraStore{table: table}
	}
	return NewCassandraStoreWithSession(gocqlSession{session: session}, table)
}

func NewCassandraStoreWithSession(session CQLSession, table string) *CassandraStore {
	return &CassandraStore{session: session, table: table}
}

func (s *CassandraStore) Name() string {
	return "Cassandra"
}

func (s *CassandraStore) Insert(ctx context.Context, student models.Student) error {
	if s.session == nil {
		return newError(KindConnection, "insert", ErrNotConnected)
	}

	query := fmt.Sprintf(`INSERT INTO %s (name, prn, department) VALUES (?, ?, ?)`, s.table)
	err := s.session.Exec(ctx, query, student.Name, student.PRN, student.Department)
	if err != nil {
		return classifyCassandra("insert", err)
	}

	return nil
}

func (s *CassandraStore) ReadAll(ctx context.Context) ([]models.Student, error) {
	if s.session == nil {
		return nil, newError(KindConnection, "read_all", ErrNotConnected)
	}

	query := fmt.Sprintf(`SELECT name, prn, department FROM %s`, s.table)
	iter := s.session.Iter(ctx, query)

	students := []models.Student{}
	var st models.Student
	for iter.Scan(&st.Name, &st.PRN, &st.Department) {
		students = append(students, st)
		st = models.Student{}
	}

	if err := iter.Close(); err != nil {
		return nil, classifyCassandra("read_all", err)
	}

	return students, nil
}

func (s *CassandraStore) ReadOne(ctx context.Context, prn string) (*models.Student, error) {
	if s.session == nil {
		return nil, newError(KindConnection, "read_one", ErrNotConnected)
	}

	query := fmt.Sprintf(`SELECT name, prn, department FROM %s WHERE prn = ?`, s.table)

	st := &models.Student{}
	err := s.session.ScanOne(ctx, query, []interface{}{prn}, &st.Name, &st.PRN, &st.Department)
	if err != nil {
		return nil, classifyCassandra("read_one", err)
	}

	return st, nil
}

// Update is an upsert in Cassandra, an absent prn is not reported.
func (s *CassandraStore) Update(ctx context.Context, prn string, update models.StudentUpdate) error {
	if s.session == nil {
		return newError(KindConnection, "update", ErrNotConnected)
	}

	query := fmt.Sprintf(`UPDATE %s SET name = ?, department = ? WHERE prn = ?`, s.table)
	err := s.session.Exec(ctx, query, update.Name, update.Department, prn)
	if err != nil {
		return classifyCassandra("update", err)
	}

	return nil
}

// Delete does not distinguish a removed row from an absent one.
func (s *CassandraStore) Delete(ctx context.Context, prn string) error {
	if s.session == nil {
		return newError(KindConnection, "delete", ErrNotConnected)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE prn = ?`, s.table)
	if err := s.session.Exec(ctx, query, prn); err != nil {
		return classifyCassandra("delete", err)
	}

	return nil
}

func classifyCassandra(op string, err error) *Error {
	if errors.Is(err, gocql.ErrNotFound) {
		return newError(KindNotFound, op, err)
	}

	var unavailable *gocql.RequestErrUnavailable
	switch {
	case errors.Is(err, gocql.ErrNoConnections),
		errors.Is(err, gocql.ErrNoConnectionsStarted),
		errors.Is(err, gocql.ErrSessionClosed),
		errors.Is(err, gocql.ErrNoHosts),
		errors.Is(err, gocql.ErrConnectionClosed),
		errors.Is(err, gocql.ErrTimeoutNoResponse),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &unavailable):
		return newError(KindConnection, op, err)
	}

	return newError(KindQuery, op, err)
}
