package physics

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

/*
note: only 1 writer is useful for sqlite since it allows one at a time.
journaling and synchronous writes are off; the store is a cache that can be
rebuilt by reintegrating, not a system of record.
*/

const trajectorySchema = `
CREATE TABLE IF NOT EXISTS trajectories (
	body 	TEXT,
	time 	REAL,
	x 		REAL,
	y 		REAL,
	z 		REAL,
	vx 		REAL,
	vy 		REAL,
	vz 		REAL);
`

const trajectoryIndices = `
CREATE INDEX IF NOT EXISTS idx_body_time ON trajectories (body, time);
`

const trajectoryInsert = `INSERT INTO trajectories VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
const trajectoryQuery = `SELECT time, x, y, z, vx, vy, vz FROM trajectories WHERE body = ? ORDER BY time ASC;`
const trajectoryBodies = `SELECT DISTINCT body FROM trajectories ORDER BY body ASC;`
const trajectoryDelete = `DELETE FROM trajectories WHERE body = ?;`

// TrajectoryStore persists trajectories in an sqlite database, one row per
// sample, keyed by body name.
type TrajectoryStore struct {
	db *sql.DB
}

// OpenTrajectoryStore opens or creates the database in filename.
func OpenTrajectoryStore(filename string) (*TrajectoryStore, error) {
	db, err := sql.Open("sqlite3", "file:"+filename+"?_journal_mode=OFF&_synchronous=OFF")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	if _, err := db.Exec(trajectorySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}
	if _, err := db.Exec(trajectoryIndices); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating indices: %w", err)
	}
	return &TrajectoryStore{db: db}, nil
}

// Close closes the underlying database.
func (s *TrajectoryStore) Close() error { return s.db.Close() }

// WriteTrajectory replaces the stored samples for the named body with the
// samples of tr, in one transaction.
func (s *TrajectoryStore) WriteTrajectory(name string, tr *Trajectory) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(trajectoryDelete, name); err != nil {
		tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare(trajectoryInsert)
	if err != nil {
		tx.Rollback()
		return err
	}
	for i := range tr.times {
		d := tr.states[i]
		_, err = stmt.Exec(name, tr.times[i],
			d.Position[0], d.Position[1], d.Position[2],
			d.Velocity[0], d.Velocity[1], d.Velocity[2])
		if err != nil {
			break
		}
	}
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ReadTrajectory loads the samples stored for the named body. A body with
// no samples yields ErrUnknownBody.
func (s *TrajectoryStore) ReadTrajectory(name string) (*Trajectory, error) {
	rows, err := s.db.Query(trajectoryQuery, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tr := NewTrajectory()
	for rows.Next() {
		var t float64
		var d DegreesOfFreedom
		err = rows.Scan(&t,
			&d.Position[0], &d.Position[1], &d.Position[2],
			&d.Velocity[0], &d.Velocity[1], &d.Velocity[2])
		if err != nil {
			return nil, err
		}
		if err := tr.Append(t, d); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if tr.Empty() {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownBody)
	}
	return tr, nil
}

// Bodies lists the names with stored samples.
func (s *TrajectoryStore) Bodies() ([]string, error) {
	rows, err := s.db.Query(trajectoryBodies)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// WriteEphemeris stores every trajectory of the ephemeris.
func (s *TrajectoryStore) WriteEphemeris(e *Ephemeris) error {
	for _, b := range e.Bodies() {
		tr, err := e.Trajectory(b)
		if err != nil {
			return err
		}
		if err := s.WriteTrajectory(b.Name, tr); err != nil {
			return err
		}
	}
	return nil
}
