package tileclass

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlCreateTypes = `CREATE TABLE IF NOT EXISTS tile_types(
		signature INTEGER PRIMARY KEY,
		data TEXT NOT NULL
	    );`
	sqlGetTypes    = `SELECT signature,data FROM tile_types;`
	sqlUpdateTypes = `INSERT INTO tile_types (signature, data) VALUES (:signature, :data) ON CONFLICT (signature) DO UPDATE SET data=EXCLUDED.data;`
)

// OpenSQLStore given it's filename (database file) on disk.
// Will create if it doesn't exist.
func OpenSQLStore(fname string) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	s := &SQLStore{db: db}
	return s, s.init()
}

// SQLStore keeps the dictionary in a sqlite database, one row per
// signature. Tile types are encoded as JSON properties.
type SQLStore struct {
	db *sqlx.DB
}

// Close the underlying database
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Load all saved tile types. An empty table is reported as ErrNoDictionary.
func (s *SQLStore) Load() (*Dictionary, error) {
	saved, err := s.properties(s.db)
	if err != nil {
		return nil, err
	}
	if len(saved) == 0 {
		return nil, ErrNoDictionary
	}

	d := NewDictionary()
	for sig, props := range saved {
		d.Register(sig, tileTypeFromProperties(props))
	}
	return d, nil
}

// Save upserts every tile type in a single transaction.
// Each type is merged into the properties already stored for it's
// signature, so keys set on a row by other tools are kept.
func (s *SQLStore) Save(d *Dictionary) error {
	txn, err := s.db.Beginx()
	if err != nil {
		return err
	}

	existing, err := s.properties(txn)
	if err != nil {
		txn.Rollback()
		return err
	}

	for _, sig := range d.Signatures() {
		t, _ := d.Get(sig)

		props, ok := existing[sig]
		if !ok {
			props = NewProperties()
		}

		row, err := newDBType(sig, props.Merge(t.Properties()))
		if err != nil {
			txn.Rollback()
			return err
		}

		_, err = txn.NamedExec(sqlUpdateTypes, row)
		if err != nil {
			txn.Rollback()
			return err
		}
	}

	return txn.Commit()
}

// properties returns all saved rows decoded, by signature.
// Works both in & out of a transaction.
func (s *SQLStore) properties(q sqlx.Queryer) (map[int]*Properties, error) {
	rows, err := q.Queryx(sqlGetTypes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := map[int]*Properties{}
	r := dbType{}
	for rows.Next() {
		err = rows.StructScan(&r)
		if err != nil {
			return nil, err
		}

		props := NewProperties()
		err = json.Unmarshal([]byte(r.Data), props)
		if err != nil {
			return nil, fmt.Errorf("bad tile type data for signature %d: %w", r.Signature, err)
		}
		result[r.Signature] = props
	}

	return result, rows.Err()
}

// init creates our table if it doesn't exist
func (s *SQLStore) init() error {
	_, err := s.db.Exec(sqlCreateTypes)
	return err
}

// dbType encodes a single dictionary entry.
type dbType struct {
	Signature int    `db:"signature"`
	Data      string `db:"data"`
}

// newDBType crafts a dbType row, properties are encoded into JSON.
func newDBType(sig int, props *Properties) (dbType, error) {
	data, err := json.Marshal(props)
	if err != nil {
		return dbType{}, err
	}
	return dbType{Signature: sig, Data: string(data)}, nil
}
