package catalog

import (
	"context"
	"database/sql"

	"github.com/hpungsan/starmap/internal/errors"
	"github.com/hpungsan/starmap/internal/star"
)

// DefaultMaxDistance is the catalog cutoff in light years.
const DefaultMaxDistance = 35.0

const selectNearby = `
	SELECT x, y, z, iauname, altname, bf, gl, absmag, dist, spect
	FROM hyg
	WHERE dist < ?
	ORDER BY dist
`

const insertStar = `
	INSERT INTO hyg (x, y, z, iauname, altname, bf, gl, absmag, dist, spect)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Read returns every hyg row with dist strictly below maxDist, nearest first.
func Read(ctx context.Context, db *sql.DB, maxDist float64) ([]star.Record, error) {
	rows, err := db.QueryContext(ctx, selectNearby, maxDist)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewCancelled("catalog read")
		}
		return nil, errors.NewQuery(err)
	}
	defer rows.Close()

	var records []star.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, errors.NewData(len(records)+1, err)
		}
		records = append(records, *r)
	}
	if err := rows.Err(); err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewCancelled("catalog read")
		}
		return nil, errors.NewQuery(err)
	}

	return records, nil
}

// Seed inserts records into a catalog created by Create, in one transaction.
func Seed(ctx context.Context, db *sql.DB, records []star.Record) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.NewQuery(err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertStar)
	if err != nil {
		return 0, errors.NewQuery(err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		_, err := stmt.ExecContext(ctx,
			r.X, r.Y, r.Z,
			toNullString(r.IAUName), toNullString(r.AltName), toNullString(r.BF), toNullString(r.GL),
			toNullFloat(r.AbsMag), r.Dist, r.Spect,
		)
		if err != nil {
			return 0, errors.NewQuery(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.NewQuery(err)
	}
	return len(records), nil
}

// scanRecord scans one hyg row.
func scanRecord(rows *sql.Rows) (*star.Record, error) {
	var (
		r       star.Record
		iauname sql.NullString
		altname sql.NullString
		bf      sql.NullString
		gl      sql.NullString
		absmag  sql.NullFloat64
		spect   sql.NullString
	)

	err := rows.Scan(&r.X, &r.Y, &r.Z, &iauname, &altname, &bf, &gl, &absmag, &r.Dist, &spect)
	if err != nil {
		return nil, err
	}

	r.IAUName = fromNullString(iauname)
	r.AltName = fromNullString(altname)
	r.BF = fromNullString(bf)
	r.GL = fromNullString(gl)
	r.AbsMag = fromNullFloat(absmag)
	r.Spect = spect.String

	return &r, nil
}

// toNullString converts a *string to sql.NullString.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString converts a sql.NullString to *string.
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// toNullFloat converts a *float64 to sql.NullFloat64.
func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// fromNullFloat converts a sql.NullFloat64 to *float64.
func fromNullFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}
