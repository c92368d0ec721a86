package postgres

import (
	"domainchecker/pkg/serrors"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	errDomainVanished = errors.New("domain vanished after insert")
	errTLDVanished    = errors.New("tld vanished after insert")
)

// wrapError annotates err with msg and maps constraint violations to
// serrors.ErrConflict so callers do not need to know about pg error codes.
func wrapError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation:
			return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
