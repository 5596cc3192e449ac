package pg

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/pixcontrol/internal/domain"
)

// Classify maps driver errors onto the domain error taxonomy. Errors it does
// not recognise are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrStorageUnavailable) ||
		errors.Is(err, domain.ErrUnknownTenant) ||
		errors.Is(err, domain.ErrValidation) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrUnknownTenant, pgErr.ConstraintName)
		// значение не влезло в колонку или нарушило CHECK: повтор не поможет
		case pgerrcode.IsDataException(pgErr.Code),
			pgErr.Code == pgerrcode.CheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Message)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code):
			return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	var connectErr *pgconn.ConnectError
	switch {
	case errors.As(err, &connectErr),
		errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		pgconn.Timeout(err):
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return err
}
