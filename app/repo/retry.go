package repo

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
)

// withRetry runs op and retries exactly once when the failure looks like a
// dropped connection. Anything else surfaces immediately.
func withRetry(op func() error) error {
	err := op()
	if transient(err) {
		err = op()
	}
	return err
}

func transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
