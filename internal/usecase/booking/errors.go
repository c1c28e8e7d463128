package booking

import "github.com/tomasbaksys/Pet-Barbershop/internal/httperr"

func isConflict(err error) bool {
	return httperr.IsBusiness(err, "time_conflict")
}
