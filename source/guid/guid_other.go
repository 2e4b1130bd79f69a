//go:build !windows

package guid

import "github.com/google/uuid"

// generateGUID builds the GUID fields from a random UUID where CoCreateGuid is not available
func generateGUID() (GUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return GUID{}, err
	}
	return FromBytes(id), nil
}
