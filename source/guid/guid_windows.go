//go:build windows

package guid

import "golang.org/x/sys/windows"

// generateGUID calls CoCreateGuid
func generateGUID() (GUID, error) {
	id, err := windows.GenerateGUID()
	if err != nil {
		return GUID{}, err
	}
	return GUID{Data1: id.Data1, Data2: id.Data2, Data3: id.Data3, Data4: id.Data4}, nil
}
