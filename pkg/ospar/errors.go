package ospar

import "fmt"

// UnknownRegionError indicates a region id not present in the COMP area
// table.
type UnknownRegionError struct {
	ID string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown OSPAR COMP area: %q", e.ID)
}
