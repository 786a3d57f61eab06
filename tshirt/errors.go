package tshirt

import (
	"errors"
	"fmt"
)

// ErrNegativeDeficit is returned when the previous soil storage exceeds
// the column capacity, an invariant no valid update can produce.
var ErrNegativeDeficit = errors.New("tshirt: negative soil moisture deficit")

// ErrStorageBounds is returned when a storage height sits outside its
// reservoir's bounds.
var ErrStorageBounds = errors.New("tshirt: storage outside reservoir bounds")

// ErrPartitionSplit is returned when the partitioning collaborator
// breaks its contract: a split that is negative or does not sum back to
// the input flux.
var ErrPartitionSplit = errors.New("tshirt: partition split does not conserve input")

// ErrNoCollaborator is returned when a required external collaborator
// (partitioner, runoff router or ET function) is missing.
var ErrNoCollaborator = errors.New("tshirt: missing external collaborator")

// MassBalanceError : the timestep completed but its post-hoc
// conservation check exceeded tolerance. The computed state and fluxes
// are returned alongside it so hosts can flag drift without halting a
// batch run.
type MassBalanceError struct {
	SoilResidual float64 // soil column residual [m]
	GWResidual   float64 // groundwater residual [m]
	Tol          float64 // tolerance applied [m]
}

func (e *MassBalanceError) Error() string {
	return fmt.Sprintf("tshirt: mass balance residuals (soil %g m, groundwater %g m) exceed %g m", e.SoilResidual, e.GWResidual, e.Tol)
}
