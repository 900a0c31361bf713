package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind carries the Cobra command metadata a controller exposes.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is the contract every CLI-facing controller fulfills.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}
