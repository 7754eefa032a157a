package shipment

import "fmt"

var (
	ErrShipmentNotFound    = fmt.Errorf("shipment not found")
	ErrInvalidTracking     = fmt.Errorf("tracking number format is invalid")
	ErrInvalidStatus       = fmt.Errorf("unknown shipment status")
	ErrBackwardTransition  = fmt.Errorf("shipment status cannot move backward")
	ErrShipmentTerminal    = fmt.Errorf("shipment is in a terminal state")
)
