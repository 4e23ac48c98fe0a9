package payapi

// Shipment represents a shipment of one or more order lines.
type Shipment struct {
	Resource

	OrderID  string            `json:"orderId,omitempty"  yaml:"orderId,omitempty"`
	Lines    []OrderLine       `json:"lines,omitempty"    yaml:"lines,omitempty"`
	Tracking *ShipmentTracking `json:"tracking,omitempty" yaml:"tracking,omitempty"`
}

// ShipmentTracking represents carrier tracking information for a shipment.
type ShipmentTracking struct {
	Carrier string `json:"carrier"        yaml:"carrier"`
	Code    string `json:"code"           yaml:"code"`
	URL     string `json:"url,omitempty"  yaml:"url,omitempty"`
}

// ShipmentCreateRequest represents a request to ship order lines. An empty
// Lines slice ships all shippable lines of the order.
type ShipmentCreateRequest struct {
	Lines    []OrderLineReference `json:"lines"              yaml:"lines"`
	Tracking *ShipmentTracking    `json:"tracking,omitempty" yaml:"tracking,omitempty"`
}

// ShipmentUpdateRequest represents a request to update a shipment's tracking.
type ShipmentUpdateRequest struct {
	Tracking *ShipmentTracking `json:"tracking" yaml:"tracking"`
}
