package models

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "inProgress"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var OrderStatuses = []EnumOption{
	{Value: OrderStatusPending, Label: "Pending"},
	{Value: OrderStatusInProgress, Label: "In progress"},
	{Value: OrderStatusDelivered, Label: "Delivered"},
	{Value: OrderStatusCancelled, Label: "Cancelled"},
}

// Order references a vehicle and a driver by id. The references are only
// read at export time and are never repaired.
type Order struct {
	ID               string  `json:"id"`
	PickupLocation   string  `json:"pickupLocation,omitempty"`
	DeliveryLocation string  `json:"deliveryLocation,omitempty"`
	CargoDescription string  `json:"cargoDescription,omitempty"`
	PickupTime       string  `json:"pickupTime,omitempty"`
	DeliveryTime     string  `json:"deliveryTime,omitempty"`
	Status           string  `json:"status,omitempty"`
	VehicleID        *string `json:"vehicleId"`
	DriverID         *string `json:"driverId"`
}

func (o Order) GetID() string { return o.ID }

func (o Order) Fields() map[string]any {
	return map[string]any{
		"id":               o.ID,
		"pickupLocation":   o.PickupLocation,
		"deliveryLocation": o.DeliveryLocation,
		"cargoDescription": o.CargoDescription,
		"pickupTime":       o.PickupTime,
		"deliveryTime":     o.DeliveryTime,
		"status":           o.Status,
		"vehicleId":        deref(o.VehicleID),
		"driverId":         deref(o.DriverID),
	}
}

type OrderInput struct {
	PickupLocation   string  `json:"pickupLocation" validate:"required"`
	DeliveryLocation string  `json:"deliveryLocation" validate:"required"`
	CargoDescription string  `json:"cargoDescription" validate:"required"`
	PickupTime       string  `json:"pickupTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DeliveryTime     string  `json:"deliveryTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status           string  `json:"status" validate:"required,oneof=pending inProgress delivered cancelled"`
	VehicleID        *string `json:"vehicleId"`
	DriverID         *string `json:"driverId"`
}

func (in OrderInput) ToOrder(id string) Order {
	return Order{
		ID:               id,
		PickupLocation:   in.PickupLocation,
		DeliveryLocation: in.DeliveryLocation,
		CargoDescription: in.CargoDescription,
		PickupTime:       in.PickupTime,
		DeliveryTime:     in.DeliveryTime,
		Status:           in.Status,
		VehicleID:        in.VehicleID,
		DriverID:         in.DriverID,
	}
}

type OrderUpdateInput struct {
	PickupLocation   string  `json:"pickupLocation"`
	DeliveryLocation string  `json:"deliveryLocation"`
	CargoDescription string  `json:"cargoDescription"`
	PickupTime       string  `json:"pickupTime" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DeliveryTime     string  `json:"deliveryTime" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status           string  `json:"status" validate:"omitempty,oneof=pending inProgress delivered cancelled"`
	VehicleID        *string `json:"vehicleId"`
	DriverID         *string `json:"driverId"`
}

func (in OrderUpdateInput) ToOrder(id string) Order {
	return Order{
		ID:               id,
		PickupLocation:   in.PickupLocation,
		DeliveryLocation: in.DeliveryLocation,
		CargoDescription: in.CargoDescription,
		PickupTime:       in.PickupTime,
		DeliveryTime:     in.DeliveryTime,
		Status:           in.Status,
		VehicleID:        in.VehicleID,
		DriverID:         in.DriverID,
	}
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
