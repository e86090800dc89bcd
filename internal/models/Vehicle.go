package models

const (
	VehicleTypeTruck = "truck"
	VehicleTypeVan   = "van"

	VehicleStatusAvailable        = "available"
	VehicleStatusInUse            = "inUse"
	VehicleStatusUnderMaintenance = "underMaintenance"
)

// VehicleTypes and VehicleStatuses keep declaration order; the dictionaries
// are built from them.
var (
	VehicleTypes = []EnumOption{
		{Value: VehicleTypeTruck, Label: "Truck"},
		{Value: VehicleTypeVan, Label: "Van"},
	}
	VehicleStatuses = []EnumOption{
		{Value: VehicleStatusAvailable, Label: "Available"},
		{Value: VehicleStatusInUse, Label: "In use"},
		{Value: VehicleStatusUnderMaintenance, Label: "Under Maintenance"},
	}
)

// Vehicle references its driver by id only. DriverID is nulled when the
// referenced driver is removed.
type Vehicle struct {
	ID                 string  `json:"id"`
	Brand              string  `json:"brand,omitempty"`
	Model              string  `json:"model,omitempty"`
	Year               int     `json:"year,omitempty"`
	RegistrationNumber string  `json:"registrationNumber,omitempty"`
	Type               string  `json:"type,omitempty"`
	Status             string  `json:"status,omitempty"`
	DriverID           *string `json:"driverId"`
}

func (v Vehicle) GetID() string { return v.ID }

func (v Vehicle) Fields() map[string]any {
	var driverID any
	if v.DriverID != nil {
		driverID = *v.DriverID
	}
	return map[string]any{
		"id":                 v.ID,
		"brand":              v.Brand,
		"model":              v.Model,
		"year":               v.Year,
		"registrationNumber": v.RegistrationNumber,
		"type":               v.Type,
		"status":             v.Status,
		"driverId":           driverID,
	}
}

type VehicleInput struct {
	Brand              string  `json:"brand" validate:"required"`
	Model              string  `json:"model" validate:"required"`
	Year               int     `json:"year" validate:"required,gte=1900,lte=2100"`
	RegistrationNumber string  `json:"registrationNumber" validate:"required"`
	Type               string  `json:"type" validate:"required,oneof=truck van"`
	Status             string  `json:"status" validate:"required,oneof=available inUse underMaintenance"`
	DriverID           *string `json:"driverId"`
}

func (in VehicleInput) ToVehicle(id string) Vehicle {
	return Vehicle{
		ID:                 id,
		Brand:              in.Brand,
		Model:              in.Model,
		Year:               in.Year,
		RegistrationNumber: in.RegistrationNumber,
		Type:               in.Type,
		Status:             in.Status,
		DriverID:           in.DriverID,
	}
}

type VehicleUpdateInput struct {
	Brand              string  `json:"brand"`
	Model              string  `json:"model"`
	Year               int     `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	RegistrationNumber string  `json:"registrationNumber"`
	Type               string  `json:"type" validate:"omitempty,oneof=truck van"`
	Status             string  `json:"status" validate:"omitempty,oneof=available inUse underMaintenance"`
	DriverID           *string `json:"driverId"`
}

func (in VehicleUpdateInput) ToVehicle(id string) Vehicle {
	return Vehicle{
		ID:                 id,
		Brand:              in.Brand,
		Model:              in.Model,
		Year:               in.Year,
		RegistrationNumber: in.RegistrationNumber,
		Type:               in.Type,
		Status:             in.Status,
		DriverID:           in.DriverID,
	}
}
