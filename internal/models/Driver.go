package models

// Driver is a fleet driver. Empty fields are omitted so that a driver
// replaced by a partial update no longer reports the dropped fields.
type Driver struct {
	ID                   string `json:"id"`
	FirstName            string `json:"firstName,omitempty"`
	LastName             string `json:"lastName,omitempty"`
	PhoneNumber          string `json:"phoneNumber,omitempty"`
	Email                string `json:"email,omitempty"`
	BirthDate            string `json:"birthDate,omitempty"`
	DrivingLicenseNumber string `json:"drivingLicenseNumber,omitempty"`
}

func (d Driver) GetID() string { return d.ID }

// FullName is used where an order export resolves its driver reference.
func (d Driver) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

func (d Driver) Fields() map[string]any {
	return map[string]any{
		"id":                   d.ID,
		"firstName":            d.FirstName,
		"lastName":             d.LastName,
		"phoneNumber":          d.PhoneNumber,
		"email":                d.Email,
		"birthDate":            d.BirthDate,
		"drivingLicenseNumber": d.DrivingLicenseNumber,
	}
}

// DriverInput is the payload accepted when a driver is added.
type DriverInput struct {
	FirstName            string `json:"firstName" validate:"required"`
	LastName             string `json:"lastName" validate:"required"`
	PhoneNumber          string `json:"phoneNumber" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	BirthDate            string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	DrivingLicenseNumber string `json:"drivingLicenseNumber" validate:"required"`
}

func (in DriverInput) ToDriver(id string) Driver {
	return Driver{
		ID:                   id,
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		PhoneNumber:          in.PhoneNumber,
		Email:                in.Email,
		BirthDate:            in.BirthDate,
		DrivingLicenseNumber: in.DrivingLicenseNumber,
	}
}

// DriverUpdateInput is the payload accepted when a driver is replaced.
// Every field is optional, but present fields must still be well formed.
type DriverUpdateInput struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	PhoneNumber          string `json:"phoneNumber"`
	Email                string `json:"email" validate:"omitempty,email"`
	BirthDate            string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	DrivingLicenseNumber string `json:"drivingLicenseNumber"`
}

func (in DriverUpdateInput) ToDriver(id string) Driver {
	return Driver{
		ID:                   id,
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		PhoneNumber:          in.PhoneNumber,
		Email:                in.Email,
		BirthDate:            in.BirthDate,
		DrivingLicenseNumber: in.DrivingLicenseNumber,
	}
}
