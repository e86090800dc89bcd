package store

import "fleet_manager/internal/models"

// Seed loads the demo data set: one login, eight drivers, ten vehicles
// assigned to drivers by position and a few orders.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credentials.append(models.Credential{
		ID:       s.newID(),
		Name:     "John",
		Surname:  "Smith",
		Email:    "john.smith@example.com",
		Password: "qwerty",
	})

	drivers := []models.DriverInput{
		{FirstName: "Piotr", LastName: "Nowak", PhoneNumber: "123456789", Email: "piotr.nowak@example.com", BirthDate: "1980-01-01", DrivingLicenseNumber: "AMJ876611"},
		{FirstName: "Ivan", LastName: "Kuznetsov", PhoneNumber: "987654321", Email: "ivan.kuznetsov@example.com", BirthDate: "1970-10-20", DrivingLicenseNumber: "EFGH67890"},
		{FirstName: "Marek", LastName: "Lewandowski", PhoneNumber: "555555555", Email: "marek.lewandowski@example.com", BirthDate: "1982-12-10", DrivingLicenseNumber: "IJKL24680"},
		{FirstName: "Michał", LastName: "Wójcik", PhoneNumber: "777777777", Email: "michal.wojcik@example.com", BirthDate: "1988-07-20", DrivingLicenseNumber: "MNOP13579"},
		{FirstName: "Mikhail", LastName: "Ivanov", PhoneNumber: "555555555", Email: "mikhail.ivanov@example.com", BirthDate: "1972-05-05", DrivingLicenseNumber: "IJKL24680"},
		{FirstName: "Łukasz", LastName: "Zieliński", PhoneNumber: "111111111", Email: "lukasz.zielinski@example.com", BirthDate: "1981-09-15", DrivingLicenseNumber: "UVWXYZ13579"},
		{FirstName: "Andriy", LastName: "Zhuk", PhoneNumber: "111111111", Email: "andriy.zhuk@example.com", BirthDate: "1974-02-05", DrivingLicenseNumber: "UVWXYZ13579"},
		{FirstName: "Marcin", LastName: "Jankowski", PhoneNumber: "333333333", Email: "marcin.jankowski@example.com", BirthDate: "1987-04-10", DrivingLicenseNumber: "BBBB22222"},
	}
	driverIDs := make([]string, 0, len(drivers))
	for _, in := range drivers {
		d := in.ToDriver(s.newID())
		s.drivers.append(d)
		driverIDs = append(driverIDs, d.ID)
	}
	driver := func(i int) *string {
		id := driverIDs[i]
		return &id
	}

	vehicles := []models.VehicleInput{
		{Brand: "Peugeot", Model: "Boxer", Year: 2022, RegistrationNumber: "ABC123", Type: models.VehicleTypeTruck, Status: models.VehicleStatusAvailable, DriverID: driver(1)},
		{Brand: "Fiat", Model: "Ducato", Year: 2021, RegistrationNumber: "DEF456", Type: models.VehicleTypeVan, Status: models.VehicleStatusInUse, DriverID: driver(3)},
		{Brand: "Ford", Model: "Transit", Year: 2020, RegistrationNumber: "GHI789", Type: models.VehicleTypeVan, Status: models.VehicleStatusAvailable, DriverID: driver(0)},
		{Brand: "Renault", Model: "Master", Year: 2023, RegistrationNumber: "JKL012", Type: models.VehicleTypeTruck, Status: models.VehicleStatusUnderMaintenance, DriverID: driver(2)},
		{Brand: "Mercedes-Benz", Model: "Sprinter", Year: 2019, RegistrationNumber: "MNO345", Type: models.VehicleTypeVan, Status: models.VehicleStatusAvailable},
		{Brand: "DAF", Model: "XF480 FT", Year: 2018, RegistrationNumber: "PQR678", Type: models.VehicleTypeTruck, Status: models.VehicleStatusAvailable},
		{Brand: "Scania", Model: "R450", Year: 2021, RegistrationNumber: "STU901", Type: models.VehicleTypeVan, Status: models.VehicleStatusAvailable, DriverID: driver(4)},
		{Brand: "MAN", Model: "TGX", Year: 2018, RegistrationNumber: "VWX234", Type: models.VehicleTypeTruck, Status: models.VehicleStatusInUse, DriverID: driver(6)},
		{Brand: "Renault", Model: "T480", Year: 2019, RegistrationNumber: "YZA567", Type: models.VehicleTypeVan, Status: models.VehicleStatusAvailable},
		{Brand: "Volvo", Model: "FH540", Year: 2022, RegistrationNumber: "BCD890", Type: models.VehicleTypeTruck, Status: models.VehicleStatusAvailable, DriverID: driver(5)},
	}
	vehicleIDs := make([]string, 0, len(vehicles))
	for _, in := range vehicles {
		v := in.ToVehicle(s.newID())
		s.vehicles.append(v)
		vehicleIDs = append(vehicleIDs, v.ID)
	}
	vehicle := func(i int) *string {
		id := vehicleIDs[i]
		return &id
	}

	orders := []models.OrderInput{
		{PickupLocation: "Warszawa", DeliveryLocation: "Kraków", CargoDescription: "Furniture", PickupTime: "2024-05-06T08:00:00Z", DeliveryTime: "2024-05-06T16:00:00Z", Status: models.OrderStatusDelivered, VehicleID: vehicle(0), DriverID: driver(1)},
		{PickupLocation: "Gdańsk", DeliveryLocation: "Poznań", CargoDescription: "Electronics", PickupTime: "2024-05-07T07:30:00Z", DeliveryTime: "2024-05-07T14:00:00Z", Status: models.OrderStatusInProgress, VehicleID: vehicle(1), DriverID: driver(3)},
		{PickupLocation: "Wrocław", DeliveryLocation: "Łódź", CargoDescription: "Building materials", PickupTime: "2024-05-08T06:00:00Z", DeliveryTime: "2024-05-08T12:00:00Z", Status: models.OrderStatusPending, VehicleID: vehicle(7), DriverID: driver(6)},
		{PickupLocation: "Lublin", DeliveryLocation: "Szczecin", CargoDescription: "Food products", PickupTime: "2024-05-09T05:00:00Z", DeliveryTime: "2024-05-09T18:00:00Z", Status: models.OrderStatusCancelled},
	}
	for _, in := range orders {
		s.orders.append(in.ToOrder(s.newID()))
	}
}
