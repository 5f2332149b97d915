package storage

import "time"

// Warehouse is the core listing row. TotalSpaceSqft is stored as a JSON array
// so the same column works on both supported drivers.
type Warehouse struct {
	ID                  int64
	WarehouseType       string
	Address             string
	GoogleLocation      string
	City                string
	State               string
	PostalCode          string
	Zone                string
	ContactPerson       string
	ContactNumber       string
	TotalSpaceSqft      []int
	OfferedSpaceSqft    string
	NumberOfDocks       string
	ClearHeightFt       string
	Compliances         string
	OtherSpecifications string
	RatePerSqft         string
	Availability        string
	UploadedBy          string
	IsBroker            string
	Photos              *string
	CreatedAt           time.Time
}

// WarehouseData holds the secondary attributes split off from the core row.
type WarehouseData struct {
	ID                  int64
	WarehouseID         int64
	WarehouseOwnerType  string
	FireNocAvailable    string
	FireSafetyMeasures  string
	LandType            string
	VaastuCompliance    string
	ApproachRoadWidth   string
	Dimensions          string
	ParkingDockingSpace string
	PollutionZone       string
	PowerKva            string
}

// MessageLog records one processing attempt for an inbound message.
type MessageLog struct {
	ID           int64
	SenderNumber string
	MessageBody  string
	Status       string
	ErrorMessage string
	MediaURL     string
	CreatedAt    time.Time
}

// VerifiedNumber is an allow-listed submitter.
type VerifiedNumber struct {
	Number    string
	Label     string
	CreatedAt time.Time
}
