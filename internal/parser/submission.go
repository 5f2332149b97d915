package parser

import "strings"

// YesNo holds a yes/no answer that may instead carry free text when the
// submitter typed something other than a clear y/n.
type YesNo struct {
	Known bool   `json:"known"`
	Value bool   `json:"value,omitempty"`
	Raw   string `json:"raw,omitempty"`
}

// ParseYesNo interprets y/yes and n/no case-insensitively; anything else is
// preserved verbatim.
func ParseYesNo(s string) YesNo {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return YesNo{Known: true, Value: true}
	case "n", "no":
		return YesNo{Known: true}
	case "":
		return YesNo{}
	}
	return YesNo{Raw: s}
}

// Present reports whether any answer, clear or not, was given.
func (y YesNo) Present() bool {
	return y.Known || y.Raw != ""
}

func (y YesNo) String() string {
	if !y.Known {
		return y.Raw
	}
	if y.Value {
		return "yes"
	}
	return "no"
}

// Submission is the typed result of parsing one listing message. String
// fields hold trimmed raw text; absent fields stay zero.
type Submission struct {
	WarehouseOwnerType  string `json:"warehouseOwnerType,omitempty"`
	WarehouseType       string `json:"warehouseType,omitempty"`
	Address             string `json:"address,omitempty"`
	GoogleLocation      string `json:"googleLocation,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	PostalCode          string `json:"postalCode,omitempty"`
	ContactPerson       string `json:"contactPerson,omitempty"`
	ContactNumber       string `json:"contactNumber,omitempty"`
	TotalSpaceSqft      []int  `json:"totalSpaceSqft,omitempty"`
	OfferedSpaceSqft    string `json:"offeredSpaceSqft,omitempty"`
	NumberOfDocks       string `json:"numberOfDocks,omitempty"`
	ClearHeightFt       string `json:"clearHeightFt,omitempty"`
	Compliances         string `json:"compliances,omitempty"`
	OtherSpecifications string `json:"otherSpecifications,omitempty"`
	RatePerSqft         string `json:"ratePerSqft,omitempty"`
	Availability        string `json:"availability,omitempty"`
	UploadedBy          string `json:"uploadedBy,omitempty"`
	IsBroker            string `json:"isBroker,omitempty"`
	Photos              string `json:"photos,omitempty"`
	MediaAvailable      string `json:"mediaAvailable,omitempty"`
	FireNocAvailable    YesNo  `json:"fireNocAvailable"`
	FireSafetyMeasures  string `json:"fireSafetyMeasures,omitempty"`
	LandType            string `json:"landType,omitempty"`
	VaastuCompliance    string `json:"vaastuCompliance,omitempty"`
	ApproachRoadWidth   string `json:"approachRoadWidth,omitempty"`
	Dimensions          string `json:"dimensions,omitempty"`
	ParkingDockingSpace string `json:"parkingDockingSpace,omitempty"`
	PollutionZone       string `json:"pollutionZone,omitempty"`
	PowerKva            string `json:"powerKva,omitempty"`
}

// MediaExpected reports whether the submitter declared media will follow.
func (s *Submission) MediaExpected() bool {
	switch strings.ToLower(strings.TrimSpace(s.MediaAvailable)) {
	case "y", "yes":
		return true
	}
	return false
}

// set applies the field's coercion and stores the value.
func (s *Submission) set(field Field, value string) {
	switch field {
	case FieldTotalSpaceSqft:
		s.TotalSpaceSqft = ParseSizes(value)
	case FieldFireNocAvailable:
		s.FireNocAvailable = ParseYesNo(value)
	case FieldWarehouseOwnerType:
		s.WarehouseOwnerType = value
	case FieldWarehouseType:
		s.WarehouseType = value
	case FieldAddress:
		s.Address = value
	case FieldGoogleLocation:
		s.GoogleLocation = value
	case FieldCity:
		s.City = value
	case FieldState:
		s.State = value
	case FieldPostalCode:
		s.PostalCode = value
	case FieldContactPerson:
		s.ContactPerson = value
	case FieldContactNumber:
		s.ContactNumber = value
	case FieldOfferedSpaceSqft:
		s.OfferedSpaceSqft = value
	case FieldNumberOfDocks:
		s.NumberOfDocks = value
	case FieldClearHeightFt:
		s.ClearHeightFt = value
	case FieldCompliances:
		s.Compliances = value
	case FieldOtherSpecifications:
		s.OtherSpecifications = value
	case FieldRatePerSqft:
		s.RatePerSqft = value
	case FieldAvailability:
		s.Availability = value
	case FieldUploadedBy:
		s.UploadedBy = value
	case FieldIsBroker:
		s.IsBroker = value
	case FieldPhotos:
		s.Photos = value
	case FieldMediaAvailable:
		s.MediaAvailable = value
	case FieldFireSafetyMeasures:
		s.FireSafetyMeasures = value
	case FieldLandType:
		s.LandType = value
	case FieldVaastuCompliance:
		s.VaastuCompliance = value
	case FieldApproachRoadWidth:
		s.ApproachRoadWidth = value
	case FieldDimensions:
		s.Dimensions = value
	case FieldParkingDockingSpace:
		s.ParkingDockingSpace = value
	case FieldPollutionZone:
		s.PollutionZone = value
	case FieldPowerKva:
		s.PowerKva = value
	}
}

// has reports whether the field carries a usable value after coercion.
func (s *Submission) has(field Field) bool {
	switch field {
	case FieldTotalSpaceSqft:
		return len(s.TotalSpaceSqft) > 0
	case FieldFireNocAvailable:
		return s.FireNocAvailable.Present()
	case FieldWarehouseOwnerType:
		return s.WarehouseOwnerType != ""
	case FieldWarehouseType:
		return s.WarehouseType != ""
	case FieldAddress:
		return s.Address != ""
	case FieldGoogleLocation:
		return s.GoogleLocation != ""
	case FieldCity:
		return s.City != ""
	case FieldState:
		return s.State != ""
	case FieldPostalCode:
		return s.PostalCode != ""
	case FieldContactPerson:
		return s.ContactPerson != ""
	case FieldContactNumber:
		return s.ContactNumber != ""
	case FieldOfferedSpaceSqft:
		return s.OfferedSpaceSqft != ""
	case FieldNumberOfDocks:
		return s.NumberOfDocks != ""
	case FieldClearHeightFt:
		return s.ClearHeightFt != ""
	case FieldCompliances:
		return s.Compliances != ""
	case FieldOtherSpecifications:
		return s.OtherSpecifications != ""
	case FieldRatePerSqft:
		return s.RatePerSqft != ""
	case FieldAvailability:
		return s.Availability != ""
	case FieldUploadedBy:
		return s.UploadedBy != ""
	case FieldIsBroker:
		return s.IsBroker != ""
	case FieldPhotos:
		return s.Photos != ""
	case FieldMediaAvailable:
		return s.MediaAvailable != ""
	case FieldFireSafetyMeasures:
		return s.FireSafetyMeasures != ""
	case FieldLandType:
		return s.LandType != ""
	case FieldVaastuCompliance:
		return s.VaastuCompliance != ""
	case FieldApproachRoadWidth:
		return s.ApproachRoadWidth != ""
	case FieldDimensions:
		return s.Dimensions != ""
	case FieldParkingDockingSpace:
		return s.ParkingDockingSpace != ""
	case FieldPollutionZone:
		return s.PollutionZone != ""
	case FieldPowerKva:
		return s.PowerKva != ""
	}
	return false
}
