package parser

// Field is the canonical name a matched label resolves to. The values mirror
// the column names of the persisted listing record.
type Field string

const (
	FieldWarehouseOwnerType  Field = "warehouseOwnerType"
	FieldWarehouseType       Field = "warehouseType"
	FieldAddress             Field = "address"
	FieldGoogleLocation      Field = "googleLocation"
	FieldCity                Field = "city"
	FieldState               Field = "state"
	FieldPostalCode          Field = "postalCode"
	FieldContactPerson       Field = "contactPerson"
	FieldContactNumber       Field = "contactNumber"
	FieldTotalSpaceSqft      Field = "totalSpaceSqft"
	FieldOfferedSpaceSqft    Field = "offeredSpaceSqft"
	FieldNumberOfDocks       Field = "numberOfDocks"
	FieldClearHeightFt       Field = "clearHeightFt"
	FieldCompliances         Field = "compliances"
	FieldOtherSpecifications Field = "otherSpecifications"
	FieldRatePerSqft         Field = "ratePerSqft"
	FieldAvailability        Field = "availability"
	FieldUploadedBy          Field = "uploadedBy"
	FieldIsBroker            Field = "isBroker"
	FieldPhotos              Field = "photos"
	FieldMediaAvailable      Field = "mediaAvailable"
	FieldFireNocAvailable    Field = "fireNocAvailable"
	FieldFireSafetyMeasures  Field = "fireSafetyMeasures"
	FieldLandType            Field = "landType"
	FieldVaastuCompliance    Field = "vaastuCompliance"
	FieldApproachRoadWidth   Field = "approachRoadWidth"
	FieldDimensions          Field = "dimensions"
	FieldParkingDockingSpace Field = "parkingDockingSpace"
	FieldPollutionZone       Field = "pollutionZone"
	FieldPowerKva            Field = "powerKva"
)

// Kind selects the coercion applied to a raw value.
type Kind int

const (
	KindString Kind = iota
	KindNumberList
	KindYesNo
)

// FieldSpec describes one alias label the matcher can resolve. A field may
// appear under several aliases; Required and Kind must then agree across them.
type FieldSpec struct {
	Field    Field
	Alias    string // lower-cased label scored against the incoming text
	Required bool
	Kind     Kind
}

var fieldSpecs = []FieldSpec{
	{FieldWarehouseOwnerType, "warehouse owner type", false, KindString},
	{FieldWarehouseType, "warehouse type", false, KindString},
	{FieldAddress, "address", true, KindString},
	{FieldGoogleLocation, "google location", false, KindString},
	{FieldCity, "city", true, KindString},
	{FieldState, "state", true, KindString},
	{FieldPostalCode, "postalcode", true, KindString},
	{FieldContactPerson, "contact person", true, KindString},
	{FieldContactNumber, "contact number", true, KindString},
	{FieldTotalSpaceSqft, "total space", true, KindNumberList},
	{FieldOfferedSpaceSqft, "offered space", false, KindString},
	{FieldNumberOfDocks, "number of docks", false, KindString},
	{FieldClearHeightFt, "clear height", false, KindString},
	{FieldCompliances, "compliances", true, KindString},
	{FieldOtherSpecifications, "other specifications", false, KindString},
	{FieldRatePerSqft, "rate per sqft", true, KindString},
	{FieldAvailability, "availability", false, KindString},
	{FieldUploadedBy, "uploaded by", true, KindString},
	{FieldIsBroker, "is broker (y/n)?", false, KindString},
	{FieldPhotos, "photos", false, KindString},
	{FieldMediaAvailable, "media available", false, KindString},
	{FieldFireNocAvailable, "fire noc availability", true, KindYesNo},
	{FieldFireNocAvailable, "fire noc available", true, KindYesNo},
	{FieldFireSafetyMeasures, "fire safety measures", true, KindString},
	{FieldLandType, "land type", false, KindString},
	{FieldVaastuCompliance, "vaastu compliance", false, KindString},
	{FieldApproachRoadWidth, "approach road width", false, KindString},
	{FieldDimensions, "dimensions", false, KindString},
	{FieldParkingDockingSpace, "parking/docking space", false, KindString},
	{FieldPollutionZone, "pollution zone", false, KindString},
	{FieldPowerKva, "power (in kva)", false, KindString},
}

// requiredFields lists required canonical fields in declaration order, each
// field once even when it has several aliases.
var requiredFields = func() []Field {
	seen := make(map[Field]bool)
	var out []Field
	for _, spec := range fieldSpecs {
		if !spec.Required || seen[spec.Field] {
			continue
		}
		seen[spec.Field] = true
		out = append(out, spec.Field)
	}
	return out
}()
