package domain

// AccountType distinguishes personal taxpayers from business entities.
type AccountType string

const (
	AccountPersonal AccountType = "personal"
	AccountBusiness AccountType = "business"
)

// Sector is the industry classification of a business tenant.
// SectorProfessionalServices is distinguished because it blocks the
// small-company CIT exemption regardless of turnover.
type Sector string

const (
	SectorGeneral              Sector = "general"
	SectorServices             Sector = "services"
	SectorRetail               Sector = "retail"
	SectorManufacturing        Sector = "manufacturing"
	SectorAgriculture          Sector = "agriculture"
	SectorProfessionalServices Sector = "professional_services"
	SectorGreenEnergy          Sector = "green_energy"
	SectorICT                  Sector = "ict"
)

// ParseSector maps a stored sector string to a Sector, falling back to
// SectorGeneral for unknown or empty values.
func ParseSector(s string) Sector {
	switch Sector(s) {
	case SectorServices, SectorRetail, SectorManufacturing, SectorAgriculture,
		SectorProfessionalServices, SectorGreenEnergy, SectorICT:
		return Sector(s)
	default:
		return SectorGeneral
	}
}

// BusinessStructure is the legal form of a business tenant.
type BusinessStructure string

const (
	StructureSoleProprietorship BusinessStructure = "sole_proprietorship"
	StructureLimitedCompany     BusinessStructure = "limited_company"
	StructureFreelancer         BusinessStructure = "freelancer"
)

// TransactionType separates ledger income from expenses.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// AssetClass determines the annual capital-allowance rate for a capital asset.
type AssetClass string

const (
	AssetNone      AssetClass = "none"
	AssetVehicle   AssetClass = "vehicle"
	AssetEquipment AssetClass = "equipment"
	AssetSoftware  AssetClass = "software"
	AssetBuilding  AssetClass = "building"
)

// ParseAssetClass maps a stored asset class string to an AssetClass,
// falling back to AssetNone.
func ParseAssetClass(s string) AssetClass {
	switch AssetClass(s) {
	case AssetVehicle, AssetEquipment, AssetSoftware, AssetBuilding:
		return AssetClass(s)
	default:
		return AssetNone
	}
}

// VatTreatment is the outcome of VAT classification.
type VatTreatment string

const (
	VatExempt    VatTreatment = "exempt"
	VatZeroRated VatTreatment = "zero_rated"
	VatStandard  VatTreatment = "standard"
)

// CliffStatus reports proximity to a tax threshold.
type CliffStatus string

const (
	CliffSafe    CliffStatus = "safe"
	CliffWarning CliffStatus = "warning"
	CliffCrossed CliffStatus = "crossed"
)

// ExpenseStatus is the derived review status of an expense.
type ExpenseStatus string

const (
	ExpenseApproved   ExpenseStatus = "Approved"
	ExpenseDisallowed ExpenseStatus = "Disallowed"
)

// FindingStatus tracks a relief finding through the compliance queue.
type FindingStatus string

const (
	FindingPending   FindingStatus = "pending"
	FindingApproved  FindingStatus = "approved"
	FindingDismissed FindingStatus = "dismissed"
)

// UserRole defines the role hierarchy within a tenant.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// FileType represents the allowed receipt file types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}
