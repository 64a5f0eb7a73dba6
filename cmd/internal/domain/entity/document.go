package entity

type DocumentCategory string

const (
	DocCertificate    DocumentCategory = "certificate"
	DocReturn         DocumentCategory = "return"
	DocRegister       DocumentCategory = "register"
	DocCorrespondence DocumentCategory = "correspondence"
	DocMisc           DocumentCategory = "misc"
)

// Document holds file metadata only. FilePath is an opaque reference; no
// binary content ever crosses this application.
type Document struct {
	ID           int64            `gorm:"primaryKey"`
	CompanyID    int64            `gorm:"not null;index"`
	ComplianceID *int64           `gorm:"index"`
	Name         string           `gorm:"not null"`
	Description  string
	FilePath     string           `gorm:"not null"`
	FileType     string           `gorm:"not null"` // MIME type
	FileSize     int64            `gorm:"not null"`
	Category     DocumentCategory `gorm:"not null;default:misc"`
	IsRequired   bool             `gorm:"not null;default:false"`
	ExpiryDate   string
	UploadedByID int64            `gorm:"not null"`
	UploadedAt   int64            `gorm:"not null"`
}
