package contract

type DocumentRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=160"`
	Description  string `json:"description" validate:"omitempty,max=2000"`
	FilePath     string `json:"file_path" validate:"required,max=1000"`
	FileType     string `json:"file_type" validate:"required,max=120"`
	FileSize     int64  `json:"file_size" validate:"required,min=1"`
	Category     string `json:"category" validate:"required,oneof=certificate return register correspondence misc"`
	ComplianceID *int64 `json:"compliance_id" validate:"omitempty"`
	IsRequired   bool   `json:"is_required"`
	ExpiryDate   string `json:"expiry_date" validate:"omitempty,datelayout"`
}

type UpdateDocumentRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=160"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	FilePath     *string `json:"file_path" validate:"omitempty,max=1000"`
	FileType     *string `json:"file_type" validate:"omitempty,max=120"`
	FileSize     *int64  `json:"file_size" validate:"omitempty,min=1"`
	Category     *string `json:"category" validate:"omitempty,oneof=certificate return register correspondence misc"`
	ComplianceID *int64  `json:"compliance_id" validate:"omitempty"`
	IsRequired   *bool   `json:"is_required" validate:"omitempty"`
	ExpiryDate   *string `json:"expiry_date" validate:"omitempty,datelayout"`
}

type DocumentResponse struct {
	ID           int64  `json:"id"`
	CompanyID    int64  `json:"company_id"`
	ComplianceID *int64 `json:"compliance_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	FilePath     string `json:"file_path"`
	FileType     string `json:"file_type"`
	FileSize     int64  `json:"file_size"`
	Category     string `json:"category"`
	IsRequired   bool   `json:"is_required"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	UploadedBy   int64  `json:"uploaded_by"`
	UploadedAt   string `json:"uploaded_at"`
}
