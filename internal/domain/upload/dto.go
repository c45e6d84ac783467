package upload

type UploadForm struct {
	Type string `form:"type" validate:"oneof=before after"`
}

type UploadResponse struct {
	OK       bool   `json:"ok"`
	FilePath string `json:"filepath"`
}

type ListResponse struct {
	Uploads []Upload `json:"uploads"`
}
