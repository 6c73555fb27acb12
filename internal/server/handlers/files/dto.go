package files

// FileResponse is one entry of a pending or committed file list.
type FileResponse struct {
	Path     string `json:"path"`
	Status   string `json:"status"`
	Kind     string `json:"kind"`
	DiffLink string `json:"diff_link,omitempty"`
}

// DiffQuery selects the file to diff against HEAD.
type DiffQuery struct {
	File string `query:"file" validate:"required,max=4096"`
}

// DiffResponse represents the diff of one file.
type DiffResponse struct {
	File  string   `json:"file"`
	Lines []string `json:"lines"`
}
