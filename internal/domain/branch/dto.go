package branch

type BranchResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
}

func NewBranchResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:      b.ID,
		Name:    b.Name,
		Address: b.Address,
	}
}
