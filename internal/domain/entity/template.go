package entity

// Template is a reusable named packing list owned by a user.
type Template struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Name      string             `json:"name"`
	Content   PackingListContent `json:"content"`
	CreatedAt string             `json:"createdDate"`
	UpdatedAt string             `json:"updatedDate"`
}
