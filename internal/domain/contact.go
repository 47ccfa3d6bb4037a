package domain

// Contact record for the party sending a shipment. All fields besides
// the name are optional.
type Sender struct {
	ID      int
	Name    string
	Company string
	Email   string
	Phone   string
}

// Contact record for the receiving party. Name and phone are required
// by the intake process; company and email may be empty.
type Recipient struct {
	ID      int
	Name    string
	Company string
	Email   string
	Phone   string
}
