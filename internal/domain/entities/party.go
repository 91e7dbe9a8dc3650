package entities

// PartyRole identifies which side of a bond a party sits on.
type PartyRole string

const (
	PartyRolePolicyholder PartyRole = "policyholder"
	PartyRoleBeneficiary  PartyRole = "beneficiary"
)

func (r PartyRole) Valid() bool {
	return r == PartyRolePolicyholder || r == PartyRoleBeneficiary
}

// Party is a policyholder or beneficiary record shown on the bond certificate.
//
// Storage model (DynamoDB):
//   - PK: id
type Party struct {
	ID            string    `json:"id"`
	Role          PartyRole `json:"role"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	CompanyNumber string    `json:"company_number,omitempty"`
	Address       string    `json:"address,omitempty"`
}
