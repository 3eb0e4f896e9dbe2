package card

// IssueCardRequest is the request body for issuing a new card.
type IssueCardRequest struct {
	AccountNumber string `json:"account_number" validate:"required,numeric,len=18"`
}
