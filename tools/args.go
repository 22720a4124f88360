package tools

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/transend-mcp/transend"
	"github.com/google/uuid"
)

// Arguments of the catalogue tools.
// A field without omitempty is required, optional fields are pointers
// and stay nil when the caller omits them.
// Required strings are rejected when empty, their schema says so.

type noArgs struct{}

type branchesArgs struct {
	Active *bool `json:"active,omitempty" jsonschema:"description=Filter by active status. Omit to return all branches."`
}

type branchNumberArgs struct {
	BranchNumber string `json:"branch_number" validate:"required" jsonschema:"description=The branch number. Must not be empty.,minLength=1"`
}

type itemArgs struct {
	ItemID transend.ID `json:"item_id" validate:"required" jsonschema:"description=The item ID"`
}

type quantityArgs struct {
	ItemID             transend.ID `json:"item_id" validate:"required" jsonschema:"description=The item ID"`
	BranchNumber       string      `json:"branch_number" validate:"required" jsonschema:"description=The branch number. Must not be empty.,minLength=1"`
	AvailabilityTypeID transend.ID `json:"availability_type_id" validate:"required" jsonschema:"description=The availability type ID"`
}

type brandsArgs struct {
	VHID *string `json:"vhid,omitempty" jsonschema:"description=Vehicle hierarchy ID"`
	PHID *string `json:"phid,omitempty" jsonschema:"description=Product hierarchy ID"`
}

type categoriesArgs struct {
	VHID     *string `json:"vhid,omitempty" jsonschema:"description=Vehicle hierarchy ID"`
	PHID     *string `json:"phid,omitempty" jsonschema:"description=Product hierarchy ID"`
	SearchID *string `json:"search_id,omitempty" jsonschema:"description=Search ID"`
}

type bankAccountArgs struct {
	CustomerStripeID *int64 `json:"customer_stripe_id" validate:"required" jsonschema:"description=The customer Stripe ID of the bank account"`
}

type creditCardArgs struct {
	CreditCardGUID *string `json:"credit_card_guid" validate:"required" jsonschema:"description=The credit card GUID"`
}

// GUID parses the credit card identifier
func (a *creditCardArgs) GUID() (uuid.UUID, error) {
	if a.CreditCardGUID == nil {
		return uuid.Nil, errors.New("credit_card_guid is not provided")
	}
	return uuid.Parse(*a.CreditCardGUID)
}

type cardDataArgs struct {
	CardData transend.Object `json:"card_data" validate:"required" jsonschema:"description=The credit card data"`
}

type bankAccountDataArgs struct {
	BankAccountData transend.Object `json:"bank_account_data" validate:"required" jsonschema:"description=The bank account data"`
}

type verificationArgs struct {
	VerificationData transend.Object `json:"verification_data" validate:"required" jsonschema:"description=Bank account verification data"`
}

type articleArgs struct {
	ArticleID *int64 `json:"article_id" validate:"required" jsonschema:"description=The article ID"`
}

type vhidArgs struct {
	VHID string `json:"vhid" validate:"required" jsonschema:"description=Vehicle hierarchy ID. Must not be empty.,minLength=1"`
}

type optionalVHIDArgs struct {
	VHID *string `json:"vhid,omitempty" jsonschema:"description=Vehicle hierarchy ID"`
}

type transmissionsArgs struct {
	TagNumber           *string `json:"tag_number,omitempty" jsonschema:"description=Transmission tag number"`
	TransmissionMfrCode *string `json:"transmission_mfr_code,omitempty" jsonschema:"description=Transmission manufacturer code"`
}

type vinArgs struct {
	VIN string `json:"vin" validate:"required" jsonschema:"description=Vehicle identification number. Must not be empty.,minLength=1"`
}

type yearMakeModelArgs struct {
	Year  *int   `json:"year" validate:"required" jsonschema:"description=Model year"`
	Make  string `json:"make" validate:"required" jsonschema:"description=Vehicle make. Must not be empty.,minLength=1"`
	Model string `json:"model" validate:"required" jsonschema:"description=Vehicle model. Must not be empty.,minLength=1"`
}
