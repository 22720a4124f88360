package transend

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=api.go -destination=../mocks/mocktransend/api_mock.gen.go -package mocktransend

// List is a decoded JSON array.
type List = []any

// Object is a decoded JSON object.
type Object = map[string]any

// API is the Transend client handle, grouped by sub-resource.
// Reads return the decoded response body unchanged, so the value may be
// a List, an Object or a JSON scalar depending on what the API sent.
type API interface {
	Branch() BranchAPI
	Product() ProductAPI
	Account() AccountAPI
	Content() ContentAPI
	Core() CoreAPI
	Customer() CustomerAPI
	Vehicle() VehicleAPI
}

// BranchAPI provides branch lookups.
type BranchAPI interface {
	// GetAllBranches returns all branches, optionally filtered by active status.
	GetAllBranches(ctx context.Context, active *bool) (any, error)
	// GetBranchByNumber returns a branch by its number.
	GetBranchByNumber(ctx context.Context, branchNumber string) (any, error)
}

// ProductAPI provides product catalogue lookups.
type ProductAPI interface {
	GetAllSortTypes(ctx context.Context) (any, error)
	GetAllTags(ctx context.Context) (any, error)
	GetAvailabilityByItemID(ctx context.Context, itemID ID) (any, error)
	GetAvailableQuantity(ctx context.Context, itemID ID, branchNumber string, availabilityTypeID ID) (any, error)
	GetBrands(ctx context.Context, vhid, phid *string) (any, error)
	GetCategories(ctx context.Context, vhid, phid, searchID *string) (any, error)
}

// AccountAPI provides customer account operations,
// including the payment methods on file.
type AccountAPI interface {
	DeleteBankAccount(ctx context.Context, customerStripeID int64) error
	UpdateCreditCardDefault(ctx context.Context, creditCardGUID uuid.UUID) error
	DeleteCreditCard(ctx context.Context, creditCardGUID uuid.UUID) error
	GetActiveBankAccounts(ctx context.Context) (any, error)
	GetCreditCards(ctx context.Context) (any, error)
	// PostCreditCard adds a credit card and returns its GUID or the created record.
	PostCreditCard(ctx context.Context, cardData Object) (any, error)
	GetCustomerInfo(ctx context.Context) (any, error)
	GetVerifiedBankAccounts(ctx context.Context) (any, error)
	// PostBankAccount adds a bank account and returns its GUID or the created record.
	PostBankAccount(ctx context.Context, bankAccountData Object) (any, error)
	VerifyBankAccount(ctx context.Context, verificationData Object) (any, error)
}

// ContentAPI provides articles and their resources.
type ContentAPI interface {
	GetArticleResources(ctx context.Context, articleID int64) (any, error)
	GetArticles(ctx context.Context) (any, error)
}

// CoreAPI provides core returns.
type CoreAPI interface {
	GetOpenCores(ctx context.Context) (any, error)
}

// CustomerAPI provides customer users.
type CustomerAPI interface {
	GetUsers(ctx context.Context) (any, error)
}

// VehicleAPI provides vehicle lookups by VHID, VIN and year/make/model.
type VehicleAPI interface {
	GetAllDTCs(ctx context.Context) (any, error)
	GetDriveTypesByVHID(ctx context.Context, vhid string) (any, error)
	GetEnginesByVHID(ctx context.Context, vhid string) (any, error)
	GetMakesByVHID(ctx context.Context, vhid string) (any, error)
	GetModelsByVHID(ctx context.Context, vhid string) (any, error)
	GetSubmodelsByVHID(ctx context.Context, vhid string) (any, error)
	GetTransmissions(ctx context.Context, tagNumber, transmissionMfrCode *string) (any, error)
	GetVehicleByVHID(ctx context.Context, vhid string) (any, error)
	GetVehiclesByVIN(ctx context.Context, vin string) (any, error)
	GetYears(ctx context.Context, vhid *string) (any, error)
	GetYearMakeModelVHID(ctx context.Context, year int, makeName, model string) (any, error)
}
