package tools

import (
	"context"

	"github.com/effective-security/transend-mcp/transend"
)

// Domains of the catalogue, one per API sub-resource
const (
	DomainBranch   = "branch"
	DomainProduct  = "product"
	DomainAccount  = "account"
	DomainContent  = "content"
	DomainCore     = "core"
	DomainCustomer = "customer"
	DomainVehicle  = "vehicle"
)

// catalogue returns the bindings of all tools
func catalogue() []*tool {
	return []*tool{
		// Branch
		query(DomainBranch, "get_all_branches",
			"Get all branches from the Transend API, optionally filtered by active status.",
			func(ctx context.Context, api transend.API, in *branchesArgs) (any, error) {
				return api.Branch().GetAllBranches(ctx, in.Active)
			}),
		query(DomainBranch, "get_branch_by_number",
			"Get a specific branch by its number from the Transend API.",
			func(ctx context.Context, api transend.API, in *branchNumberArgs) (any, error) {
				return api.Branch().GetBranchByNumber(ctx, in.BranchNumber)
			}),

		// Product
		query(DomainProduct, "get_all_sort_types",
			"Get all product sort types from the Transend API.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Product().GetAllSortTypes(ctx)
			}),
		query(DomainProduct, "get_all_tags",
			"Get all product tags from the Transend API.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Product().GetAllTags(ctx)
			}),
		query(DomainProduct, "get_availability_by_item_id",
			"Get availability of an item across branches.",
			func(ctx context.Context, api transend.API, in *itemArgs) (any, error) {
				return api.Product().GetAvailabilityByItemID(ctx, in.ItemID)
			}),
		query(DomainProduct, "get_available_quantity",
			"Get available quantity of an item at a branch for the availability type.",
			func(ctx context.Context, api transend.API, in *quantityArgs) (any, error) {
				return api.Product().GetAvailableQuantity(ctx, in.ItemID, in.BranchNumber, in.AvailabilityTypeID)
			}),
		query(DomainProduct, "get_brands",
			"Get brands, optionally filtered by vehicle or product hierarchy.",
			func(ctx context.Context, api transend.API, in *brandsArgs) (any, error) {
				return api.Product().GetBrands(ctx, in.VHID, in.PHID)
			}),
		query(DomainProduct, "get_categories",
			"Get product categories, optionally filtered by vehicle, product hierarchy or search.",
			func(ctx context.Context, api transend.API, in *categoriesArgs) (any, error) {
				return api.Product().GetCategories(ctx, in.VHID, in.PHID, in.SearchID)
			}),

		// Account
		command(DomainAccount, "delete_bank_account",
			"Delete a bank account of the customer.",
			func(ctx context.Context, api transend.API, in *bankAccountArgs) error {
				return api.Account().DeleteBankAccount(ctx, *in.CustomerStripeID)
			}).mutates(true),
		command(DomainAccount, "update_credit_card_default",
			"Set the credit card as the default payment method.",
			func(ctx context.Context, api transend.API, in *creditCardArgs) error {
				guid, err := in.GUID()
				if err != nil {
					return err
				}
				return api.Account().UpdateCreditCardDefault(ctx, guid)
			}),
		command(DomainAccount, "delete_credit_card",
			"Delete a credit card of the customer.",
			func(ctx context.Context, api transend.API, in *creditCardArgs) error {
				guid, err := in.GUID()
				if err != nil {
					return err
				}
				return api.Account().DeleteCreditCard(ctx, guid)
			}).mutates(true),
		query(DomainAccount, "get_active_bank_accounts",
			"Get active bank accounts of the customer.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Account().GetActiveBankAccounts(ctx)
			}),
		query(DomainAccount, "get_credit_cards",
			"Get credit cards of the customer.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Account().GetCreditCards(ctx)
			}),
		query(DomainAccount, "post_credit_card",
			"Add a credit card. Returns the credit card GUID.",
			func(ctx context.Context, api transend.API, in *cardDataArgs) (any, error) {
				return api.Account().PostCreditCard(ctx, in.CardData)
			}).mutates(false),
		query(DomainAccount, "get_customer_info",
			"Get customer information.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Account().GetCustomerInfo(ctx)
			}),
		query(DomainAccount, "get_verified_bank_accounts",
			"Get verified bank accounts of the customer.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Account().GetVerifiedBankAccounts(ctx)
			}),
		query(DomainAccount, "post_bank_account",
			"Add a bank account. Returns the bank account GUID.",
			func(ctx context.Context, api transend.API, in *bankAccountDataArgs) (any, error) {
				return api.Account().PostBankAccount(ctx, in.BankAccountData)
			}).mutates(false),
		query(DomainAccount, "verify_bank_account",
			"Verify a bank account. Returns the verification result.",
			func(ctx context.Context, api transend.API, in *verificationArgs) (any, error) {
				return api.Account().VerifyBankAccount(ctx, in.VerificationData)
			}).mutates(false),

		// Content
		query(DomainContent, "get_article_resources",
			"Get resources of the article.",
			func(ctx context.Context, api transend.API, in *articleArgs) (any, error) {
				return api.Content().GetArticleResources(ctx, *in.ArticleID)
			}),
		query(DomainContent, "get_articles",
			"Get articles.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Content().GetArticles(ctx)
			}),

		// Core
		query(DomainCore, "get_open_cores",
			"Get open cores of the customer.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Core().GetOpenCores(ctx)
			}),

		// Customer
		query(DomainCustomer, "get_users",
			"Get users of the customer.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Customer().GetUsers(ctx)
			}),

		// Vehicle
		query(DomainVehicle, "get_all_dtcs",
			"Get all Diagnostic Trouble Codes.",
			func(ctx context.Context, api transend.API, _ *noArgs) (any, error) {
				return api.Vehicle().GetAllDTCs(ctx)
			}),
		query(DomainVehicle, "get_drive_types_by_vhid",
			"Get drive types of the vehicle by VHID.",
			func(ctx context.Context, api transend.API, in *vhidArgs) (any, error) {
				return api.Vehicle().GetDriveTypesByVHID(ctx, in.VHID)
			}),
		query(DomainVehicle, "get_engines_by_vhid",
			"Get engines of the vehicle by VHID.",
			func(ctx context.Context, api transend.API, in *vhidArgs) (any, error) {
				return api.Vehicle().GetEnginesByVHID(ctx, in.VHID)
			}),
		query(DomainVehicle, "get_makes_by_vhid",
			"Get makes of the vehicle by VHID.",
			func(ctx context.Context, api transend.API, in *vhidArgs) (any, error) {
				return api.Vehicle().GetMakesByVHID(ctx, in.VHID)
			}),
		query(DomainVehicle, "get_models_by_vhid",
			"Get models of the vehicle by VHID.",
			func(ctx context.Context, api transend.API, in *vhidArgs) (any, error) {
				return api.Vehicle().GetModelsByVHID(ctx, in.VHID)
			}),
		query(DomainVehicle, "get_submodels_by_vhid",
			"Get submodels of the vehicle by VHID.",
			func(ctx context.Context, api transend.API, in *vhidArgs) (any, error) {
				return api.Vehicle().GetSubmodelsByVHID(ctx, in.VHID)
			}),
		query(DomainVehicle, "get_transmissions",
			"Get transmissions, optionally filtered by tag number or manufacturer code.",
			func(ctx context.Context, api transend.API, in *transmissionsArgs) (any, error) {
				return api.Vehicle().GetTransmissions(ctx, in.TagNumber, in.TransmissionMfrCode)
			}),
		query(DomainVehicle, "get_vehicle_by_vhid",
			"Get vehicle information by VHID.",
			func(ctx context.Context, api transend.API, in *vhidArgs) (any, error) {
				return api.Vehicle().GetVehicleByVHID(ctx, in.VHID)
			}),
		query(DomainVehicle, "get_vehicles_by_vin",
			"Get vehicles by VIN.",
			func(ctx context.Context, api transend.API, in *vinArgs) (any, error) {
				return api.Vehicle().GetVehiclesByVIN(ctx, in.VIN)
			}),
		query(DomainVehicle, "get_years",
			"Get model years, optionally filtered by VHID.",
			func(ctx context.Context, api transend.API, in *optionalVHIDArgs) (any, error) {
				return api.Vehicle().GetYears(ctx, in.VHID)
			}),
		query(DomainVehicle, "get_year_make_model_vhid",
			"Get the VHID of the vehicle by year, make and model.",
			func(ctx context.Context, api transend.API, in *yearMakeModelArgs) (any, error) {
				return api.Vehicle().GetYearMakeModelVHID(ctx, *in.Year, in.Make, in.Model)
			}),
	}
}
