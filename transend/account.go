package transend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

type accountAPI struct {
	c *Client
}

func (a *accountAPI) DeleteBankAccount(ctx context.Context, customerStripeID int64) error {
	path := "/api/Account/BankAccount/" + strconv.FormatInt(customerStripeID, 10)
	return a.c.do(ctx, request{op: "account.delete_bank_account", method: http.MethodDelete, path: path}, nil)
}

func (a *accountAPI) UpdateCreditCardDefault(ctx context.Context, creditCardGUID uuid.UUID) error {
	path := "/api/Account/CreditCard/" + creditCardGUID.String() + "/Default"
	return a.c.do(ctx, request{op: "account.update_credit_card_default", method: http.MethodPut, path: path}, nil)
}

func (a *accountAPI) DeleteCreditCard(ctx context.Context, creditCardGUID uuid.UUID) error {
	path := "/api/Account/CreditCard/" + creditCardGUID.String()
	return a.c.do(ctx, request{op: "account.delete_credit_card", method: http.MethodDelete, path: path}, nil)
}

func (a *accountAPI) GetActiveBankAccounts(ctx context.Context) (any, error) {
	return a.c.get(ctx, "account.active_bank_accounts", "/api/Account/BankAccounts/Active", nil)
}

func (a *accountAPI) GetCreditCards(ctx context.Context) (any, error) {
	return a.c.get(ctx, "account.credit_cards", "/api/Account/CreditCards", nil)
}

func (a *accountAPI) PostCreditCard(ctx context.Context, cardData Object) (any, error) {
	return a.c.send(ctx, "account.post_credit_card", http.MethodPost, "/api/Account/CreditCard", nonNil(cardData))
}

func (a *accountAPI) GetCustomerInfo(ctx context.Context) (any, error) {
	return a.c.get(ctx, "account.customer_info", "/api/Account/CustomerInfo", nil)
}

func (a *accountAPI) GetVerifiedBankAccounts(ctx context.Context) (any, error) {
	return a.c.get(ctx, "account.verified_bank_accounts", "/api/Account/BankAccounts/Verified", nil)
}

func (a *accountAPI) PostBankAccount(ctx context.Context, bankAccountData Object) (any, error) {
	return a.c.send(ctx, "account.post_bank_account", http.MethodPost, "/api/Account/BankAccount", nonNil(bankAccountData))
}

func (a *accountAPI) VerifyBankAccount(ctx context.Context, verificationData Object) (any, error) {
	return a.c.send(ctx, "account.verify_bank_account", http.MethodPost, "/api/Account/BankAccount/Verify", nonNil(verificationData))
}

// nonNil makes sure an empty payload is sent as {} rather than null
func nonNil(o Object) Object {
	if o == nil {
		return Object{}
	}
	return o
}
