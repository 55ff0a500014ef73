package domain

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Participant is a registered bidder. Name doubles as the identity used for
// winner records, so it is expected to be unique within a house.
type Participant struct {
	ID             string
	Name           string
	PhoneNumber    string
	AccountDetails string
	Gender         string
	Balance        decimal.Decimal
}

func NewParticipant(id, name string, balance decimal.Decimal, phoneNumber, accountDetails, gender string) *Participant {
	return &Participant{
		ID:             id,
		Name:           name,
		PhoneNumber:    phoneNumber,
		AccountDetails: accountDetails,
		Gender:         gender,
		Balance:        balance,
	}
}

// Deduct removes amount from the balance. Either the full amount is deducted
// or the balance is left untouched.
func (p *Participant) Deduct(amount decimal.Decimal) error {
	if amount.GreaterThan(p.Balance) {
		return ErrInsufficientFunds
	}
	p.Balance = p.Balance.Sub(amount)
	return nil
}

func (p *Participant) WriteInfo(w io.Writer) {
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Phone Number: %s\n", p.PhoneNumber)
	fmt.Fprintf(w, "Account Details: %s\n", p.AccountDetails)
	fmt.Fprintf(w, "Gender: %s\n", p.Gender)
	fmt.Fprintf(w, "Balance: %s\n", p.Balance)
}
