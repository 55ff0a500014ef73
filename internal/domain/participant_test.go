package domain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

func TestDeduct_ReducesBalance(t *testing.T) {
	p := newBidder("John", 1000)

	assert.Nil(t, p.Deduct(decimal.NewFromInt(600)))

	check.Equal(t, "400", p.Balance.String())
}

func TestDeduct_ExactBalanceAllowed(t *testing.T) {
	p := newBidder("John", 1000)

	assert.Nil(t, p.Deduct(decimal.NewFromInt(1000)))

	check.Equal(t, "0", p.Balance.String())
}

func TestDeduct_OverdraftRejectedWithoutPartialDeduction(t *testing.T) {
	p := newBidder("John", 1000)

	err := p.Deduct(decimal.NewFromInt(1001))

	check.True(t, errors.Is(err, ErrInsufficientFunds))
	check.Equal(t, "1000", p.Balance.String())
}

func TestWriteInfo_Participant(t *testing.T) {
	p := NewParticipant("participant-1", "John", decimal.NewFromInt(1000),
		"1234567890", "A123456789", "Male")

	var buf bytes.Buffer
	p.WriteInfo(&buf)

	want := "Name: John\n" +
		"Phone Number: 1234567890\n" +
		"Account Details: A123456789\n" +
		"Gender: Male\n" +
		"Balance: 1000\n"
	check.Equal(t, want, buf.String())
}
