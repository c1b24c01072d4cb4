package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownPreference = errors.New("unknown preference key")
)

type User struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Avatar          string
	Badges          []Badge
	ReferralCode    string
	Balance         decimal.Decimal
	PendingEarnings decimal.Decimal
	TotalEarned     decimal.Decimal
	AffiliateStats  AffiliateStats
	Transactions    []Transaction
	Addresses       []Address
	PaymentMethods  []PaymentMethod
	Preferences     Preferences
}

type AffiliateStats struct {
	Clicks         int
	Referrals      int
	ConversionRate string
}

type TransactionType string

const (
	TxReferralBonus       TransactionType = "referral_bonus"
	TxAffiliateCommission TransactionType = "affiliate_commission"
	TxWithdrawal          TransactionType = "withdrawal"
)

type TransactionStatus string

const (
	TxCompleted TransactionStatus = "completed"
	TxPending   TransactionStatus = "pending"
)

// Transaction records are append-only; nothing in the app mutates one after
// it lands on the user.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Status      TransactionStatus
	Date        string
	Description string
}

type Address struct {
	ID        string
	Label     string
	Street    string
	City      string
	Zip       string
	IsDefault bool
}

type PaymentMethodType string

const (
	PaymentCard   PaymentMethodType = "card"
	PaymentPayPal PaymentMethodType = "paypal"
)

type PaymentMethod struct {
	ID        string
	Type      PaymentMethodType
	Last4     string
	Expiry    string
	IsDefault bool
}

type PreferenceKey string

const (
	PrefEmail PreferenceKey = "email"
	PrefSMS   PreferenceKey = "sms"
	PrefPush  PreferenceKey = "push"
)

type Preferences struct {
	EmailNotifications bool
	SMSNotifications   bool
	PushNotifications  bool
}

// Toggle flips one of the three notification booleans.
func (p *Preferences) Toggle(key PreferenceKey) error {
	switch key {
	case PrefEmail:
		p.EmailNotifications = !p.EmailNotifications
	case PrefSMS:
		p.SMSNotifications = !p.SMSNotifications
	case PrefPush:
		p.PushNotifications = !p.PushNotifications
	default:
		return ErrUnknownPreference
	}
	return nil
}

// Withdraw moves amount out of the available balance and records a pending
// withdrawal. It never touches pendingEarnings; there is no ledger
// reconciliation beyond the transaction entry.
func (u *User) Withdraw(amount decimal.Decimal, txID, date string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(u.Balance) {
		return ErrInsufficientFunds
	}
	u.Balance = u.Balance.Sub(amount)
	u.Transactions = append(u.Transactions, Transaction{
		ID:          txID,
		Type:        TxWithdrawal,
		Amount:      amount,
		Status:      TxPending,
		Date:        date,
		Description: "Withdrawal to linked account",
	})
	return nil
}
