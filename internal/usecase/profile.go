package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

// ProfileService owns the user record: profile edits, preference toggles,
// wallet moves, and the referral surface.
type ProfileService struct {
	clipboard Clipboard
	log       *slog.Logger
}

func NewProfileService(clipboard Clipboard, log *slog.Logger) *ProfileService {
	return &ProfileService{clipboard: clipboard, log: log}
}

// ProfileUpdate carries the fields a shallow merge may touch; nil means
// leave alone. Values are taken as given, the caller owns well-formedness.
type ProfileUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Avatar *string
}

func (svc *ProfileService) UpdateProfile(s *Session, up ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if up.Name != nil {
		s.User.Name = *up.Name
	}
	if up.Email != nil {
		s.User.Email = *up.Email
	}
	if up.Phone != nil {
		s.User.Phone = *up.Phone
	}
	if up.Avatar != nil {
		s.User.Avatar = *up.Avatar
	}
	s.pushNotice("Profile updated", NoticeSuccess)
}

func (svc *ProfileService) TogglePreference(s *Session, key domain.PreferenceKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.User.Preferences.Toggle(key)
}

// Withdraw moves funds out of the available balance and records the pending
// withdrawal transaction.
func (svc *ProfileService) Withdraw(s *Session, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	txID := uuid.NewString()
	if err := s.User.Withdraw(amount, txID, time.Now().Format("Jan 2, 2006")); err != nil {
		return err
	}
	s.pushNotice("Withdrawal process started.", NoticeSuccess)
	svc.log.Info("wallet_withdraw", "session", s.ID, "amount", amount.StringFixed(2))
	return nil
}

type WalletView struct {
	Balance         decimal.Decimal
	PendingEarnings decimal.Decimal
	TotalEarned     decimal.Decimal
	Transactions    []domain.Transaction
}

func (svc *ProfileService) Wallet(s *Session) WalletView {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := make([]domain.Transaction, len(s.User.Transactions))
	copy(txs, s.User.Transactions)
	return WalletView{
		Balance:         s.User.Balance,
		PendingEarnings: s.User.PendingEarnings,
		TotalEarned:     s.User.TotalEarned,
		Transactions:    txs,
	}
}

func (svc *ProfileService) User(s *Session) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.User
}

// ReferralLink builds the shareable join link for this user.
func (svc *ProfileService) ReferralLink(s *Session) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return "https://luxe.com/join?ref=" + s.User.ReferralCode
}

// CopyReferralLink sends the link to the system clipboard. Failure is
// toasted, never returned as an error.
func (svc *ProfileService) CopyReferralLink(s *Session) {
	link := svc.ReferralLink(s)
	err := svc.clipboard.Copy(link)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		svc.log.Warn("clipboard_copy_failed", "session", s.ID, "err", err)
		s.pushNotice("Couldn't copy the link, try again", NoticeError)
		return
	}
	s.pushNotice("Referral link copied to clipboard!", NoticeSuccess)
}
