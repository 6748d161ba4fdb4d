package prop

import (
	"github.com/qwerty-one/pawn"
	"github.com/qwerty-one/pawn/errors"
	"github.com/qwerty-one/pawn/orm"
)

var _ pawn.Msg = (*CreatePropositionMsg)(nil)
var _ pawn.Msg = (*AcceptPropositionMsg)(nil)
var _ pawn.Msg = (*RejectPropositionMsg)(nil)
var _ pawn.Msg = (*ClosePropositionMsg)(nil)

// Path returns the routing path for this message.
func (CreatePropositionMsg) Path() string {
	return "prop/create"
}

// Validate ensures the CreatePropositionMsg is valid
func (m *CreatePropositionMsg) Validate() error {
	switch m.Type {
	case PropositionAsk, PropositionBid:
		// ok
	default:
		return errors.Wrapf(errors.ErrType, "invalid proposition type %s", m.Type)
	}
	if err := validateAmount(m.Deposit); err != nil {
		return errors.Wrap(err, "deposit")
	}
	if err := validateAmount(m.Assets); err != nil {
		return errors.Wrap(err, "assets")
	}
	if err := validateAmount(m.Premium); err != nil {
		return errors.Wrap(err, "premium")
	}
	if m.Period <= 0 {
		return errors.Wrap(errors.ErrInput, "period is required")
	}
	if m.Expiry == 0 {
		return errors.Wrap(errors.ErrInput, "expiry is required")
	}
	if err := m.Expiry.Validate(); err != nil {
		return errors.Wrap(err, "expiry")
	}
	if len(m.Contractor) != 0 {
		if err := m.Contractor.Validate(); err != nil {
			return errors.Wrap(err, "contractor")
		}
	}
	return nil
}

// Path returns the routing path for this message.
func (AcceptPropositionMsg) Path() string {
	return "prop/accept"
}

// Validate ensures the AcceptPropositionMsg is valid
func (m *AcceptPropositionMsg) Validate() error {
	return validatePropositionID(m.PropositionId)
}

// Path returns the routing path for this message.
func (RejectPropositionMsg) Path() string {
	return "prop/reject"
}

// Validate ensures the RejectPropositionMsg is valid
func (m *RejectPropositionMsg) Validate() error {
	return validatePropositionID(m.PropositionId)
}

// Path returns the routing path for this message.
func (ClosePropositionMsg) Path() string {
	return "prop/close"
}

// Validate ensures the ClosePropositionMsg is valid
func (m *ClosePropositionMsg) Validate() error {
	return validatePropositionID(m.PropositionId)
}

func validatePropositionID(id []byte) error {
	if err := orm.ValidateSequence(id); err != nil {
		return errors.Wrap(err, "proposition id")
	}
	return nil
}
