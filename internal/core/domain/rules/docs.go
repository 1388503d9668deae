// Package rules holds the post-condition checks run over a drafted population.
//
// Every check is a pure function of the groups it receives and may run any
// number of times; a valid population stays valid. Each violated rule returns
// its own sentinel, wrapped with the offending member, so callers and tests
// can tell failures apart with errors.Is.
//
// # Checks
//
// Pick order:
//   - ValidateRanksComplete: every member has a rank (ErrMissingRank)
//   - ValidateRanksUnique: no two members share a rank (ErrDuplicateRank)
//   - ValidateRanksSequential: ranks are exactly 1..N (ErrNonSequentialRanks)
//
// Recipients:
//   - ValidateRecipientsComplete: every member has a recipient (ErrMissingRecipient)
//   - ValidateRecipientsUnique: recipient ranks form a bijection (ErrDuplicateRecipient)
//   - ValidateExclusions: nobody draws themselves (ErrSelfAssignment), a member
//     of their own group (ErrSameGroupAssignment) or a rank nobody holds
//     (ErrUnknownRecipient)
//
// # Usage
//
// The composite checks run the individual ones in order and return the first
// failure:
//
//	if err := rules.ValidatePickOrder(groups); err != nil {
//	    return err
//	}
//
//	err := rules.ValidateAssignment(groups)
//	switch {
//	case errors.Is(err, rules.ErrSameGroupAssignment):
//	    // a giver drew their own family
//	case err != nil:
//	    return err
//	}
//
// The recipient engine treats every recipient rule error as a reason to retry.
package rules
